// Package eval evaluates expr-lang expressions over records.
//
// An expression sees the fields of a record as variables. Nested records
// are maps from field name to value and map fields are maps keyed by the
// original map keys:
//
//	prg, err := eval.Compile(`event_id > 50 && len(tel) > 0`)
//	ok, err := prg.Bool(rec)
//
// Besides the builtins of github.com/expr-lang/expr, expressions may call
//
//	flat()       the flattened export of the record
//	typename()   the name of the record's type
//	getenv(name) an environment variable
//
// A field of the same name shadows flat and typename.
//
// # Related Packages
//
//   - github.com/signadot/recordkit/container - Records and exports
package eval
