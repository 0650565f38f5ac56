// Package format names the output formats of records.
//
//	f, err := format.ParseFormat("yaml") // also "y", "json", "j", "text", "t"
//
// # Related Packages
//
//   - github.com/signadot/recordkit/encode - Encode records in a Format
package format
