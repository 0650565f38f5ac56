// Package encode writes records and their exports as text, YAML or JSON.
//
// # Usage
//
//	// the String form of a record
//	err := encode.Encode(rec, os.Stdout)
//
//	// the flattened export as JSON
//	err = encode.Encode(rec, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeExport(container.Recursive(true), container.Flatten(true)))
//
//	// colored text for a terminal
//	err = encode.Encode(rec, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Encode accepts a *container.Record, an export (*omap.Map[string, any] or
// *container.Map) or any leaf value. Mapping order is preserved in every
// format.
//
// # Related Packages
//
//   - github.com/signadot/recordkit/container - Records and exports
//   - github.com/signadot/recordkit/format - Output formats
package encode
