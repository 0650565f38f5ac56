// Package schema declares record types from YAML documents and decodes YAML
// data documents into records of those types.
//
// # Type documents
//
//	types:
//	- name: SubContainer
//	  fields:
//	  - {name: junk, default: nothing, description: Some junk}
//	- name: TelContainer
//	  fields:
//	  - {name: tel_id, default: -1, description: telescope ID number}
//	  - {name: image, zeros: 10, unit: p.e., description: camera pixel data}
//	- name: EventContainer
//	  fields:
//	  - {name: event_id, default: -1}
//	  - {name: tels_with_data, default: []}
//	  - {name: sub, record: SubContainer}
//	  - {name: tel, map: TelContainer}
//
// Each field sets at most one of:
//
//   - default: a literal value
//   - zeros: a length, for a float array of zeros
//   - record: the name of an earlier type, whose fresh instance is the default
//   - map: true, or the name of an earlier type used for new map entries
//
// A field setting none of them defaults to null. Integers are read as int64,
// floats as float64 and lists of numbers as []float64.
//
// # Data documents
//
// Decode reads a mapping from field names to values. Mappings under record
// fields update those records; mappings under map fields add or update
// entries, creating new entries from the map's element type.
package schema
