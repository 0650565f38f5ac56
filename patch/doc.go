// Package patch applies JSON patches (RFC 6902) and JSON merge patches
// (RFC 7386) to records.
//
// A record is exported recursively to JSON, the patch is applied with
// github.com/evanphx/json-patch and the result is written back:
//
//	err := patch.JSON(rec, []byte(`[{"op": "replace", "path": "/sub/junk", "value": "gold"}]`))
//	err = patch.Merge(rec, []byte(`{"event_id": 7, "tel": {"5": null}}`))
//
// Writing back follows the shape of the record. A field missing from the
// result is reset to its default. Map entries missing from the result are
// deleted and new entries are added; a new entry whose value is an object
// becomes a record when the map's element type is known (see WithElem).
// Numbers convert to the type of the value they replace.
//
// A patch either applies completely or leaves the record unchanged. The
// patch is applied to a copy, so nested records and maps are replaced by
// their patched copies.
package patch
