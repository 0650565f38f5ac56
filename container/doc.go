// Package container provides declarative record types.
//
// # Overview
//
// A Type is an ordered list of Fields, each with a name, a default value and
// a description. Records are instances of a Type. Every record owns one slot
// per field, initialised with a deep copy of the field's default, so records
// never share mutable state with each other or with their Type.
//
//	sub := container.MustType("SubContainer",
//	    container.Declare("junk", "nothing", "Some junk"))
//	tel := container.MustType("TelContainer",
//	    container.Declare("tel_id", -1, "telescope ID number"),
//	    container.Declare("image", make([]float64, 10), "camera pixel data"))
//	event := container.MustType("EventContainer",
//	    container.Declare("event_id", -1, "event id number"),
//	    container.Declare("tels_with_data", []int{}, "list of telescopes with data"),
//	    container.Declare("sub", sub.New(), "stuff"),
//	    container.Declare("tel", container.NewMap(), "telescopes"))
//
//	ev := event.New()
//	_ = ev.Set("event_id", 100)
//	tels, _ := ev.Map("tel")
//	tels.Set(5, tel.New())
//
// # Values
//
// A slot may hold any value. Records (*Record) and maps of records (*Map)
// nest; everything else is a leaf and is copied with
// github.com/mohae/deepcopy. Records form trees: Set refuses a value which
// contains the receiving record.
//
// # Reset
//
// Reset restores defaults recursively. Records held in map fields are reset
// in place and the maps keep their entries.
//
// # Export
//
// AsMapping exports a record to an ordered mapping. By default only leaf
// fields are exported; Recursive(true) keeps the tree shape and
// Flatten(true) merges it into a single level:
//
//	flat, err := ev.AsMapping(container.Recursive(true), container.Flatten(true))
//	// event_id, tels_with_data, sub_junk, tel_5_tel_id, tel_5_image
//
// Flattening fails with ErrFlattenKeyCollision rather than dropping data
// when two paths produce the same key.
//
// # Errors
//
// Accessing an undeclared field fails with ErrUnknownField, wrapped in a
// *FieldError naming the type and field. Map lookups of absent keys fail
// with ErrKeyNotFound.
//
// # Thread Safety
//
// Types are immutable and safe for concurrent use. Records are not; guard
// concurrent access to a record yourself.
package container
