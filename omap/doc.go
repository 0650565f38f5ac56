// Package omap provides an insertion-ordered map.
//
// # Ordering
//
// Iteration visits entries in the order their keys were first set. Setting
// an existing key replaces its value in place; it does not move the entry.
// Deleting a key and setting it again appends it at the end.
//
//	m := omap.New[int, string]()
//	m.Set(10, "a")
//	m.Set(5, "b")
//	m.Set(10, "c") // still first
//	for k, v := range m.All() {
//	    // 10 c, then 5 b
//	}
//
// # Lookups
//
// Get reports absent keys with an error wrapping ErrKeyNotFound; Lookup is
// the comma-ok form. A nil *Map reads as empty.
//
// # Thread Safety
//
// Maps are not safe for concurrent mutation.
package omap
