// Package libdiff compares records.
//
// Diff compares the flattened exports of two records key by key; Text
// compares their rendered String forms line by line using
// github.com/sergi/go-diff.
//
//	changes, err := libdiff.Diff(before, after)
//	for _, c := range changes {
//	    fmt.Println(c) // ~ tel_5_image: [0 0] -> [1 2]
//	}
package libdiff
