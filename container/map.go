package container

import "github.com/signadot/recordkit/omap"

// Map is the ordered map used for dynamically keyed collections of
// sub-records, e.g. one record per telescope id.
type Map = omap.Map[any, any]

// NewMap returns an empty Map. Keys must be comparable at run time.
func NewMap() *Map {
	return omap.New[any, any]()
}
