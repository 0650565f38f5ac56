package container

import "github.com/mohae/deepcopy"

func cloneValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Record:
		return x.Clone()
	case *Map:
		if x == nil {
			return x
		}
		return x.DeepCopy()
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	}
	return deepcopy.Copy(v)
}
