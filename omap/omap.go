package omap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/mohae/deepcopy"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyError reports a lookup of an absent key.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// Map is an insertion-ordered map. Keys[i] is the key of Values[i], as with
// the fields and values of an object node.
type Map[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: map[K]int{}}
}

// FromPairs builds a map from parallel key and value slices. Duplicate keys
// keep their first position and last value.
func FromPairs[K comparable, V any](keys []K, values []V) *Map[K, V] {
	m := New[K, V]()
	for i := range keys {
		var v V
		if i < len(values) {
			v = values[i]
		}
		m.Set(keys[i], v)
	}
	return m
}

func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map[K, V]) Set(k K, v V) {
	if m.index == nil {
		m.index = map[K]int{}
	}
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

func (m *Map[K, V]) Get(k K) (V, error) {
	v, ok := m.Lookup(k)
	if !ok {
		return v, &KeyError{Key: k}
	}
	return v, nil
}

func (m *Map[K, V]) Lookup(k K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[k]
	if !ok {
		return zero, false
	}
	return m.values[i], true
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Lookup(k)
	return ok
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	m.keys = nil
	m.values = nil
	m.index = map[K]int{}
}

// All iterates entries in insertion order. The map must not be mutated
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return append([]K(nil), m.keys...)
}

func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	return append([]V(nil), m.values...)
}

// At returns the i'th entry in insertion order.
func (m *Map[K, V]) At(i int) (K, V) {
	return m.keys[i], m.values[i]
}

// Clone copies the map, passing each value through copyValue. A nil
// copyValue copies values shallowly.
func (m *Map[K, V]) Clone(copyValue func(V) V) *Map[K, V] {
	if m == nil {
		return nil
	}
	res := &Map[K, V]{
		keys:   make([]K, len(m.keys)),
		values: make([]V, len(m.values)),
		index:  make(map[K]int, len(m.index)),
	}
	copy(res.keys, m.keys)
	for i, v := range m.values {
		if copyValue != nil {
			v = copyValue(v)
		}
		res.values[i] = v
		res.index[res.keys[i]] = i
	}
	return res
}

// DeepCopy implements deepcopy.Interface so maps nested in arbitrary values
// are copied entry by entry.
func (m *Map[K, V]) DeepCopy() any {
	return m.Clone(func(v V) V {
		c, _ := deepcopy.Copy(v).(V)
		return c
	})
}

// ToMap returns an unordered copy of the entries.
func (m *Map[K, V]) ToMap() map[K]V {
	res := make(map[K]V, m.Len())
	for k, v := range m.All() {
		res[k] = v
	}
	return res
}

// MarshalJSON writes entries in insertion order. Keys are rendered with
// fmt.Sprint.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		d, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, fmt.Errorf("value for key %v: %w", k, err)
		}
		buf.Write(d)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
