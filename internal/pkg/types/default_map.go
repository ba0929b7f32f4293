package types

// DefaultMap is a generic map wrapper that returns default values for missing keys.
//
// Missing entries are created on first access with the value produced by the
// user-defined default function.
//
//	m := NewDefaultMap[string](func() int { return 0 })
//	m.Update("key", func(v int) int { return v + 1 })
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
//
// Parameters:
//   - defaultFunc: produces the value stored for a key seen for the first time.
//
// Returns:
//   - A DefaultMap with an empty underlying map.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// When the key is absent, defaultFunc is invoked and its result is stored
// before being returned.
//
// Parameters:
//   - key: the key to retrieve.
//
// Returns:
//   - The stored value, or the newly stored default.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns a value to the given key.
//
// Parameters:
//   - key: the map key to assign.
//   - val: the value to associate with the key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Update replaces the value of key with fn applied to its current value, or
// to a default value when the key is absent.
//
// Parameters:
//   - key: the key to update.
//   - fn: computes the new value from the current one.
//
// Returns:
//   - The value stored after the update.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) V {
	val := fn(d.Get(key))
	d.data[key] = val
	return val
}

// ToMap returns the underlying map used by the DefaultMap.
//
// Returns:
//   - The map[K]V holding every entry. Mutating it mutates the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
