package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap_Get(t *testing.T) {
	t.Run("returns existing value", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("existing", 100)

		assert.Equal(t, 100, dm.Get("existing"))
	})

	t.Run("stores and returns default value for missing key", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 42 })

		assert.Equal(t, 42, dm.Get("missing"))
		assert.Contains(t, dm.ToMap(), "missing")
	})

	t.Run("default reference values are shared after first access", func(t *testing.T) {
		dm := NewDefaultMap[string](func() Set[int] { return NewSet[int]() })

		dm.Get("k").Add(1)
		dm.Get("k").Add(2)

		assert.Len(t, dm.Get("k"), 2)
	})
}

func TestDefaultMap_Update(t *testing.T) {
	t.Run("applies fn to the default value", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 10 })

		got := dm.Update("a", func(v int) int { return v + 5 })

		assert.Equal(t, 15, got)
		assert.Equal(t, 15, dm.Get("a"))
	})

	t.Run("accumulates across calls", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })

		dm.Update("a", func(v int) int { return v + 1 })
		dm.Update("a", func(v int) int { return v + 1 })
		dm.Update("b", func(v int) int { return v - 1 })

		assert.Equal(t, map[string]int{"a": 2, "b": -1}, dm.ToMap())
	})
}
