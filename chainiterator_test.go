//go:build unit

package chainmap

import (
	"errors"
	"github.com/gostonefire/chainmap/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEntryIterator_Next(t *testing.T) {
	t.Run("visits every entry exactly once", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 8)
		for i := 0; i < 100; i++ {
			m.Put(i, i+1)
		}

		// Execute
		seen := make(map[int]int)
		it := m.EntrySet().Iterator()
		for it.HasNext() {
			e, err := it.Next()
			require.NoError(t, err)
			seen[e.Key()]++
			assert.Equal(t, e.Key()+1, e.Value())
		}

		// Check
		assert.Len(t, seen, 100)
		for k, n := range seen {
			assert.Equal(t, 1, n, "key %d visited once", k)
		}
	})

	t.Run("walks a chain from head to tail", func(t *testing.T) {
		// Prepare
		m, _ := NewDefaultHashMap[string, int](collidingHasher())
		m.Put("a", 1)
		m.Put("b", 2)
		m.Put("c", 3)

		// Execute
		var keys []string
		it := m.KeySet().Iterator()
		for it.HasNext() {
			k, err := it.Next()
			require.NoError(t, err)
			keys = append(keys, k)
		}

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, keys)
	})

	t.Run("empty map", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		it := m.EntrySet().Iterator()

		// Execute
		_, err := it.Next()

		// Check
		assert.False(t, it.HasNext())
		assert.True(t, errors.Is(err, errs.NoSuchElement{}))
	})

	t.Run("error when exhausted", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		it := m.Values().Iterator()
		v, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, 1, v)

		// Execute
		_, err = it.Next()

		// Check
		assert.True(t, errors.Is(err, errs.NoSuchElement{}))
	})

	t.Run("set value writes through", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		before := m.modCount
		it := m.EntrySet().Iterator()
		e, err := it.Next()
		require.NoError(t, err)

		// Execute
		old := e.SetValue(5)

		// Check
		assert.Equal(t, 1, old)
		v, _ := m.Get(1)
		assert.Equal(t, 5, v)
		assert.Equal(t, before, m.modCount)
		assert.Equal(t, "1=5", e.String())
	})
}

func TestEntryIterator_failFast(t *testing.T) {
	t.Run("error after removal through the map", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		for i := 0; i < 5; i++ {
			m.Put(i, i)
		}
		it := m.KeySet().Iterator()
		_, err := it.Next()
		require.NoError(t, err)

		// Execute
		m.Remove(4)
		_, err = it.Next()

		// Check
		assert.True(t, errors.Is(err, errs.ConcurrentModification{}))
	})

	t.Run("error after a new key is put", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		m.Put(2, 2)
		it := m.EntrySet().Iterator()

		// Execute
		m.Put(3, 3)
		_, err := it.Next()

		// Check
		assert.True(t, errors.Is(err, errs.ConcurrentModification{}))
	})

	t.Run("error after clear", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		it := m.Values().Iterator()

		// Execute
		m.Clear()
		_, err := it.Next()

		// Check
		assert.True(t, errors.Is(err, errs.ConcurrentModification{}))
	})

	t.Run("no error after updating an existing key", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		m.Put(2, 2)
		it := m.EntrySet().Iterator()

		// Execute
		m.Put(1, 10)
		m.Put(2, 20)
		var sum int
		for it.HasNext() {
			e, err := it.Next()
			require.NoError(t, err)
			sum += e.Value()
		}

		// Check
		assert.Equal(t, 30, sum, "updated values seen")
	})

	t.Run("error from a second iterator after the first removes", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		m.Put(2, 2)
		first := m.EntrySet().Iterator()
		second := m.EntrySet().Iterator()
		_, err := first.Next()
		require.NoError(t, err)

		// Execute
		require.NoError(t, first.Remove())
		_, err = second.Next()

		// Check
		assert.True(t, errors.Is(err, errs.ConcurrentModification{}))
	})
}

func TestEntryIterator_Remove(t *testing.T) {
	t.Run("removes current entry and continues", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 4)
		for i := 0; i < 50; i++ {
			m.Put(i, i)
		}

		// Execute
		visited := 0
		it := m.EntrySet().Iterator()
		for it.HasNext() {
			e, err := it.Next()
			require.NoError(t, err)
			visited++
			if e.Key()%2 == 0 {
				before := m.Size()
				require.NoError(t, it.Remove())
				assert.Equal(t, before-1, m.Size(), "size decremented by one")
			}
		}

		// Check
		assert.Equal(t, 50, visited, "every entry visited")
		assert.Equal(t, 25, m.Size())
		for i := 0; i < 50; i++ {
			assert.Equal(t, i%2 == 1, m.ContainsKey(i), "key %d", i)
		}
	})

	t.Run("removes every entry of a chain", func(t *testing.T) {
		// Prepare
		m, _ := NewDefaultHashMap[string, int](collidingHasher())
		m.Put("a", 1)
		m.Put("b", 2)
		m.Put("c", 3)

		// Execute
		it := m.KeySet().Iterator()
		for it.HasNext() {
			_, err := it.Next()
			require.NoError(t, err)
			require.NoError(t, it.Remove())
		}

		// Check
		assert.True(t, m.IsEmpty())
	})

	t.Run("error without preceding next", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		it := m.KeySet().Iterator()

		// Execute
		err := it.Remove()

		// Check
		assert.True(t, errors.Is(err, errs.IllegalState{}))
		assert.Equal(t, 1, m.Size())
	})

	t.Run("error when called twice", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		m.Put(2, 2)
		it := m.Values().Iterator()
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())

		// Execute
		err = it.Remove()

		// Check
		assert.True(t, errors.Is(err, errs.IllegalState{}))
		assert.Equal(t, 1, m.Size())
	})

	t.Run("error after modification through the map", func(t *testing.T) {
		// Prepare
		m := newIntMap(t, 16)
		m.Put(1, 1)
		m.Put(2, 2)
		it := m.KeySet().Iterator()
		k, err := it.Next()
		require.NoError(t, err)

		// Execute
		m.Put(3, 3)
		err = it.Remove()

		// Check
		assert.True(t, errors.Is(err, errs.ConcurrentModification{}))
		assert.True(t, m.ContainsKey(k), "nothing removed")
	})
}
