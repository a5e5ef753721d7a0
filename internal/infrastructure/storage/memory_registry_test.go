package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_AddAndContains(t *testing.T) {
	registry := NewMemoryRegistry()

	require.False(t, registry.Contains(7))
	require.Zero(t, registry.Size())

	registry.Add(7)
	require.True(t, registry.Contains(7))
	require.False(t, registry.Contains(12))
	require.Equal(t, 1, registry.Size())
}

func TestMemoryRegistry_AddIsIdempotent(t *testing.T) {
	registry := NewMemoryRegistry()

	registry.Add(7)
	registry.Add(7)

	require.Equal(t, 1, registry.Size())
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewMemoryRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			registry.Add(id)
			registry.Contains(id)
		}(int64(i))
	}
	wg.Wait()

	require.Equal(t, 50, registry.Size())
}
