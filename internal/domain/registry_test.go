package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryGetOrCreate(t *testing.T) {
	registry := NewRegistry()

	wearer := registry.GetOrCreate("wearer-1")
	require.Equal(t, "wearer-1", wearer.ID())
	require.True(t, wearer.Resting())

	again := registry.GetOrCreate("wearer-1")
	require.Same(t, wearer, again)
	require.Equal(t, 1, registry.Len())
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("nobody")
	require.ErrorIs(t, err, ErrWearerNotFound)

	registry.GetOrCreate("wearer-1")
	wearer, err := registry.Get("wearer-1")
	require.NoError(t, err)
	require.Equal(t, "wearer-1", wearer.ID())
}
