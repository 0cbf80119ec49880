package vma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVMA_Contains(t *testing.T) {
	v := VMA{StartVPage: 4, EndVPage: 8}

	require.True(t, v.Contains(4))
	require.True(t, v.Contains(6))
	require.True(t, v.Contains(8))
	require.False(t, v.Contains(3))
	require.False(t, v.Contains(9))
}

func TestList_Find(t *testing.T) {
	l := List{
		{ID: 0, StartVPage: 0, EndVPage: 2},
		{ID: 1, StartVPage: 10, EndVPage: 20, FileMapped: true},
	}

	got, ok := l.Find(15)
	require.True(t, ok)
	require.Equal(t, 1, got.ID)
	require.True(t, got.FileMapped)

	_, ok = l.Find(5)
	require.False(t, ok)
}
