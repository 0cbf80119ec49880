package process

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/vmsim/internal/vma"
)

func TestProcess_InVMA(t *testing.T) {
	p := New(0, vma.List{
		{ID: 0, StartVPage: 0, EndVPage: 3, FileMapped: false},
		{ID: 1, StartVPage: 10, EndVPage: 10, WriteProtected: true},
	})

	require.True(t, p.InVMA(0))
	require.True(t, p.InVMA(3))
	require.True(t, p.InVMA(10))
	require.False(t, p.InVMA(4))
	require.False(t, p.InVMA(63))
}

func TestProcess_RefreshWriteProtect(t *testing.T) {
	p := New(0, vma.List{
		{ID: 0, StartVPage: 0, EndVPage: 0, WriteProtected: true},
		{ID: 1, StartVPage: 1, EndVPage: 1, WriteProtected: false},
	})

	p.RefreshWriteProtect(0)
	p.RefreshWriteProtect(1)

	require.True(t, p.PageTable[0].WriteProtect)
	require.False(t, p.PageTable[1].WriteProtect)
}
