package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTable_AllFramesFree(t *testing.T) {
	tbl := NewTable(4)

	require.Equal(t, 4, tbl.Size())
	for i, f := range tbl.Frames {
		require.Equal(t, i, f.ID)
		require.True(t, f.Free())
	}
}

func TestTable_Acquire_FIFOOrder(t *testing.T) {
	tbl := NewTable(3)

	f0, ok := tbl.Acquire()
	require.True(t, ok)
	require.Equal(t, 0, f0.ID)

	f1, ok := tbl.Acquire()
	require.True(t, ok)
	require.Equal(t, 1, f1.ID)
}

func TestTable_Acquire_EmptyPool(t *testing.T) {
	tbl := NewTable(1)
	_, ok := tbl.Acquire()
	require.True(t, ok)

	_, ok = tbl.Acquire()
	require.False(t, ok)
}

func TestTable_Reclaim_ReturnsFrameToPool(t *testing.T) {
	tbl := NewTable(1)
	f, _ := tbl.Acquire()
	f.Owner = &Owner{PID: 1, VPage: 2}

	tbl.Reclaim(f)

	got, ok := tbl.Acquire()
	require.True(t, ok)
	require.Equal(t, f.ID, got.ID)
}
