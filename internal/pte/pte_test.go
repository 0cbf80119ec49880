package pte

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPTE_Class(t *testing.T) {
	cases := []struct {
		name       string
		referenced bool
		modified   bool
		want       int
	}{
		{"neither", false, false, 0},
		{"modified only", false, true, 1},
		{"referenced only", true, false, 2},
		{"both", true, true, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PTE{Referenced: tc.referenced, Modified: tc.modified}
			require.Equal(t, tc.want, p.Class())
		})
	}
}

func TestPTE_ResetOnUnmap_LeavesPagedoutAlone(t *testing.T) {
	p := PTE{Valid: true, Referenced: true, Modified: true, Pagedout: true, WriteProtect: true}
	p.ResetOnUnmap()

	require.False(t, p.Valid)
	require.False(t, p.Referenced)
	require.False(t, p.Modified)
	require.True(t, p.Pagedout, "pagedout lifetime is governed by the OUT/IN protocol, not unmap")
	require.True(t, p.WriteProtect, "write_protect is cached from the VMA and re-derived on next write")
}
