package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/vmsim/internal/frame"
	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/vma"
)

func TestParseFlags(t *testing.T) {
	f := ParseFlags("PFS")
	require.Equal(t, Flags{PageTables: true, FrameTable: true, Summary: true}, f)

	f = ParseFlags("P")
	require.Equal(t, Flags{PageTables: true}, f)

	f = ParseFlags("xyz")
	require.Equal(t, Flags{}, f)
}

func TestPageTables_FormatsAllThreeStates(t *testing.T) {
	p := process.New(0, vma.List{{ID: 0, StartVPage: 0, EndVPage: 2}})
	p.PageTable[0].Valid = true
	p.PageTable[0].Referenced = true
	p.PageTable[1].Pagedout = true
	// vpage 2 stays unmapped and never paged out -> "*"

	var buf bytes.Buffer
	PageTables(&buf, []*process.Process{p})

	want := "PT[0]: 0:R-- # *"
	for i := 3; i < 64; i++ {
		want += " *"
	}
	want += "\n"
	require.Equal(t, want, buf.String())
}

func TestFrameTable_FreeAndBusy(t *testing.T) {
	tbl := frame.NewTable(3)
	tbl.Frames[1].Owner = &frame.Owner{PID: 2, VPage: 7}

	var buf bytes.Buffer
	FrameTable(&buf, tbl)

	require.Equal(t, "FT: * 2:7 *\n", buf.String())
}

func TestSummary_PrintsCounters(t *testing.T) {
	p := process.New(3, nil)
	p.Counters = process.Counters{Unmaps: 1, Maps: 2, Ins: 3, Outs: 4, Fins: 5, Fouts: 6, Zeros: 7, Segv: 8, Segprot: 9}

	var buf bytes.Buffer
	Summary(&buf, []*process.Process{p})

	require.Equal(t, "PROC[3]: U=1 M=2 I=3 O=4 FI=5 FO=6 Z=7 SV=8 SP=9\n", buf.String())
}

func TestTotalCost(t *testing.T) {
	var buf bytes.Buffer
	TotalCost(&buf, 10, 2, 1, 12345)

	require.Equal(t, "TOTALCOST 10 2 1 12345 4\n", buf.String())
}
