package pager

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/vmsim/internal/frame"
	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/vma"
)

// fakeRegistry resolves a single process, enough for every strategy under
// test since they all only ever need to read/write PTE bits through it.
type fakeRegistry struct {
	proc *process.Process
}

func (r *fakeRegistry) Process(pid int) *process.Process { return r.proc }

// fullTable builds an n-frame table with every frame busy, each owning a
// distinct vpage 0..n-1 of a single process whose VMA covers the whole
// range, so PTE() resolves for every frame.
func fullTable(n int) (*frame.Table, *fakeRegistry) {
	proc := process.New(1, vma.List{{ID: 0, StartVPage: 0, EndVPage: n - 1}})
	t := frame.NewTable(n)
	for i := 0; i < n; i++ {
		t.Frames[i].Owner = &frame.Owner{PID: 1, VPage: i}
		proc.PageTable[i].Valid = true
	}
	return t, &fakeRegistry{proc: proc}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New(Algorithm('z'), nil)
	require.Error(t, err)
}

func TestNew_RandomRequiresSource(t *testing.T) {
	_, err := New(AlgoRandom, nil)
	require.Error(t, err)
}

func TestNew_BuildsEachAlgorithm(t *testing.T) {
	for _, algo := range []Algorithm{AlgoFIFO, AlgoClock, AlgoNRU, AlgoAging, AlgoWorkingSet} {
		p, err := New(algo, nil)
		require.NoError(t, err)
		require.NotNil(t, p)
	}

	p, err := New(AlgoRandom, &constSource{n: 0})
	require.NoError(t, err)
	require.NotNil(t, p)
}

type constSource struct{ n int }

func (c *constSource) Next() int { return c.n }
