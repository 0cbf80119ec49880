// Package frame implements the physical frame table, its free pool, and
// the map/unmap transitions that move pages between virtual and
// physical residency.
package frame

import (
	"fmt"
	"log/slog"

	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/pte"
)

// Cost constants from the spec's fixed cost table. Only the ones
// map/unmap are responsible for emitting live here; the rest are owned
// by package sim.
const (
	CostIn   = 3100
	CostOut  = 2700
	CostFin  = 2800
	CostFout = 2400
	CostZero = 140
)

// Owner identifies the (pid, vpage) a busy frame backs. Stored by value
// so Frame never holds a pointer into a Process's page table directly —
// the page table entry is always re-resolved through the registry, which
// is the single source of truth for PTE state.
type Owner struct {
	PID   int
	VPage int
}

// Frame is one physical frame slot.
type Frame struct {
	ID       int
	Owner    *Owner // nil when free
	Age      uint32 // used by the aging policy
	LastUsed int    // instruction index, used by the working-set policy
}

// Free reports whether the frame currently holds no mapping.
func (f *Frame) Free() bool { return f.Owner == nil }

// UnmapOutcome tells the caller what Unmap did with the frame so it can
// decide whether to return the frame to the free pool. This replaces the
// C reference implementation's mutable "toFreePool" flag on Frame with an
// explicit return value (see DESIGN.md's internal/frame note).
type UnmapOutcome int

const (
	// None means a clean page was unmapped outside of exit: nothing was
	// written back and the frame is not pushed to the free pool (at
	// page-fault time it is about to be re-mapped immediately).
	None UnmapOutcome = iota
	// Swapped means the dirty page was written out (OUT, or FOUT for a
	// file-mapped VMA); the frame is not pushed to the free pool.
	Swapped
	// Reclaimed means an exit-time unmap of an anonymous page, or of a
	// clean file-mapped page, wrote nothing back — the frame must be
	// pushed onto the free pool by the caller.
	Reclaimed
)

// Registry resolves a pid to its live Process record. Implemented by the
// simulator's process table.
type Registry interface {
	Process(pid int) *process.Process
}

// PTE resolves a busy frame's current page table entry through the
// registry. Used by pager victim-selection strategies, which only ever
// run when every frame in the table has a valid owner.
func (f *Frame) PTE(reg Registry) *pte.PTE {
	proc, vpage := f.owner(reg)
	return &proc.PageTable[vpage]
}

// owner resolves the Frame's current owning Process and the vpage it
// backs.
func (f *Frame) owner(reg Registry) (*process.Process, int) {
	if f.Owner == nil {
		panic("frame: owner() called on a free frame")
	}
	proc := reg.Process(f.Owner.PID)
	if proc == nil {
		slog.Error("frame: owner pid not found in registry", "frameID", f.ID, "pid", f.Owner.PID)
		panic("frame: invariant violated, dangling owner")
	}
	return proc, f.Owner.VPage
}

// Sink receives the trace lines and cost deltas emitted by map/unmap.
// The simulator is the only implementation; kept as an interface so
// frame has no dependency on how the trace is printed or totalled.
type Sink interface {
	Emit(line string)
	AddCost(n uint64)
}

// Map transitions a frame to backing (proc, vpage). It sets the PTE
// valid bit, determines the fill source (file-mapped VMA -> FIN,
// previously-paged-out -> IN, else -> ZERO) and its cost, resets the
// frame's age/last-used bookkeeping, and emits the MAP/FIN/IN/ZERO trace
// lines in the fixed order the spec requires (fill event first, then
// MAP). The caller is still responsible for the flat MAP=300 cost and
// the current process's Maps counter (spec.md §4.2 step 3).
func (f *Frame) Map(sink Sink, proc *process.Process, vpage int, instCount uint64) {
	f.Owner = &Owner{PID: proc.PID, VPage: vpage}

	p := &proc.PageTable[vpage]
	p.Valid = true

	v, ok := proc.VMAFor(vpage)
	if !ok {
		slog.Error("frame: map on vpage outside any VMA", "pid", proc.PID, "vpage", vpage)
		panic("frame: invariant violated, mapping unbacked vpage")
	}

	switch {
	case v.FileMapped:
		sink.AddCost(CostFin)
		sink.Emit(" FIN")
		proc.Counters.Fins++
		p.Modified = false
	case p.Pagedout:
		sink.AddCost(CostIn)
		sink.Emit(" IN")
		proc.Counters.Ins++
		p.Modified = false
	default:
		sink.AddCost(CostZero)
		sink.Emit(" ZERO")
		proc.Counters.Zeros++
	}

	f.Age = 0
	f.LastUsed = int(instCount) - 1

	sink.Emit(fmt.Sprintf(" MAP %d", f.ID))
}

// Unmap tears down a busy frame's current mapping. It emits the UNMAP
// trace line and increments the owner's Unmaps counter itself (spec.md
// §4.2 step 2's "the previous owner's unmaps++"); the caller still owns
// the flat UNMAP=400 cost.
//
// When the owning PTE is modified, the page is written back: to the
// backing file (FOUT) if the VMA is file-mapped, to swap (OUT, setting
// Pagedout) otherwise — unless onExit is set, in which case the dirty
// anonymous write-back is suppressed and the frame is reclaimed into the
// free pool instead (spec.md §4.4/§4.7).
func (f *Frame) Unmap(sink Sink, reg Registry, onExit bool) UnmapOutcome {
	proc, vpage := f.owner(reg)
	sink.Emit(fmt.Sprintf(" UNMAP %d:%d", proc.PID, vpage))
	proc.Counters.Unmaps++

	p := &proc.PageTable[vpage]
	v, ok := proc.VMAFor(vpage)
	if !ok {
		slog.Error("frame: unmap on vpage outside any VMA", "pid", proc.PID, "vpage", vpage)
		panic("frame: invariant violated, unmapping unbacked vpage")
	}

	outcome := None
	switch {
	case p.Modified && v.FileMapped:
		sink.AddCost(CostFout)
		sink.Emit(" FOUT")
		proc.Counters.Fouts++
		outcome = Swapped
	case p.Modified && onExit:
		outcome = Reclaimed
		p.Pagedout = false
	case p.Modified:
		sink.AddCost(CostOut)
		sink.Emit(" OUT")
		proc.Counters.Outs++
		p.Pagedout = true
		outcome = Swapped
	case onExit:
		outcome = Reclaimed
		p.Pagedout = false
	}

	p.ResetOnUnmap()
	f.Owner = nil
	return outcome
}
