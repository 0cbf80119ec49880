// Package process holds the per-process simulation state: identity, its
// VMAs, its page table, and its paging counters.
package process

import (
	"github.com/tuannm99/vmsim/internal/pte"
	"github.com/tuannm99/vmsim/internal/vma"
)

// Counters tallies the nine per-process paging events spec'd for the
// summary reporter. All fields are monotonically increasing for the
// lifetime of the process.
type Counters struct {
	Unmaps  uint64
	Maps    uint64
	Ins     uint64
	Outs    uint64
	Fins    uint64
	Fouts   uint64
	Zeros   uint64
	Segv    uint64
	Segprot uint64
}

// Process is one simulated process: a pid, its VMAs, a fixed-length page
// table, and its paging counters. Created at input-read time; torn down
// (mappings only, not the record itself) by an exit instruction.
type Process struct {
	PID       int
	VMAs      vma.List
	PageTable [pte.PagesPerProcess]pte.PTE
	Counters  Counters
}

// New builds a process with an empty page table and zeroed counters.
func New(pid int, vmas vma.List) *Process {
	return &Process{PID: pid, VMAs: vmas}
}

// VMAFor returns the VMA covering vpage, if the page is mapped by any of
// this process's VMAs.
func (p *Process) VMAFor(vpage int) (*vma.VMA, bool) {
	return p.VMAs.Find(vpage)
}

// InVMA reports whether vpage is covered by any VMA of this process.
func (p *Process) InVMA(vpage int) bool {
	_, ok := p.VMAs.Find(vpage)
	return ok
}

// RefreshWriteProtect caches vpage's owning VMA's write-protect bit onto
// its PTE, as done on every write instruction before the SEGPROT check.
func (p *Process) RefreshWriteProtect(vpage int) {
	v, ok := p.VMAFor(vpage)
	if !ok {
		return
	}
	p.PageTable[vpage].WriteProtect = v.WriteProtected
}
