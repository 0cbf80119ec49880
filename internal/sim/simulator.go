// Package sim implements the instruction dispatcher: context switches,
// reads, writes, exits, the page-fault handler, and the cost tally that
// ties every other component together.
package sim

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tuannm99/vmsim/internal/frame"
	"github.com/tuannm99/vmsim/internal/pager"
	"github.com/tuannm99/vmsim/internal/process"
	"github.com/tuannm99/vmsim/internal/pte"
)

// Fixed per-opcode costs not owned by package frame.
const (
	CostRead      = 1
	CostWrite     = 1
	CostCtxSwitch = 130
	CostExit      = 1250
	CostMap       = 300
	CostUnmap     = 400
	CostSegv      = 340
	CostSegprot   = 420
)

// Simulator drives the instruction trace against the process pool, the
// frame table, and a pluggable pager.
type Simulator struct {
	Processes []*process.Process // indexed by pid
	Frames    *frame.Table
	Pager     pager.Pager
	Out       io.Writer

	Current      *process.Process
	InstCount    uint64
	CtxSwitches  uint64
	ProcessExits uint64
	Cost         uint64
}

// New builds a simulator over procs (indexed by pid) and a frame table
// of the given size, driven by the given pager.
func New(procs []*process.Process, frames *frame.Table, p pager.Pager, out io.Writer) *Simulator {
	return &Simulator{Processes: procs, Frames: frames, Pager: p, Out: out}
}

// Process implements frame.Registry.
func (s *Simulator) Process(pid int) *process.Process {
	if pid < 0 || pid >= len(s.Processes) {
		slog.Error("sim: context switch to unknown pid", "pid", pid)
		panic("sim: invariant violated, pid out of range")
	}
	return s.Processes[pid]
}

// Emit implements frame.Sink: every map/unmap trace line is printed
// through here, in the exact order map/unmap calls it.
func (s *Simulator) Emit(line string) {
	fmt.Fprintln(s.Out, line)
}

// AddCost implements frame.Sink.
func (s *Simulator) AddCost(n uint64) {
	s.Cost += uint64(n)
}

// Run executes every instruction in order, printing the trace to Out.
func (s *Simulator) Run(instructions []Instruction) {
	for _, instr := range instructions {
		s.InstCount++
		fmt.Fprintf(s.Out, "%d: ==> %c %d\n", instr.ID, instr.Op, instr.Arg)

		switch instr.Op {
		case OpContextSwitch:
			s.ctxSwitch(instr.Arg)
		case OpRead:
			s.read(instr.Arg)
		case OpWrite:
			s.write(instr.Arg)
		case OpExit:
			s.exit()
		default:
			slog.Error("sim: unknown opcode", "op", string(instr.Op))
			panic("sim: invariant violated, unknown opcode")
		}
	}
}

func (s *Simulator) ctxSwitch(pid int) {
	s.CtxSwitches++
	s.Cost += CostCtxSwitch
	s.Current = s.Process(pid)
}

func (s *Simulator) read(vpage int) {
	s.Cost += CostRead
	if !s.ensureMapped(vpage) {
		return
	}
	s.Current.PageTable[vpage].Referenced = true
}

func (s *Simulator) write(vpage int) {
	s.Cost += CostWrite
	if !s.ensureMapped(vpage) {
		return
	}

	p := &s.Current.PageTable[vpage]
	p.Referenced = true
	s.Current.RefreshWriteProtect(vpage)

	if p.WriteProtect {
		s.Cost += CostSegprot
		s.Emit(" SEGPROT")
		s.Current.Counters.Segprot++
		return
	}
	p.Modified = true
}

// ensureMapped resolves a vpage against the current process's page
// table, faulting it in if necessary. It returns false (having already
// emitted SEGV) when the vpage isn't covered by any VMA.
func (s *Simulator) ensureMapped(vpage int) bool {
	p := &s.Current.PageTable[vpage]
	if p.Valid {
		return true
	}
	if !s.Current.InVMA(vpage) {
		s.Cost += CostSegv
		s.Current.Counters.Segv++
		s.Emit(" SEGV")
		return false
	}
	s.pageFault(vpage)
	return true
}

// pageFault implements spec.md §4.2: acquire a frame (free pool first,
// else the pager's victim), unmap it if it was busy, then map the
// current process's vpage into it.
func (s *Simulator) pageFault(vpage int) {
	f, ok := s.Frames.Acquire()
	if !ok {
		f = s.Pager.SelectVictim(s.Frames, s, s.InstCount)
	}

	if !f.Free() {
		s.Cost += CostUnmap
		f.Unmap(s, s, false)
	}

	s.Cost += CostMap
	f.Map(s, s.Current, vpage, s.InstCount)
	s.Current.Counters.Maps++

	p := &s.Current.PageTable[vpage]
	p.PhysFrame = uint8(f.ID)
	p.Valid = true
}

// exit implements spec.md §4.7: counters/cost/EXIT line are recorded at
// entry (spec.md §9's ordering note), then every valid page is unmapped
// in vpage order and reclaimed frames are returned to the free pool.
func (s *Simulator) exit() {
	pid := s.Current.PID
	s.ProcessExits++
	s.Cost += CostExit
	s.Emit(fmt.Sprintf("EXIT current process %d", pid))

	for vpage := 0; vpage < pte.PagesPerProcess; vpage++ {
		p := &s.Current.PageTable[vpage]
		if !p.Valid {
			p.Pagedout = false
			continue
		}

		s.Cost += CostUnmap
		f := &s.Frames.Frames[p.PhysFrame]
		if outcome := f.Unmap(s, s, true); outcome == frame.Reclaimed {
			s.Frames.Reclaim(f)
		}
	}

	s.Current = nil
}
