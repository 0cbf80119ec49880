package pager

import (
	"github.com/tuannm99/vmsim/internal/frame"
)

// NRU implements Enhanced Second Chance / Not-Recently-Used: four
// classes 0..3 (2*Referenced + Modified), lowest class wins. A periodic
// daemon clears every referenced bit every 50 instructions.
type NRU struct {
	base
	daemonClock uint64
}

// NewNRU returns an NRU pager with its hand and daemon clock at 0.
func NewNRU() *NRU { return &NRU{} }

// SelectVictim searches class 0, then 1, 2 and 3. Each class search
// starts at the hand, takes the frame under it if it matches without
// sweeping, and otherwise sweeps one revolution; a class gives up only
// after that full sweep. Every class is searched the same way, so the
// victim is the first frame from the hand in the lowest non-empty class
// (see DESIGN.md).
func (p *NRU) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)

	var victim *frame.Frame
	for class := 0; class < 4; class++ {
		entry := t.Frames[p.hand].PTE(reg)
		if entry.Class() == class {
			victim = &t.Frames[p.hand]
			break
		}

		start := p.hand
		for entry.Class() != class {
			p.hand = (p.hand + 1) % n
			if p.hand == start {
				break
			}
			entry = t.Frames[p.hand].PTE(reg)
		}
		if p.hand == start {
			continue
		}
		victim = &t.Frames[p.hand]
		break
	}

	p.hand = (victim.ID + 1) % n

	if instCount-p.daemonClock >= 50 {
		p.resetReferenced(t, reg)
		p.daemonClock = instCount
	}

	return victim
}

func (p *NRU) resetReferenced(t *frame.Table, reg frame.Registry) {
	for i := range t.Frames {
		t.Frames[i].PTE(reg).Referenced = false
	}
}
