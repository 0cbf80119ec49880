package pager

import "github.com/tuannm99/vmsim/internal/frame"

// Aging approximates LRU with a per-frame age counter: every selection
// shifts every frame's age right by one bit, OR-ing in the high bit for
// frames referenced since the last shift, then evicts the frame with the
// smallest age.
type Aging struct{ base }

// NewAging returns an Aging pager with its hand at frame 0.
func NewAging() *Aging { return &Aging{} }

const agingHighBit = 0x8000_0000

// SelectVictim ages every frame, then picks the smallest age in one
// sweep starting at the hand, breaking ties toward the earliest frame
// visited.
func (p *Aging) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)

	for i := range t.Frames {
		f := &t.Frames[i]
		f.Age >>= 1
		entry := f.PTE(reg)
		if entry.Referenced {
			f.Age |= agingHighBit
			entry.Referenced = false
		}
	}

	victim := &t.Frames[p.hand]
	minAge := victim.Age
	cur := (p.hand + 1) % n
	for cur != p.hand {
		candidate := &t.Frames[cur]
		if candidate.Age < minAge {
			minAge = candidate.Age
			victim = candidate
		}
		cur = (cur + 1) % n
	}

	p.hand = (victim.ID + 1) % n
	return victim
}
