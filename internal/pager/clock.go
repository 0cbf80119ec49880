package pager

import (
	"log/slog"

	"github.com/tuannm99/vmsim/internal/frame"
)

// Clock implements the second-chance algorithm: sweep from the hand,
// clearing the reference bit of every referenced frame until an
// unreferenced one is found.
type Clock struct{ base }

// NewClock returns a Clock pager with its hand at frame 0.
func NewClock() *Clock { return &Clock{} }

// SelectVictim clears reference bits as it sweeps and returns the first
// frame found with Referenced == false, leaving the hand one past it.
func (p *Clock) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)

	victim := &t.Frames[p.hand]
	entry := victim.PTE(reg)
	for entry.Referenced {
		entry.Referenced = false
		p.advance(n)
		victim = &t.Frames[p.hand]
		entry = victim.PTE(reg)
	}
	p.advance(n)

	slog.Debug("pager: clock selected victim", "frameID", victim.ID)
	return victim
}
