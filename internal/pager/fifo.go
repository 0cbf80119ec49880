package pager

import "github.com/tuannm99/vmsim/internal/frame"

// FIFO evicts frames in strict allocation order, ignoring reference and
// modified bits entirely.
type FIFO struct{ base }

// NewFIFO returns a FIFO pager with its hand at frame 0.
func NewFIFO() *FIFO { return &FIFO{} }

// SelectVictim returns the frame currently under the hand and advances
// it by one.
func (p *FIFO) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)
	victim := &t.Frames[p.hand]
	p.advance(n)
	return victim
}
