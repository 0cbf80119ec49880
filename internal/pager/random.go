package pager

import "github.com/tuannm99/vmsim/internal/frame"

// Source yields the next integer from a deterministic, pre-recorded
// replay stream. Implemented by internal/input, which owns reading and
// wrapping the random number file (an external collaborator, spec.md
// §6 — the pager only consumes the stream it is handed).
type Source interface {
	Next() int
}

// Random picks a uniformly-indexed frame from the replay stream. It
// never advances the sweeping hand; the stream's own offset is its only
// state.
type Random struct {
	base
	src Source
}

// NewRandom returns a Random pager drawing frame indices from src.
func NewRandom(src Source) *Random { return &Random{src: src} }

// SelectVictim indexes the frame table by the next stream value modulo
// the table size.
func (p *Random) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)
	idx := p.src.Next() % n
	return &t.Frames[idx]
}
