// Package pager implements the six victim-selection strategies used when
// the frame table is full: FIFO, Clock, NRU/Enhanced-Second-Chance,
// Aging, Working-Set, and Random. The shared sweeping-hand shape is
// grounded on the teacher's pkg/clockx ref-bit clock; each strategy here
// additionally reads and mutates real PTE bits through the frame table's
// registry, rather than opaque slot state.
package pager

import (
	"log/slog"

	"github.com/tuannm99/vmsim/internal/frame"
)

// Pager selects a victim frame from a full frame table. SelectVictim is
// only ever called when the free pool is empty, so every frame has a
// valid owner.
type Pager interface {
	SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame
}

// base holds the clock hand shared by every strategy below. Random is
// the one strategy that never advances it.
type base struct {
	hand int
}

func (b *base) advance(n int) {
	b.hand = (b.hand + 1) % n
}

func mustFrame(t *frame.Table, n int) {
	if n == 0 {
		slog.Error("pager: select_victim_frame called on an empty frame table")
		panic("pager: invariant violated, no frames to select from")
	}
}
