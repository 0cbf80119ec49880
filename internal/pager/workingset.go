package pager

import "github.com/tuannm99/vmsim/internal/frame"

// tau is the working-set aging horizon, fixed at 49 instructions.
const tau = 49

// WorkingSet implements WS-Clock: a frame is eligible for eviction once
// it hasn't been referenced and has aged past tau instructions since its
// last use; the sweep also performs the aging side effect (clearing
// reference bits it passes over) along the way.
type WorkingSet struct{ base }

// NewWorkingSet returns a WorkingSet pager with its hand at frame 0.
func NewWorkingSet() *WorkingSet { return &WorkingSet{} }

func eligible(f *frame.Frame, reg frame.Registry, instCount uint64) bool {
	entry := f.PTE(reg)
	if entry.Referenced {
		return false
	}
	return int64(instCount)-2-int64(f.LastUsed) >= tau
}

// SelectVictim scans at most one full revolution for an eligible frame;
// failing that, it falls back to the oldest unreferenced frame, or the
// globally oldest frame if every frame is referenced.
func (p *WorkingSet) SelectVictim(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	mustFrame(t, n)

	victim := &t.Frames[p.hand]
	scanned := 0
	for !eligible(victim, reg, instCount) && scanned != n {
		scanned++
		entry := victim.PTE(reg)
		if entry.Referenced {
			entry.Referenced = false
			victim.LastUsed = int(instCount) - 1
		}
		p.hand = (p.hand + 1) % n
		victim = &t.Frames[p.hand]
	}

	if scanned == n {
		victim = p.oldest(t, reg, instCount)
	}

	p.hand = (victim.ID + 1) % n
	return victim
}

// oldest picks the oldest unreferenced frame, or the globally oldest
// frame if every frame is currently referenced. p.hand is the start
// point; SelectVictim's full-revolution scan above guarantees it
// is unchanged on entry here.
func (p *WorkingSet) oldest(t *frame.Table, reg frame.Registry, instCount uint64) *frame.Frame {
	n := t.Size()
	start := p.hand

	globalOldest := &t.Frames[start]
	globalOldestAge := int64(instCount) - int64(globalOldest.LastUsed)

	var unrefOldest *frame.Frame
	unrefOldestAge := int64(-1)
	if !globalOldest.PTE(reg).Referenced {
		unrefOldest = globalOldest
		unrefOldestAge = globalOldestAge
	}

	for cur := (start + 1) % n; cur != start; cur = (cur + 1) % n {
		f := &t.Frames[cur]
		age := int64(instCount) - int64(f.LastUsed)
		if age > globalOldestAge {
			globalOldest = f
			globalOldestAge = age
		}
		if !f.PTE(reg).Referenced {
			if unrefOldest == nil || age > unrefOldestAge {
				unrefOldest = f
				unrefOldestAge = age
			}
		}
	}

	if unrefOldest == nil {
		return globalOldest
	}
	return unrefOldest
}
