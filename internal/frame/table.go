package frame

// Table is the global frame table plus its FIFO free pool. Created once
// at startup with F frames, all initially free.
type Table struct {
	Frames []Frame
	free   []int // FIFO queue of free frame ids, oldest first
}

// NewTable builds a frame table of the given size with every frame on
// the free list in ascending id order.
func NewTable(size int) *Table {
	t := &Table{
		Frames: make([]Frame, size),
		free:   make([]int, size),
	}
	for i := range t.Frames {
		t.Frames[i].ID = i
		t.free[i] = i
	}
	return t
}

// Size is the number of frames in the table (the spec's F).
func (t *Table) Size() int { return len(t.Frames) }

// popFree pops the oldest frame off the free pool, or returns (nil,
// false) when the pool is empty.
func (t *Table) popFree() (*Frame, bool) {
	if len(t.free) == 0 {
		return nil, false
	}
	id := t.free[0]
	t.free = t.free[1:]
	return &t.Frames[id], true
}

// pushFree returns a frame to the free pool. Only called during exit-time
// reclamation (spec.md §4.6): pagers never push into the free pool.
func (t *Table) pushFree(id int) {
	t.free = append(t.free, id)
}

// Acquire returns a frame to map a fresh page into: the oldest free
// frame if one exists, otherwise nil so the caller falls back to victim
// selection.
func (t *Table) Acquire() (*Frame, bool) {
	return t.popFree()
}

// Reclaim pushes a frame back onto the free pool after an exit-time
// unmap reported UnmapOutcome == Reclaimed.
func (t *Table) Reclaim(f *Frame) {
	t.pushFree(f.ID)
}
