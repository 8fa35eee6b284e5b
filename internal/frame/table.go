// Package frame holds the per-chunk frame table and the per-frame uniform
// state consumed by the reconstruction stage.
package frame

// Entry is one frame-table record: the owning chunk's grid position (in
// chunk units, not blocks) and the 3-bit face-normal index shared by every
// instance of the group. Entries are rebuilt whenever the owning chunk's
// geometry changes and are read-only for the duration of a frame.
type Entry struct {
	Offset [3]int32
	Normal uint32
}

// Table is an index-stable list of entries. Instances reference entries by
// index, so removing a group must not shift the others; freed slots are
// recycled on the next insert instead.
type Table struct {
	entries []Entry
	free    []uint32
}

func NewTable() *Table {
	return &Table{}
}

// Insert stores an entry and returns its stable index.
func (t *Table) Insert(e Entry) uint32 {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.entries[idx] = e
		return idx
	}
	t.entries = append(t.entries, e)
	return uint32(len(t.entries) - 1)
}

// Remove releases the slot for reuse. The entry data is left in place until
// the slot is recycled; instances referencing a removed index are the
// producer's bug, not detectable here.
func (t *Table) Remove(idx uint32) {
	t.free = append(t.free, idx)
}

// Update rewrites an entry in place, keeping its index.
func (t *Table) Update(idx uint32, e Entry) {
	t.entries[idx] = e
}

// At returns the entry at idx.
func (t *Table) At(idx uint32) Entry {
	return t.entries[idx]
}

// Entries exposes the backing slice for bulk upload to the GPU-side buffer.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len is the number of allocated slots, including freed ones still awaiting
// reuse (the GPU buffer must cover them all).
func (t *Table) Len() int {
	return len(t.entries)
}
