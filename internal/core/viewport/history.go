package viewport

import "iter"

// HistoryCapacity is the maximum number of focuses kept for back navigation.
const HistoryCapacity = 25

// History is a bounded most-recent-first stack of focuses. The front entry is
// the current focus. Entries are value snapshots; panning replaces the front
// entry through MoveCurrent rather than mutating a shared object.
//
// Storage is a fixed ring so pushing and evicting the oldest entry are O(1).
// The zero value is an empty history with capacity HistoryCapacity.
type History struct {
	buf  [HistoryCapacity]Focus
	head int // index of the front (most recent) entry
	size int
}

// NewHistory returns a history seeded with the given entries, front first.
func NewHistory(entries ...Focus) *History {
	h := &History{}
	for i := len(entries) - 1; i >= 0; i-- {
		h.Push(entries[i])
	}
	return h
}

// Len returns the number of entries.
func (h *History) Len() int { return h.size }

// Empty reports whether the history has no entries.
func (h *History) Empty() bool { return h.size == 0 }

// Current returns the front entry. ok is false when the history is empty.
func (h *History) Current() (f Focus, ok bool) {
	if h.size == 0 {
		return Focus{}, false
	}
	return h.buf[h.head], true
}

// At returns the i-th entry counted from the front.
func (h *History) At(i int) Focus {
	if i < 0 || i >= h.size {
		panic("viewport: history index out of range")
	}
	return h.buf[(h.head+i)%HistoryCapacity]
}

// Push prepends f. Pushing a focus equal to the current front is a no-op.
// When the history is full the oldest entry is dropped. Push reports whether
// the history changed.
func (h *History) Push(f Focus) bool {
	if cur, ok := h.Current(); ok && cur.Equal(f) {
		return false
	}

	h.head = (h.head - 1 + HistoryCapacity) % HistoryCapacity
	h.buf[h.head] = f
	if h.size < HistoryCapacity {
		h.size++
	}
	return true
}

// Pop removes the front entry. If that leaves the history empty, home is
// pushed so that a current focus always exists afterwards.
func (h *History) Pop(home Focus) {
	if h.size > 0 {
		h.buf[h.head] = Focus{}
		h.head = (h.head + 1) % HistoryCapacity
		h.size--
	}
	if h.size == 0 {
		h.Push(home)
	}
}

// MoveCurrent pans the front entry by (dx, dy) without recording history.
// It does nothing on an empty history.
func (h *History) MoveCurrent(dx, dy float64) {
	if h.size == 0 {
		return
	}
	h.buf[h.head] = h.buf[h.head].Moved(dx, dy)
}

// Entries returns a copy of all entries, front first.
func (h *History) Entries() []Focus {
	out := make([]Focus, 0, h.size)
	for _, f := range h.All() {
		out = append(out, f)
	}
	return out
}

// All iterates entries front first, yielding their index and value.
func (h *History) All() iter.Seq2[int, Focus] {
	return func(yield func(int, Focus) bool) {
		for i := 0; i < h.size; i++ {
			if !yield(i, h.At(i)) {
				return
			}
		}
	}
}

// Reset drops every entry.
func (h *History) Reset() {
	*h = History{}
}
