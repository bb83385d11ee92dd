package sim

// Handle refers to a record in an Arena. The zero Handle never refers to
// anything; a handle whose record was destroyed stops resolving because the
// slot's generation moves on.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the empty handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
	doom  bool
}

// Arena stores records of one type with generation-checked handles.
//
// Destruction is two-phase: MarkDestroy hides a record from iteration while
// keeping it readable through its handle, and Flush releases every marked
// record at the end of the frame.
type Arena[T any] struct {
	slots   []slot[T]
	free    []uint32
	pending []Handle
	live    int
}

// Insert stores v and returns its handle. Freed slots are reused LIFO.
func (a *Arena[T]) Insert(v T) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		s.doom = false
		a.live++
		return Handle{index: idx, gen: s.gen}
	}

	a.slots = append(a.slots, slot[T]{value: v, gen: 1, live: true})
	a.live++
	return Handle{index: uint32(len(a.slots) - 1), gen: 1} //#nosec G115 -- arena sizes stay far below 2^32
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}

// Get returns the record for h. Records marked for destruction are still
// returned until the next Flush.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	s := a.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Alive reports whether h resolves and is not marked for destruction.
func (a *Arena[T]) Alive(h Handle) bool {
	s := a.lookup(h)
	return s != nil && !s.doom
}

// MarkDestroy schedules h for removal at the next Flush.
// It returns false if h is stale or already marked.
func (a *Arena[T]) MarkDestroy(h Handle) bool {
	s := a.lookup(h)
	if s == nil || s.doom {
		return false
	}
	s.doom = true
	a.pending = append(a.pending, h)
	return true
}

// PendingDestroy reports whether h is marked but not yet flushed.
func (a *Arena[T]) PendingDestroy(h Handle) bool {
	s := a.lookup(h)
	return s != nil && s.doom
}

// Flush releases every marked record and returns how many were removed.
func (a *Arena[T]) Flush() int {
	n := 0
	for _, h := range a.pending {
		if a.release(h) {
			n++
		}
	}
	a.pending = a.pending[:0]
	return n
}

func (a *Arena[T]) release(h Handle) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	var zero T
	s.value = zero
	s.live = false
	s.doom = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Clear releases every record immediately. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.release(Handle{index: uint32(i), gen: a.slots[i].gen}) //#nosec G115 -- arena sizes stay far below 2^32
		}
	}
	a.pending = a.pending[:0]
}

// Handles returns the live, unmarked handles in index order.
// The slice is a snapshot: records inserted afterwards are not included.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if s.live && !s.doom {
			out = append(out, Handle{index: uint32(i), gen: s.gen}) //#nosec G115 -- arena sizes stay far below 2^32
		}
	}
	return out
}

// Each calls fn for every live, unmarked record in index order.
// fn may mark records but must not insert into the same arena; use Handles
// for passes that spawn records of the type being iterated.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if s.live && !s.doom {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.value) //#nosec G115 -- arena sizes stay far below 2^32
		}
	}
}

// Len returns the number of unmarked live records.
func (a *Arena[T]) Len() int {
	return a.live - len(a.pending)
}
