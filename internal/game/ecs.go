package game

type EntityID int64

// IDSource hands out entity IDs that are never reused within a room.
type IDSource struct {
	next EntityID
}

func (s *IDSource) NewEntity() EntityID {
	s.next++
	return s.next
}

type storeEntry[T any] struct {
	id      EntityID
	val     *T
	removed bool
}

// Store is an insertion-ordered collection of one entity type. Removal only
// tombstones an entry; Sweep drops tombstones once no pass is iterating.
type Store[T any] struct {
	entries []storeEntry[T]
	index   map[EntityID]int
	live    int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[EntityID]int)}
}

func (s *Store[T]) Add(id EntityID, v *T) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, storeEntry[T]{id: id, val: v})
	s.live++
}

func (s *Store[T]) Get(id EntityID) *T {
	if i, ok := s.index[id]; ok && !s.entries[i].removed {
		return s.entries[i].val
	}
	return nil
}

func (s *Store[T]) Alive(id EntityID) bool {
	return s.Get(id) != nil
}

// Remove tombstones id. It reports false if id was unknown or already removed.
func (s *Store[T]) Remove(id EntityID) bool {
	i, ok := s.index[id]
	if !ok || s.entries[i].removed {
		return false
	}
	s.entries[i].removed = true
	s.live--
	return true
}

// Each visits live entries in insertion order. Entries added during the walk are
// not visited; entries removed during the walk are skipped from then on.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.removed {
			continue
		}
		fn(e.id, e.val)
	}
}

// Sweep compacts away removed entries.
func (s *Store[T]) Sweep() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.removed {
			delete(s.index, e.id)
			continue
		}
		s.index[e.id] = len(kept)
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = storeEntry[T]{}
	}
	s.entries = kept
}

func (s *Store[T]) Len() int { return s.live }

// Values returns the live entities in insertion order.
func (s *Store[T]) Values() []*T {
	out := make([]*T, 0, s.live)
	s.Each(func(_ EntityID, v *T) {
		out = append(out, v)
	})
	return out
}
