package game

import "testing"

func TestStoreRemoveDuringWalk(t *testing.T) {
	s := NewStore[int]()
	vals := []int{1, 2, 3, 4}
	for i := range vals {
		s.Add(EntityID(i+1), &vals[i])
	}

	var seen []EntityID
	s.Each(func(id EntityID, _ *int) {
		seen = append(seen, id)
		if id == 1 {
			s.Remove(3)
			s.Add(5, new(int))
		}
	})
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 4 {
		t.Fatalf("unexpected walk order %v", seen)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 live entries, got %d", s.Len())
	}
	if s.Remove(3) {
		t.Fatal("expected double remove to report false")
	}

	s.Sweep()
	if s.Alive(3) || !s.Alive(5) {
		t.Fatal("sweep kept a tombstone or lost a live entry")
	}
	if got := len(s.Values()); got != 4 {
		t.Fatalf("expected 4 values after sweep, got %d", got)
	}
	if *s.Get(4) != 4 {
		t.Fatal("index broken after sweep")
	}
}
