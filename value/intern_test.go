package value

import "testing"

func TestInternUniqueness(t *testing.T) {
	heap := NewHeap()
	s1 := heap.CopyString("duplicate")
	s2 := heap.CopyString("duplicate")
	if s1 != s2 {
		t.Errorf("CopyString with equal bytes returned different handles")
	}
}

func TestTakeStringReusesInternedHandle(t *testing.T) {
	heap := NewHeap()
	copied := heap.CopyString("shared")
	taken := heap.TakeString("shared")
	if copied != taken {
		t.Errorf("TakeString should return the already-interned handle on a hit")
	}
}

func TestInternTableGrowsAndSurvivesRehash(t *testing.T) {
	heap := NewHeap()
	var strs []*String
	for i := 0; i < 100; i++ {
		strs = append(strs, heap.CopyString(string(rune('a'+i%26))+string(rune(i))))
	}
	for i, s := range strs {
		got := heap.CopyString(s.Chars)
		if got != s {
			t.Fatalf("entry %d lost identity after growth", i)
		}
	}
}

func TestTombstoneDeleteThenReinsert(t *testing.T) {
	table := NewInternTable()
	key := &String{Chars: "k", Hash: hashString("k")}
	table.Set(key, Number(1))

	if !table.Delete(key) {
		t.Fatalf("Delete should report the key was present")
	}
	if _, ok := table.Get(key); ok {
		t.Errorf("Get should miss after Delete")
	}

	if !table.Set(key, Number(2)) {
		t.Errorf("Set after Delete should report a new insertion")
	}
	got, ok := table.Get(key)
	if !ok || got.Number != 2 {
		t.Errorf("Get after re-Set = (%v, %v), want (2, true)", got, ok)
	}
}

func TestFindStringMatchesByHashLengthAndBytes(t *testing.T) {
	table := NewInternTable()
	key := &String{Chars: "needle", Hash: hashString("needle")}
	table.Set(key, Nil)

	found := table.FindString("needle", hashString("needle"))
	if found != key {
		t.Errorf("FindString should return the interned handle")
	}

	if table.FindString("needles", hashString("needles")) != nil {
		t.Errorf("FindString should not match on differing length")
	}
}
