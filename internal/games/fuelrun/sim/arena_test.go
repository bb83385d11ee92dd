package sim

import "testing"

func TestArenaInsertGet(t *testing.T) {
	var a Arena[int]
	h := a.Insert(7)

	v, ok := a.Get(h)
	if !ok || *v != 7 {
		t.Fatalf("Get() = %v, %v; want 7, true", v, ok)
	}
	if !a.Alive(h) {
		t.Error("fresh record should be alive")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaZeroHandle(t *testing.T) {
	var a Arena[int]
	a.Insert(1)

	var h Handle
	if !h.IsZero() {
		t.Error("zero Handle should report IsZero")
	}
	if _, ok := a.Get(h); ok {
		t.Error("zero Handle should not resolve")
	}
	if a.MarkDestroy(h) {
		t.Error("zero Handle should not be markable")
	}
}

func TestArenaDeferredDestroy(t *testing.T) {
	var a Arena[string]
	h := a.Insert("enemy")

	if !a.MarkDestroy(h) {
		t.Fatal("first MarkDestroy should succeed")
	}
	if a.MarkDestroy(h) {
		t.Error("second MarkDestroy of the same record should be ignored")
	}

	// Marked records stay readable until the flush.
	if v, ok := a.Get(h); !ok || *v != "enemy" {
		t.Errorf("marked record should still resolve before Flush, got %v, %v", v, ok)
	}
	if a.Alive(h) {
		t.Error("marked record should not be alive")
	}
	if !a.PendingDestroy(h) {
		t.Error("marked record should be pending")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after marking", a.Len())
	}
	if len(a.Handles()) != 0 {
		t.Error("Handles() should skip marked records")
	}

	if n := a.Flush(); n != 1 {
		t.Errorf("Flush() = %d, want 1", n)
	}
	if _, ok := a.Get(h); ok {
		t.Error("flushed record should not resolve")
	}
	if n := a.Flush(); n != 0 {
		t.Errorf("second Flush() = %d, want 0", n)
	}
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	var a Arena[int]
	old := a.Insert(1)
	a.MarkDestroy(old)
	a.Flush()

	fresh := a.Insert(2)
	if fresh == old {
		t.Fatal("reused slot should carry a new generation")
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle resolved to the new occupant")
	}
	if v, ok := a.Get(fresh); !ok || *v != 2 {
		t.Errorf("Get(fresh) = %v, %v; want 2, true", v, ok)
	}
}

func TestArenaHandlesSnapshot(t *testing.T) {
	var a Arena[int]
	for i := 0; i < 5; i++ {
		a.Insert(i)
	}
	hs := a.Handles()
	a.MarkDestroy(hs[1])
	a.MarkDestroy(hs[3])
	a.Insert(99)

	if len(hs) != 5 {
		t.Errorf("snapshot changed length: %d", len(hs))
	}

	var got []int
	a.Each(func(_ Handle, v *int) {
		got = append(got, *v)
	})
	want := []int{0, 2, 4, 99}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArenaClear(t *testing.T) {
	var a Arena[int]
	h1 := a.Insert(1)
	h2 := a.Insert(2)
	a.MarkDestroy(h1)

	a.Clear()

	if a.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", a.Len())
	}
	if _, ok := a.Get(h2); ok {
		t.Error("handles should be stale after Clear")
	}
	if n := a.Flush(); n != 0 {
		t.Errorf("Flush() after Clear = %d, want 0", n)
	}
}
