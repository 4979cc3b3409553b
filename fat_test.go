package flatfat

import "testing"

func TestFatTableAllocateInitialAndExtend(t *testing.T) {
	tbl := newFatTable(4)
	if tbl.freeCount != 4 {
		t.Fatalf("freeCount = %d, want 4", tbl.freeCount)
	}

	b0, err := tbl.allocateInitial()
	if err != nil {
		t.Fatalf("allocateInitial: %v", err)
	}
	if b0 != 0 {
		t.Fatalf("allocateInitial returned %d, want lowest free index 0", b0)
	}
	if tbl.entries[b0] != fatEOF {
		t.Fatalf("entries[%d] = %x, want fatEOF", b0, tbl.entries[b0])
	}
	if tbl.freeCount != 3 {
		t.Fatalf("freeCount = %d, want 3", tbl.freeCount)
	}

	b1, err := tbl.extend(b0)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if b1 != 1 {
		t.Fatalf("extend returned %d, want 1", b1)
	}
	if tbl.entries[b0] != b1 {
		t.Fatalf("entries[%d] = %d, want %d", b0, tbl.entries[b0], b1)
	}
	if tbl.entries[b1] != fatEOF {
		t.Fatalf("entries[%d] = %x, want fatEOF", b1, tbl.entries[b1])
	}

	n, err := tbl.chainLength(b0)
	if err != nil {
		t.Fatalf("chainLength: %v", err)
	}
	if n != 2 {
		t.Fatalf("chainLength = %d, want 2", n)
	}
}

func TestFatTableAllocateInitialNoSpace(t *testing.T) {
	tbl := newFatTable(1)
	if _, err := tbl.allocateInitial(); err != nil {
		t.Fatalf("first allocateInitial: %v", err)
	}
	if _, err := tbl.allocateInitial(); err != ErrNoSpace {
		t.Fatalf("second allocateInitial = %v, want ErrNoSpace", err)
	}
}

func TestFatTableWalk(t *testing.T) {
	tbl := newFatTable(4)
	b0, _ := tbl.allocateInitial()
	b1, _ := tbl.extend(b0)
	b2, _ := tbl.extend(b1)

	got, err := tbl.walk(b0, 2)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if got != b2 {
		t.Fatalf("walk(b0, 2) = %d, want %d", got, b2)
	}

	got, err = tbl.walk(b0, 0)
	if err != nil {
		t.Fatalf("walk(b0, 0): %v", err)
	}
	if got != b0 {
		t.Fatalf("walk(b0, 0) = %d, want %d", got, b0)
	}
}

func TestFatTableWalkPastEOFIsCorruption(t *testing.T) {
	tbl := newFatTable(2)
	b0, _ := tbl.allocateInitial()
	if _, err := tbl.walk(b0, 1); err != ErrCorruption {
		t.Fatalf("walk past EOF = %v, want ErrCorruption", err)
	}
}

func TestFatTableFreeChain(t *testing.T) {
	tbl := newFatTable(4)
	b0, _ := tbl.allocateInitial()
	b1, _ := tbl.extend(b0)
	_, _ = tbl.extend(b1)

	if err := tbl.freeChain(b0); err != nil {
		t.Fatalf("freeChain: %v", err)
	}
	if tbl.freeCount != 4 {
		t.Fatalf("freeCount = %d, want 4 after freeing whole chain", tbl.freeCount)
	}
	for i, e := range tbl.entries {
		if e != fatFree {
			t.Fatalf("entries[%d] = %x, want fatFree", i, e)
		}
	}
}

func TestFatTableEncodeDecodeRoundTrip(t *testing.T) {
	tbl := newFatTable(8)
	b0, _ := tbl.allocateInitial()
	b1, _ := tbl.extend(b0)
	_, _ = tbl.extend(b1)

	buf := make([]byte, fatByteSize(8))
	tbl.encode(buf)

	other := newFatTable(8)
	other.decode(buf)

	if other.freeCount != tbl.freeCount {
		t.Fatalf("decoded freeCount = %d, want %d", other.freeCount, tbl.freeCount)
	}
	for i := range tbl.entries {
		if other.entries[i] != tbl.entries[i] {
			t.Fatalf("entries[%d] = %x, want %x", i, other.entries[i], tbl.entries[i])
		}
	}
}

func TestFatTableFindFreeExhausted(t *testing.T) {
	tbl := newFatTable(2)
	_, _ = tbl.allocateInitial()
	_, _ = tbl.allocateInitial()
	if _, ok := tbl.findFree(); ok {
		t.Fatal("findFree reported a free entry on a full table")
	}
}
