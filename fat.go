package flatfat

import "encoding/binary"

// fatTable is the in-memory File Allocation Table: a contiguous vector
// of 32-bit entries indexed by data-block number, each either a
// sentinel (fatFree, fatEOF) or the index of the next block in its
// chain. It owns no disk I/O of its own; the lifecycle controller loads
// and flushes it against the block device (see blockio.go).
type fatTable struct {
	entries   []uint32
	freeCount uint32
}

func newFatTable(n int64) *fatTable {
	t := &fatTable{entries: make([]uint32, n)}
	for i := range t.entries {
		t.entries[i] = fatFree
	}
	t.freeCount = uint32(n)
	return t
}

// findFree returns the lowest-indexed free block, or (0, false) if the
// table has no free entries. Tie-break is strictly lowest index so
// allocation is deterministic for testing, per spec.md §4.2.
func (t *fatTable) findFree() (uint32, bool) {
	for i, e := range t.entries {
		if e == fatFree {
			return uint32(i), true
		}
	}
	return 0, false
}

// allocateInitial reserves the lowest free block, terminates its chain
// immediately, and returns it. Fails with NoSpace if none is free.
func (t *fatTable) allocateInitial() (uint32, error) {
	b, ok := t.findFree()
	if !ok {
		return 0, ErrNoSpace
	}
	t.entries[b] = fatEOF
	t.freeCount--
	return b, nil
}

// extend links a new block onto the end of the chain whose current
// last block is tail, and returns the new block's index.
func (t *fatTable) extend(tail uint32) (uint32, error) {
	b, ok := t.findFree()
	if !ok {
		return 0, ErrNoSpace
	}
	t.entries[tail] = b
	t.entries[b] = fatEOF
	t.freeCount--
	return b, nil
}

// walk advances n links starting from start and returns the index
// reached. It reports Corruption if a fatFree entry is encountered
// before n links have elapsed while more links were still required.
func (t *fatTable) walk(start uint32, n int) (uint32, error) {
	current := start
	for i := 0; i < n; i++ {
		next := t.entries[current]
		if next == fatFree {
			return 0, ErrCorruption
		}
		if next == fatEOF {
			return 0, ErrCorruption // walked past the end of a shorter-than-expected chain.
		}
		current = next
	}
	return current, nil
}

// freeChain walks the chain starting at start until fatEOF, marking
// every visited block fatFree and incrementing the free counter.
func (t *fatTable) freeChain(start uint32) error {
	current := start
	for {
		next := t.entries[current]
		if next == fatFree {
			return ErrCorruption
		}
		t.entries[current] = fatFree
		t.freeCount++
		if next == fatEOF {
			return nil
		}
		current = next
	}
}

// chainLength returns the number of distinct blocks from start to
// fatEOF inclusive, or Corruption if the chain runs into a free block.
func (t *fatTable) chainLength(start uint32) (int, error) {
	n := 0
	current := start
	for {
		n++
		next := t.entries[current]
		if next == fatEOF {
			return n, nil
		}
		if next == fatFree {
			return 0, ErrCorruption
		}
		current = next
	}
}

// encode serializes the table into dst as tightly packed little-endian
// uint32 entries, as required by spec.md §6.
func (t *fatTable) encode(dst []byte) {
	for i, e := range t.entries {
		binary.LittleEndian.PutUint32(dst[i*fatEntrySize:], e)
	}
}

// decode loads the table's entries from a tightly packed little-endian
// uint32 byte buffer.
func (t *fatTable) decode(src []byte) {
	t.freeCount = 0
	for i := range t.entries {
		e := binary.LittleEndian.Uint32(src[i*fatEntrySize:])
		t.entries[i] = e
		if e == fatFree {
			t.freeCount++
		}
	}
}

// fatByteSize returns the number of bytes needed to store n FAT entries.
func fatByteSize(n int64) int64 {
	return n * fatEntrySize
}
