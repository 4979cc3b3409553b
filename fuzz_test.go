package flatfat

import "testing"

// FuzzDirEntryNameRoundTrip exercises the name accessor against
// arbitrary byte content, confirming setName/Name never panics and
// always round-trips through the NUL-terminated field for any legally
// sized input.
func FuzzDirEntryNameRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("readme.txt")
	f.Add("0123456789abcd") // exactly MaxFilenameLength-1 bytes.

	f.Fuzz(func(t *testing.T, name string) {
		if len(name) > MaxFilenameLength-1 {
			name = name[:MaxFilenameLength-1]
		}
		dt := newDirectoryTable()
		e := dt.entry(0)
		e.clear()
		e.setName(name)
		if got := e.Name(); got != name {
			t.Fatalf("round trip: setName(%q) then Name() = %q", name, got)
		}
	})
}

// FuzzFatTableEncodeDecode confirms that any sequence of legal FAT
// entries survives an encode/decode cycle unchanged.
func FuzzFatTableEncodeDecode(f *testing.F) {
	f.Add(uint32(0), uint32(1), uint32(2))
	f.Add(fatFree, fatEOF, uint32(0))

	f.Fuzz(func(t *testing.T, a, b, c uint32) {
		tbl := &fatTable{entries: []uint32{a, b, c}}
		buf := make([]byte, fatByteSize(3))
		tbl.encode(buf)

		other := &fatTable{entries: make([]uint32, 3)}
		other.decode(buf)

		for i := range tbl.entries {
			if other.entries[i] != tbl.entries[i] {
				t.Fatalf("entries[%d] = %x, want %x", i, other.entries[i], tbl.entries[i])
			}
		}
	})
}

// FuzzSuperblockValid confirms valid() never panics regardless of
// buffer length or contents.
func FuzzSuperblockValid(f *testing.F) {
	f.Add(make([]byte, superblockSize))
	good := make([]byte, superblockSize)
	for i, b := range []byte{0xEF, 0xBE, 0xDE, 0xFA} {
		good[i] = b
	}
	f.Add(good)

	f.Fuzz(func(t *testing.T, data []byte) {
		sb := superblock{data: data}
		_ = sb.valid() // must not panic for any length, including 0.
	})
}
