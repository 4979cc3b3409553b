package flatfat

import "encoding/binary"

// Directory entry byte layout, packed little-endian, per spec.md §6
// with the §3/§9 width resolution applied to startCluster (4 bytes
// instead of the literal spec's 2, so it can hold the full 32-bit
// sentinel range without collision).
const (
	deName         = 0                    // 15 bytes, NUL-terminated.
	deAttr         = deName + 15          // 1 byte, reserved.
	deCreateTime   = deAttr + 1           // 2 bytes, reserved.
	deCreateDate   = deCreateTime + 2     // 2 bytes, reserved.
	deAccessDate   = deCreateDate + 2     // 2 bytes, reserved.
	deModTime      = deAccessDate + 2     // 2 bytes, reserved.
	deModDate      = deModTime + 2        // 2 bytes, reserved.
	deStartCluster = deModDate + 2        // 4 bytes.
	deFileSize     = deStartCluster + 4   // 4 bytes.
	deEntryEnd     = deFileSize + 4       // total record length.
)

var _ [dirEntrySize - deEntryEnd]struct{} // compile-time check: dirEntrySize matches the layout above.

// dirEntry is a thin accessor over one dirEntrySize-byte record, in the
// same raw-byte-window idiom used for the superblock.
type dirEntry struct {
	data []byte
}

func (e dirEntry) empty() bool { return e.data[deName] == 0 }

func (e dirEntry) Name() string {
	return cstring(e.data[deName : deName+MaxFilenameLength])
}

func (e dirEntry) setName(name string) {
	buf := e.data[deName : deName+MaxFilenameLength]
	clear(buf)
	copy(buf, name)
}

func (e dirEntry) StartCluster() uint32 {
	return binary.LittleEndian.Uint32(e.data[deStartCluster:])
}
func (e dirEntry) setStartCluster(v uint32) {
	binary.LittleEndian.PutUint32(e.data[deStartCluster:], v)
}

func (e dirEntry) FileSize() uint32 { return binary.LittleEndian.Uint32(e.data[deFileSize:]) }
func (e dirEntry) setFileSize(v uint32) {
	binary.LittleEndian.PutUint32(e.data[deFileSize:], v)
}

func (e dirEntry) clear() { clear(e.data) }

// cstring returns the bytes up to the first NUL (or the whole slice if
// none is present) as a string.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// directoryTable is the fixed-capacity, flat directory: MAX_FILES
// entries, linear-scanned by name.
type directoryTable struct {
	data []byte // MaxFiles * dirEntrySize bytes.
}

func newDirectoryTable() *directoryTable {
	return &directoryTable{data: make([]byte, MaxFiles*dirEntrySize)}
}

func (d *directoryTable) entry(i int) dirEntry {
	return dirEntry{data: d.data[i*dirEntrySize : (i+1)*dirEntrySize]}
}

// find returns the index of the occupied entry with the given name, or
// NotFound. Linear scan, first exact byte match, per spec.md §4.3.
func (d *directoryTable) find(name string) (int, error) {
	for i := 0; i < MaxFiles; i++ {
		e := d.entry(i)
		if !e.empty() && e.Name() == name {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

func validFilename(name string) error {
	if name == "" {
		return ErrInvalidArgument
	}
	if len(name) > MaxFilenameLength-1 {
		return ErrInvalidArgument
	}
	return nil
}

// insert validates name, rejects duplicates, finds the lowest-indexed
// empty slot, writes name and zeroes every other field, leaving
// startCluster/fileSize for the caller to fill in (the directory table
// itself does not talk to the FAT manager; see ops.go's Create).
func (d *directoryTable) insert(name string) (int, error) {
	if err := validFilename(name); err != nil {
		return 0, err
	}
	if _, err := d.find(name); err == nil {
		return 0, ErrAlreadyExists
	}
	for i := 0; i < MaxFiles; i++ {
		e := d.entry(i)
		if e.empty() {
			e.clear()
			e.setName(name)
			return i, nil
		}
	}
	return 0, ErrNoSpace
}

func (d *directoryTable) remove(index int) {
	d.entry(index).clear()
}
