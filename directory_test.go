package flatfat

import "testing"

func TestDirEntryByteLayoutRoundTrip(t *testing.T) {
	dt := newDirectoryTable()
	e := dt.entry(0)
	e.clear()
	e.setName("hello.txt")
	e.setStartCluster(42)
	e.setFileSize(1024)

	if got := e.Name(); got != "hello.txt" {
		t.Fatalf("Name() = %q, want %q", got, "hello.txt")
	}
	if got := e.StartCluster(); got != 42 {
		t.Fatalf("StartCluster() = %d, want 42", got)
	}
	if got := e.FileSize(); got != 1024 {
		t.Fatalf("FileSize() = %d, want 1024", got)
	}

	// Re-wrap the same backing bytes to confirm the accessor is a pure
	// view, not a cached copy.
	e2 := dt.entry(0)
	if got := e2.Name(); got != "hello.txt" {
		t.Fatalf("re-wrapped Name() = %q, want %q", got, "hello.txt")
	}
}

func TestDirEntryEmpty(t *testing.T) {
	dt := newDirectoryTable()
	e := dt.entry(0)
	if !e.empty() {
		t.Fatal("fresh entry should be empty")
	}
	e.setName("f")
	if e.empty() {
		t.Fatal("entry with a name should not be empty")
	}
	e.clear()
	if !e.empty() {
		t.Fatal("cleared entry should be empty again")
	}
}

func TestDirectoryTableInsertFindRemove(t *testing.T) {
	dt := newDirectoryTable()
	idx, err := dt.insert("a")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if idx != 0 {
		t.Fatalf("insert returned %d, want lowest free index 0", idx)
	}

	found, err := dt.find("a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != idx {
		t.Fatalf("find returned %d, want %d", found, idx)
	}

	dt.remove(idx)
	if _, err := dt.find("a"); err != ErrNotFound {
		t.Fatalf("find after remove = %v, want ErrNotFound", err)
	}
}

func TestDirectoryTableInsertDuplicate(t *testing.T) {
	dt := newDirectoryTable()
	if _, err := dt.insert("dup"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := dt.insert("dup"); err != ErrAlreadyExists {
		t.Fatalf("second insert = %v, want ErrAlreadyExists", err)
	}
}

func TestDirectoryTableInsertInvalidName(t *testing.T) {
	dt := newDirectoryTable()
	if _, err := dt.insert(""); err != ErrInvalidArgument {
		t.Fatalf("insert empty name = %v, want ErrInvalidArgument", err)
	}
	tooLong := "0123456789abcde" // 15 bytes, one past MaxFilenameLength-1.
	if _, err := dt.insert(tooLong); err != ErrInvalidArgument {
		t.Fatalf("insert too-long name = %v, want ErrInvalidArgument", err)
	}
	maxLen := "0123456789abcd" // 14 bytes, fits exactly.
	if _, err := dt.insert(maxLen); err != nil {
		t.Fatalf("insert max-length name: %v", err)
	}
}

func TestDirectoryTableFull(t *testing.T) {
	dt := newDirectoryTable()
	for i := 0; i < MaxFiles; i++ {
		name := string(rune('a'+i%26)) + string(rune('A'+i/26))
		if _, err := dt.insert(name); err != nil {
			t.Fatalf("insert %d (%s): %v", i, name, err)
		}
	}
	if _, err := dt.insert("overflow"); err != ErrNoSpace {
		t.Fatalf("insert into full table = %v, want ErrNoSpace", err)
	}
}

func TestDirectoryTableInsertReusesFreedSlot(t *testing.T) {
	dt := newDirectoryTable()
	idx, _ := dt.insert("first")
	dt.remove(idx)
	idx2, err := dt.insert("second")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if idx2 != idx {
		t.Fatalf("insert after remove reused slot %d, want %d", idx2, idx)
	}
}

func TestCstring(t *testing.T) {
	buf := make([]byte, 8)
	copy(buf, "ab")
	if got := cstring(buf); got != "ab" {
		t.Fatalf("cstring = %q, want %q", got, "ab")
	}
	full := []byte("abcdefgh")
	if got := cstring(full); got != "abcdefgh" {
		t.Fatalf("cstring with no NUL = %q, want %q", got, "abcdefgh")
	}
}
