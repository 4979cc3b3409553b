package flatfat

import "log/slog"

// clusterOf maps a data-block (cluster) index to its absolute block
// index on the underlying device.
func (fs *FS) clusterOf(cluster uint32) int64 {
	return fs.lay.dataStart + int64(cluster)
}

// Read reads up to len(buf) bytes from the file bound to h starting at
// its current offset, advancing the offset by the number of bytes
// actually read. Returns 0 at end of file. Implements spec.md §4.5
// Read step for step.
func (fs *FS) Read(h Handle, buf []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("read", slog.Int("handle", int(h)), slog.Int("len", len(buf)))
	if err := fs.checkMounted(); err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, ErrInvalidArgument
	}
	d, err := fs.desc.resolve(h)
	if err != nil {
		return 0, err
	}
	e := fs.dir.entry(d.fileIndex)
	fileSize := int64(e.FileSize())

	if d.offset >= fileSize {
		return 0, nil
	}
	toRead := int64(len(buf))
	if rem := fileSize - d.offset; toRead > rem {
		toRead = rem
	}

	clusterOffset := int(d.offset / int64(fs.lay.blockSize))
	intra := int(d.offset % int64(fs.lay.blockSize))

	current, err := fs.fat.walk(e.StartCluster(), clusterOffset)
	if err != nil {
		return 0, err
	}

	block := make([]byte, fs.lay.blockSize)
	var read int64
	for read < toRead {
		if err := readBlock(fs.device, fs.clusterOf(current), block); err != nil {
			return int(read), err
		}
		n := int64(fs.lay.blockSize - intra)
		if rem := toRead - read; n > rem {
			n = rem
		}
		copy(buf[read:read+n], block[intra:intra+int(n)])
		read += n
		intra = 0

		if read < toRead {
			next := fs.fat.entries[current]
			if next == fatFree {
				return int(read), ErrCorruption
			}
			if next == fatEOF {
				break // size clamp already accounts for this; nothing more to read.
			}
			current = next
		}
	}

	d.offset += read
	return int(read), nil
}

// Write writes len(buf) bytes to the file bound to h at its current
// offset, extending the FAT chain on demand, and returns the number of
// bytes written. Implements spec.md §4.5 Write step for step.
func (fs *FS) Write(h Handle, buf []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("write", slog.Int("handle", int(h)), slog.Int("len", len(buf)))
	if err := fs.checkMounted(); err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	d, err := fs.desc.resolve(h)
	if err != nil {
		return 0, err
	}
	e := fs.dir.entry(d.fileIndex)

	start := e.StartCluster()
	if start == fatFree {
		// Only reachable if a future policy defers initial allocation
		// to first write; this implementation's Create always
		// allocates eagerly (spec.md §9), so this is defense in depth.
		b, err := fs.fat.allocateInitial()
		if err != nil {
			return 0, err
		}
		start = b
		e.setStartCluster(b)
	}

	clusterOffset := int(d.offset / int64(fs.lay.blockSize))
	intra := int(d.offset % int64(fs.lay.blockSize))

	current := start
	if clusterOffset > 0 {
		current, err = fs.walkOrExtend(start, clusterOffset)
		if err != nil {
			return 0, err
		}
	}

	block := make([]byte, fs.lay.blockSize)
	var written int64
	remaining := int64(len(buf))
	for remaining > 0 {
		if err := readBlock(fs.device, fs.clusterOf(current), block); err != nil {
			return int(written), err
		}
		n := int64(fs.lay.blockSize - intra)
		if n > remaining {
			n = remaining
		}
		copy(block[intra:intra+int(n)], buf[written:written+n])
		if err := writeBlock(fs.device, fs.clusterOf(current), block); err != nil {
			return int(written), err
		}
		written += n
		remaining -= n
		intra = 0

		if remaining > 0 {
			next := fs.fat.entries[current]
			if next == fatEOF {
				next, err = fs.fat.extend(current)
				if err != nil {
					return int(written), err
				}
			}
			current = next
		}
	}

	d.offset += written
	if d.offset > int64(e.FileSize()) {
		e.setFileSize(uint32(d.offset))
	}
	return int(written), nil
}

// walkOrExtend advances n links from start, extending the chain with
// newly allocated blocks whenever the walk would otherwise run off the
// end (fatEOF) before n links have elapsed. Used by Write, which must
// be able to seek-and-write past the current end of a short chain.
func (fs *FS) walkOrExtend(start uint32, n int) (uint32, error) {
	current := start
	for i := 0; i < n; i++ {
		next := fs.fat.entries[current]
		if next == fatFree {
			return 0, ErrCorruption
		}
		if next == fatEOF {
			var err error
			next, err = fs.fat.extend(current)
			if err != nil {
				return 0, err
			}
		}
		current = next
	}
	return current, nil
}
