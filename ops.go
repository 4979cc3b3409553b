package flatfat

import "log/slog"

// Open finds name in the directory table and binds a new descriptor to
// it, returning the handle. Per spec.md §4.5.
func (fs *FS) Open(name string) (Handle, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("open", slog.String("name", name))
	if err := fs.checkMounted(); err != nil {
		return 0, err
	}
	idx, err := fs.dir.find(name)
	if err != nil {
		return 0, err
	}
	return fs.desc.allocate(idx)
}

// Close releases the descriptor bound to h.
func (fs *FS) Close(h Handle) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("close", slog.Int("handle", int(h)))
	if err := fs.checkMounted(); err != nil {
		return err
	}
	return fs.desc.release(h)
}

// Create validates name, rejects duplicates, inserts a directory entry,
// and reserves its initial data block (the "create allocates a cluster"
// policy from spec.md §9).
func (fs *FS) Create(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("create", slog.String("name", name))
	if err := fs.checkMounted(); err != nil {
		return err
	}
	idx, err := fs.dir.insert(name)
	if err != nil {
		return err
	}
	b, err := fs.fat.allocateInitial()
	if err != nil {
		fs.dir.remove(idx) // roll back the directory insertion; no space for data.
		return err
	}
	e := fs.dir.entry(idx)
	e.setStartCluster(b)
	e.setFileSize(0)
	return nil
}

// Delete frees the chain and directory entry for name. Descriptors
// still bound to it are marked invalid rather than proactively closed,
// per the policy (b) resolution of spec.md §9.
func (fs *FS) Delete(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("delete", slog.String("name", name))
	if err := fs.checkMounted(); err != nil {
		return err
	}
	idx, err := fs.dir.find(name)
	if err != nil {
		return err
	}
	e := fs.dir.entry(idx)
	if err := fs.fat.freeChain(e.StartCluster()); err != nil {
		return err
	}
	fs.dir.remove(idx)
	fs.desc.invalidateFile(idx)
	return nil
}

// GetSize returns the current size in bytes of the file bound to h.
func (fs *FS) GetSize(h Handle) (int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("get_size", slog.Int("handle", int(h)))
	if err := fs.checkMounted(); err != nil {
		return 0, err
	}
	d, err := fs.desc.resolve(h)
	if err != nil {
		return 0, err
	}
	return int64(fs.dir.entry(d.fileIndex).FileSize()), nil
}

// Lseek repositions the offset of the file bound to h. Seeking to
// exactly file_size is legal (next Read observes EOF); seeking beyond
// it is InvalidArgument.
func (fs *FS) Lseek(h Handle, offset int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("lseek", slog.Int("handle", int(h)), slog.Int64("offset", offset))
	if err := fs.checkMounted(); err != nil {
		return err
	}
	d, err := fs.desc.resolve(h)
	if err != nil {
		return err
	}
	if offset < 0 {
		return ErrInvalidArgument
	}
	fileSize := int64(fs.dir.entry(d.fileIndex).FileSize())
	if offset > fileSize {
		return ErrInvalidArgument
	}
	d.offset = offset
	return nil
}

// Trunc shrinks the file bound to h to newSize bytes. Growing is not
// supported (spec.md §4.5: "shrink-only per this design"). Truncating
// to zero leaves the single starting cluster in place with file_size 0,
// consistent with the create-allocates-a-cluster invariant.
func (fs *FS) Trunc(h Handle, newSize int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.trace("trunc", slog.Int("handle", int(h)), slog.Int64("new_size", newSize))
	if err := fs.checkMounted(); err != nil {
		return err
	}
	d, err := fs.desc.resolve(h)
	if err != nil {
		return err
	}
	e := fs.dir.entry(d.fileIndex)
	fileSize := int64(e.FileSize())
	if newSize > fileSize {
		return ErrInvalidArgument
	}
	if newSize < 0 {
		return ErrInvalidArgument
	}

	newClusters := int(ceilDiv(newSize, int64(fs.lay.blockSize)))
	if newClusters == 0 {
		newClusters = 1 // at least one block stays allocated for a live file.
	}
	tail, err := fs.fat.walk(e.StartCluster(), newClusters-1)
	if err != nil {
		return err
	}
	surplus := fs.fat.entries[tail]
	if surplus != fatEOF {
		if err := fs.fat.freeChain(surplus); err != nil {
			return err
		}
	}
	fs.fat.entries[tail] = fatEOF
	e.setFileSize(uint32(newSize))
	if d.offset > newSize {
		d.offset = newSize
	}
	return nil
}
