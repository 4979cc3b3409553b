package flatfat

// Handle identifies an open file. It indexes into the descriptor table
// and carries no other meaning to the caller.
type Handle int

// descriptor binds an open handle to a directory entry and a current
// byte offset, per spec.md §4.4.
type descriptor struct {
	inUse     bool
	fileIndex int
	offset    int64
	// invalid is set when the bound directory entry is deleted while
	// this descriptor is still open (policy (b) of spec.md §9's
	// dangling-descriptor open question): any further operation on the
	// handle fails NotFound instead of touching a freed chain.
	invalid bool
}

// descriptorTable is the fixed-capacity open-file table.
type descriptorTable struct {
	slots [MaxOpenFiles]descriptor
}

// allocate binds the lowest-indexed free slot to fileIndex with offset
// 0 and returns its handle, or NoHandles if the table is full.
func (d *descriptorTable) allocate(fileIndex int) (Handle, error) {
	for i := range d.slots {
		if !d.slots[i].inUse {
			d.slots[i] = descriptor{inUse: true, fileIndex: fileIndex}
			return Handle(i), nil
		}
	}
	return 0, ErrNoHandles
}

// release frees the slot bound to h. Fails InvalidArgument if h is out
// of range or not bound.
func (d *descriptorTable) release(h Handle) error {
	s, err := d.checked(h)
	if err != nil {
		return err
	}
	*s = descriptor{}
	return nil
}

// resolve returns the slot bound to h, failing NotFound if the bound
// directory entry was deleted out from under it, or InvalidArgument if
// h is out of range or unbound.
func (d *descriptorTable) resolve(h Handle) (*descriptor, error) {
	s, err := d.checked(h)
	if err != nil {
		return nil, err
	}
	if s.invalid {
		return nil, ErrNotFound
	}
	return s, nil
}

func (d *descriptorTable) checked(h Handle) (*descriptor, error) {
	if h < 0 || int(h) >= len(d.slots) {
		return nil, ErrInvalidArgument
	}
	s := &d.slots[h]
	if !s.inUse {
		return nil, ErrInvalidArgument
	}
	return s, nil
}

// invalidateFile marks every descriptor bound to fileIndex invalid,
// called by Delete per the dangling-descriptor policy above.
func (d *descriptorTable) invalidateFile(fileIndex int) {
	for i := range d.slots {
		if d.slots[i].inUse && d.slots[i].fileIndex == fileIndex {
			d.slots[i].invalid = true
		}
	}
}

func (d *descriptorTable) reset() {
	for i := range d.slots {
		d.slots[i] = descriptor{}
	}
}
