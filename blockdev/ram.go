// Package blockdev provides ready-made flatfat.BlockDevice
// implementations: an in-memory RAM disk for tests and demos, and a
// real disk-image file backed by golang.org/x/sys/unix on unix-like
// systems. The block device itself is an external collaborator per the
// filesystem's design (spec.md §1); this package exists so the core is
// actually runnable end to end.
package blockdev

import "errors"

// RAM is a BlockDevice backed by a single in-memory byte slice, in the
// teacher's BytesBlocks/BlockMap idiom (soypat/fat's vfs_test.go).
type RAM struct {
	blockSize int
	buf       []byte
}

// NewRAM allocates a RAM disk of blockCount blocks of blockSize bytes
// each, zero-initialized.
func NewRAM(blockSize int, blockCount int64) *RAM {
	return &RAM{
		blockSize: blockSize,
		buf:       make([]byte, int64(blockSize)*blockCount),
	}
}

func (r *RAM) BlockSize() int     { return r.blockSize }
func (r *RAM) BlockCount() int64  { return int64(len(r.buf)) / int64(r.blockSize) }

func (r *RAM) span(index int64, n int) (int64, int64, error) {
	if index < 0 {
		return 0, 0, errors.New("negative block index")
	}
	start := index * int64(r.blockSize)
	end := start + int64(n)
	if end > int64(len(r.buf)) {
		return 0, 0, errors.New("block index out of range")
	}
	return start, end, nil
}

func (r *RAM) ReadBlock(index int64, dst []byte) error {
	start, end, err := r.span(index, len(dst))
	if err != nil {
		return err
	}
	copy(dst, r.buf[start:end])
	return nil
}

func (r *RAM) WriteBlock(index int64, src []byte) error {
	start, end, err := r.span(index, len(src))
	if err != nil {
		return err
	}
	copy(r.buf[start:end], src)
	return nil
}
