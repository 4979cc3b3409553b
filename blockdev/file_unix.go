//go:build unix

package blockdev

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a BlockDevice backed by a disk-image file, using
// golang.org/x/sys/unix.Pread/Pwrite so reads and writes are
// block-offset addressed without disturbing the file's shared seek
// offset — the same concern ostafen-digler's internal/mmap package
// solves with a raw syscall mmap, done here with positioned I/O
// instead since flatfat blocks are written individually and don't
// benefit from a single large mapping.
type File struct {
	f          *os.File
	blockSize  int
	blockCount int64
}

// OpenFile opens an existing disk image of exactly blockSize*blockCount
// bytes.
func OpenFile(path string, blockSize int, blockCount int64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &File{f: f, blockSize: blockSize, blockCount: blockCount}, nil
}

// CreateFile creates a new disk image file of blockSize*blockCount
// zeroed bytes, truncating any existing file at path.
func CreateFile(path string, blockSize int, blockCount int64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	size := int64(blockSize) * blockCount
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, blockSize: blockSize, blockCount: blockCount}, nil
}

func (d *File) BlockSize() int    { return d.blockSize }
func (d *File) BlockCount() int64 { return d.blockCount }

func (d *File) Close() error { return d.f.Close() }

func (d *File) checkRange(index int64, n int) error {
	if index < 0 || index >= d.blockCount {
		return fmt.Errorf("block index %d out of range [0,%d)", index, d.blockCount)
	}
	if n != d.blockSize {
		return fmt.Errorf("buffer size %d does not match block size %d", n, d.blockSize)
	}
	return nil
}

func (d *File) ReadBlock(index int64, dst []byte) error {
	if err := d.checkRange(index, len(dst)); err != nil {
		return err
	}
	off := index * int64(d.blockSize)
	n, err := unix.Pread(int(d.f.Fd()), dst, off)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return fmt.Errorf("short read: got %d want %d", n, len(dst))
	}
	return nil
}

func (d *File) WriteBlock(index int64, src []byte) error {
	if err := d.checkRange(index, len(src)); err != nil {
		return err
	}
	off := index * int64(d.blockSize)
	n, err := unix.Pwrite(int(d.f.Fd()), src, off)
	if err != nil {
		return err
	}
	if n != len(src) {
		return fmt.Errorf("short write: got %d want %d", n, len(src))
	}
	return nil
}
