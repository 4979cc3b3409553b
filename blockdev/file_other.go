//go:build !unix

package blockdev

import (
	"fmt"
	"os"
)

// File is a BlockDevice backed by a disk-image file. On non-unix
// GOOS targets it falls back to ReadAt/WriteAt instead of
// golang.org/x/sys/unix's Pread/Pwrite, mirroring the
// mount.go/mount_linux.go split the teacher pack's fuse adapter uses
// for platform-specific code.
type File struct {
	f          *os.File
	blockSize  int
	blockCount int64
}

func OpenFile(path string, blockSize int, blockCount int64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &File{f: f, blockSize: blockSize, blockCount: blockCount}, nil
}

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
func (d *File) Close() error      { return d.f.Close() }

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
	_, err := d.f.ReadAt(dst, index*int64(d.blockSize))
	return err
}

func (d *File) WriteBlock(index int64, src []byte) error {
	if err := d.checkRange(index, len(src)); err != nil {
		return err
	}
	_, err := d.f.WriteAt(src, index*int64(d.blockSize))
	return err
}
