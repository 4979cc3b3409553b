package cmd

import (
	"fmt"
	"os"

	"github.com/andrewrush173/flatfat"
	"github.com/andrewrush173/flatfat/blockdev"
)

// openMounted opens the configured disk image and mounts it, returning
// both so the caller can Umount and Close when done.
func openMounted() (*flatfat.FS, *blockdev.File, error) {
	fi, err := os.Stat(diskPath)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", diskPath, err)
	}
	blockCount := fi.Size() / int64(blockSize)
	dev, err := blockdev.OpenFile(diskPath, blockSize, blockCount)
	if err != nil {
		return nil, nil, err
	}
	vfs, err := flatfat.Mount(dev)
	if err != nil {
		dev.Close()
		return nil, nil, err
	}
	return vfs, dev, nil
}

// closeMounted unmounts vfs and closes dev, returning the first error
// encountered.
func closeMounted(vfs *flatfat.FS, dev *blockdev.File) error {
	err := vfs.Umount()
	if cerr := dev.Close(); err == nil {
		err = cerr
	}
	return err
}
