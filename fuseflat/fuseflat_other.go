//go:build !linux

package fuseflat

import (
	"fmt"

	"github.com/andrewrush173/flatfat"
)

// Mount is unsupported outside Linux, mirroring ostafen-digler's own
// mount.go build-tag split for its FUSE adapter.
func Mount(mountpoint string, vfs *flatfat.FS) error {
	return fmt.Errorf("fuseflat: FUSE mount is only supported on Linux")
}
