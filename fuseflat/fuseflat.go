//go:build linux

// Package fuseflat exposes a mounted *flatfat.FS as a real kernel FUSE
// mountpoint, so the flat namespace can be browsed and edited with
// ordinary tools (ls, cat, cp) instead of only through the library API
// or the flatfatctl CLI. Grounded on ostafen-digler's internal/fuse
// adapter, which wires the same bazil.org/fuse dependency around a
// (read-only) recovered-file view; this adapter adds create, write,
// truncate and remove since flatfat is read-write.
package fuseflat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/andrewrush173/flatfat"
)

// Mount serves vfs at mountpoint until a SIGINT/SIGTERM is received or
// the mount is unmounted externally, then returns. It does not call
// vfs.Umount; the caller is responsible for that once Mount returns.
func Mount(mountpoint string, vfs *flatfat.FS) error {
	created, err := prepareMountpoint(mountpoint)
	if err != nil {
		return err
	}
	if created {
		defer os.Remove(mountpoint)
	}

	c, err := fuse.Mount(mountpoint, fuse.FSName("flatfat"), fuse.Subtype("flatfatfs"))
	if err != nil {
		return err
	}
	defer c.Close()

	root := &dir{vfs: vfs}
	srv := fusefs.New(c, nil)
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(&filesystem{root: root}) }()

	select {
	case err := <-errc:
		return err
	case <-waitForSignal():
		return fuse.Unmount(mountpoint)
	}
}

func waitForSignal() <-chan os.Signal {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	return sigc
}

// prepareMountpoint ensures mountpoint is an existing, empty directory,
// creating it if necessary, reporting whether it created it.
func prepareMountpoint(mountpoint string) (bool, error) {
	fi, err := os.Stat(mountpoint)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(mountpoint, 0755); err != nil {
			return false, fmt.Errorf("create mountpoint %s: %w", mountpoint, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat mountpoint %s: %w", mountpoint, err)
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("mountpoint %s is not a directory", mountpoint)
	}
	empty, err := isDirEmpty(mountpoint)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, fmt.Errorf("mountpoint %s is not empty", mountpoint)
	}
	return false, nil
}

func isDirEmpty(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// filesystem adapts the single root dir to fusefs.FS.
type filesystem struct{ root *dir }

func (f *filesystem) Root() (fusefs.Node, error) { return f.root, nil }

// dir is the single flat root directory every file lives in.
type dir struct{ vfs *flatfat.FS }

func (d *dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0755
	return nil
}

func (d *dir) Lookup(ctx context.Context, name string) (fusefs.Node, error) {
	info, err := d.vfs.Stat(name)
	if err != nil {
		return nil, fuse.ENOENT
	}
	return &file{vfs: d.vfs, name: info.Name}, nil
}

func (d *dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	entries, err := d.vfs.List()
	if err != nil {
		return nil, toErrno(err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	dirents := make([]fuse.Dirent, len(entries))
	for i, e := range entries {
		dirents[i] = fuse.Dirent{Inode: uint64(i + 1), Name: e.Name, Type: fuse.DT_File}
	}
	return dirents, nil
}

func (d *dir) Create(ctx context.Context, req *fuse.CreateRequest, resp *fuse.CreateResponse) (fusefs.Node, fusefs.Handle, error) {
	if err := d.vfs.Create(req.Name); err != nil {
		return nil, nil, toErrno(err)
	}
	h, err := d.vfs.Open(req.Name)
	if err != nil {
		return nil, nil, toErrno(err)
	}
	return &file{vfs: d.vfs, name: req.Name}, &openHandle{vfs: d.vfs, h: h}, nil
}

func (d *dir) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	return toErrno(d.vfs.Delete(req.Name))
}

// file is a single flat file's FUSE node.
type file struct {
	vfs  *flatfat.FS
	name string
}

func (f *file) Attr(ctx context.Context, a *fuse.Attr) error {
	info, err := f.vfs.Stat(f.name)
	if err != nil {
		return toErrno(err)
	}
	a.Mode = 0644
	a.Size = uint64(info.Size)
	return nil
}

func (f *file) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	h, err := f.vfs.Open(f.name)
	if err != nil {
		return nil, toErrno(err)
	}
	return &openHandle{vfs: f.vfs, h: h}, nil
}

func (f *file) Setattr(ctx context.Context, req *fuse.SetattrRequest, resp *fuse.SetattrResponse) error {
	if !req.Valid.Size() {
		return nil
	}
	h, err := f.vfs.Open(f.name)
	if err != nil {
		return toErrno(err)
	}
	defer f.vfs.Close(h)
	return toErrno(f.vfs.Trunc(h, int64(req.Size)))
}

// openHandle is a single Open call's FUSE file handle, backed by one
// flatfat.Handle. FUSE read/write requests carry an explicit offset, so
// every call seeks flatfat's own offset cursor first.
type openHandle struct {
	vfs *flatfat.FS
	h   flatfat.Handle
}

func (h *openHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	if err := h.vfs.Lseek(h.h, req.Offset); err != nil {
		return toErrno(err)
	}
	buf := make([]byte, req.Size)
	n, err := h.vfs.Read(h.h, buf)
	if err != nil {
		return toErrno(err)
	}
	resp.Data = buf[:n]
	return nil
}

func (h *openHandle) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	if err := h.vfs.Lseek(h.h, req.Offset); err != nil {
		return toErrno(err)
	}
	n, err := h.vfs.Write(h.h, req.Data)
	if err != nil {
		return toErrno(err)
	}
	resp.Size = n
	return nil
}

func (h *openHandle) Flush(ctx context.Context, req *fuse.FlushRequest) error { return nil }

func (h *openHandle) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	return toErrno(h.vfs.Close(h.h))
}

// toErrno maps flatfat's Result-based errors onto the closest POSIX
// errno FUSE expects.
func toErrno(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flatfat.ErrNotFound):
		return fuse.ENOENT
	case errors.Is(err, flatfat.ErrAlreadyExists):
		return fuse.Errno(syscall.EEXIST)
	case errors.Is(err, flatfat.ErrNoSpace):
		return fuse.Errno(syscall.ENOSPC)
	case errors.Is(err, flatfat.ErrInvalidArgument):
		return fuse.Errno(syscall.EINVAL)
	case errors.Is(err, flatfat.ErrNoHandles):
		return fuse.Errno(syscall.EMFILE)
	default:
		return fuse.EIO
	}
}
