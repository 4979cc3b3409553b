package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andrewrush173/flatfat/fuseflat"
)

func newMountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mount <mountpoint>",
		Short: "Mount the flat namespace as a real FUSE filesystem (linux only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)
			return fuseflat.Mount(args[0], vfs)
		},
	}
}
