package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewrush173/flatfat"
)

func newWriteCommand() *cobra.Command {
	var truncate bool
	c := &cobra.Command{
		Use:   "write <name>",
		Short: "Write stdin to a file, creating it if it doesn't exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)

			name := args[0]
			if _, err := vfs.Stat(name); errors.Is(err, flatfat.ErrNotFound) {
				if err := vfs.Create(name); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			h, err := vfs.Open(name)
			if err != nil {
				return err
			}
			defer vfs.Close(h)

			if truncate {
				if err := vfs.Trunc(h, 0); err != nil {
					return err
				}
			}

			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			_, err = vfs.Write(h, data)
			return err
		},
	}
	c.Flags().BoolVar(&truncate, "truncate", true, "truncate the file to zero length before writing")
	return c
}
