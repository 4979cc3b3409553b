package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newTruncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trunc <name> <new-size>",
		Short: "Shrink a file to new-size bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			newSize, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)

			h, err := vfs.Open(args[0])
			if err != nil {
				return err
			}
			defer vfs.Close(h)
			return vfs.Trunc(h, newSize)
		},
	}
}
