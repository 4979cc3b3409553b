package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <name>",
		Short: "Show the size of a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)

			info, err := vfs.Stat(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d bytes\n", info.Name, info.Size)
			return nil
		},
	}
}
