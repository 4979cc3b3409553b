package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List every file in the flat namespace",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)

			entries, err := vfs.List()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%8d  %s\n", e.Size, e.Name)
			}
			return nil
		},
	}
}
