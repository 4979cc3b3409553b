package cmd

import "github.com/spf13/cobra"

func newRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			vfs, dev, err := openMounted()
			if err != nil {
				return err
			}
			defer closeMounted(vfs, dev)
			return vfs.Delete(args[0])
		},
	}
}
