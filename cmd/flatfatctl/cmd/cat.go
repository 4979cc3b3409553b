package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <name>",
		Short: "Print a file's contents to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
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

			buf := make([]byte, blockSize)
			for {
				n, err := vfs.Read(h, buf)
				if n > 0 {
					if _, werr := os.Stdout.Write(buf[:n]); werr != nil {
						return werr
					}
				}
				if n == 0 {
					if err != nil {
						return err
					}
					return nil
				}
				if err != nil {
					return err
				}
			}
		},
	}
}
