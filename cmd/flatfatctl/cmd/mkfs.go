package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andrewrush173/flatfat"
	"github.com/andrewrush173/flatfat/blockdev"
)

func newMkfsCommand() *cobra.Command {
	var blocks int64
	var label string
	c := &cobra.Command{
		Use:   "mkfs",
		Short: "Create a fresh flatfat image",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			dev, err := blockdev.CreateFile(diskPath, blockSize, blocks)
			if err != nil {
				return err
			}
			defer dev.Close()
			return flatfat.Make(dev, flatfat.MakeConfig{Label: label})
		},
	}
	c.Flags().Int64Var(&blocks, "blocks", 32000, "total number of blocks on the new disk")
	c.Flags().StringVar(&label, "label", "", "cosmetic volume label")
	return c
}
