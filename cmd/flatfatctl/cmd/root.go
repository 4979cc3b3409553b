package cmd

import (
	"github.com/spf13/cobra"
)

const appName = "flatfatctl"

var (
	diskPath  string
	blockSize int
)

func Execute() error {
	root := &cobra.Command{
		Use:   appName,
		Short: appName + " - inspect and edit a flatfat disk image",
	}
	root.PersistentFlags().StringVar(&diskPath, "disk", "", "path to the disk image file")
	root.PersistentFlags().IntVar(&blockSize, "block-size", 512, "block size in bytes")
	root.MarkPersistentFlagRequired("disk")

	root.AddCommand(
		newMkfsCommand(),
		newLsCommand(),
		newStatCommand(),
		newCatCommand(),
		newWriteCommand(),
		newRmCommand(),
		newTruncCommand(),
		newMountCommand(),
	)
	return root.Execute()
}
