// Command flatfatctl is a demonstration front-end over the flatfat
// library: one subcommand per lifecycle/engine call, one process per
// invocation, mounting the image around the operation and unmounting
// before exit. Grounded on ostafen-digler's cmd/cmd cobra tree.
package main

import (
	"fmt"
	"os"

	"github.com/andrewrush173/flatfat/cmd/flatfatctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "flatfatctl:", err)
		os.Exit(1)
	}
}
