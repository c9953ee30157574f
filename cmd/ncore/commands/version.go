package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the ncore CLI's release version, set at build time via
// -ldflags in a release build; "dev" otherwise.
var Version = "dev"

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(Version)
		},
	}
}
