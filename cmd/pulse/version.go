package main

import (
	"fmt"

	"github.com/nvaldez/pulse/internal/server"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pulse version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pulse v%s\n", server.Version)
	},
}
