package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cookbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cookbook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cookbook version %s\n", strings.TrimSpace(cookbook.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
