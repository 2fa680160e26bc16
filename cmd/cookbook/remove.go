package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/cookbook"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a recipe from the catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		ctx := context.Background()

		cat, err := cookbook.Open(ctx, dataPath,
			cookbook.WithLogger(slog.Default()),
			cookbook.WithMustExist(true),
		)
		if err != nil {
			fatal("Failed to open catalog", err)
		}
		defer cat.Close(ctx)

		if err := cat.Remove(ctx, id); err != nil {
			fatal("Failed to remove recipe", err)
		}

		fmt.Printf("Recipe %s removed.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
