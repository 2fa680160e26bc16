package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cookbook"
)

var (
	listSearch   string
	listCategory string
	listDietary  string
	listJSON     bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes in the catalog",
	Long:  `List prints the derived view: the catalog filtered by the given search, category, and dietary criteria.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var dietary cookbook.DietaryFilter
		if listDietary != "" {
			var err error
			dietary, err = cookbook.ParseDietary(listDietary)
			if err != nil {
				fatal("Invalid dietary filter", err)
			}
		}

		cat, err := cookbook.Open(ctx, dataPath,
			cookbook.WithLogger(slog.Default()),
			cookbook.WithMustExist(true),
		)
		if err != nil {
			fatal("Failed to open catalog", err)
		}
		defer cat.Close(ctx)

		if listSearch != "" {
			cat.SetSearch(listSearch)
		}
		if listCategory != "" {
			cat.SetCategory(listCategory)
		}
		if dietary != "" {
			cat.SetDietary(dietary)
		}

		recipes := cat.View()

		if listJSON {
			data, err := json.MarshalIndent(recipes, "", "  ")
			if err != nil {
				fatal("Failed to marshal recipes", err)
			}
			fmt.Println(string(data))
			return
		}

		if len(recipes) == 0 {
			fmt.Println("No recipes found.")
			return
		}

		for _, r := range recipes {
			fmt.Printf("%s  %s [%s]", r.ID, r.Title, r.Category)
			if len(r.Tags) > 0 {
				fmt.Printf("  #%s", strings.Join(r.Tags, " #"))
			}
			fmt.Println()
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search text (title, description, category, tags)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
	listCmd.Flags().StringVarP(&listDietary, "dietary", "d", "", "Filter by dietary flag (Vegetarian|Vegan|Gluten-Free|Meat)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(listCmd)
}
