package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/cookbook"
)

var (
	updateTitle       string
	updateDescription string
	updateImage       string
	updateCategory    string
	updateTags        []string
	updateIngredients []string
	updateVegetarian  bool
	updateVegan       bool
	updateGlutenFree  bool
	updateMeat        bool
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace a recipe in the catalog",
	Long: `Update replaces the full record stored under the given id.
Fields not passed as flags keep their current value.`,
	Args: cobra.ExactArgs(1),
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

		r, err := cat.Get(id)
		if err != nil {
			fatal("Failed to load recipe", err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			r.Title = updateTitle
		}
		if flags.Changed("description") {
			r.Description = updateDescription
		}
		if flags.Changed("image") {
			r.ImageRef = updateImage
		}
		if flags.Changed("category") {
			r.Category = updateCategory
		}
		if flags.Changed("tag") {
			r.Tags = updateTags
		}
		if flags.Changed("ingredient") {
			r.Ingredients = updateIngredients
		}
		if flags.Changed("vegetarian") {
			r.Vegetarian = updateVegetarian
		}
		if flags.Changed("vegan") {
			r.Vegan = updateVegan
		}
		if flags.Changed("gluten-free") {
			r.GlutenFree = updateGlutenFree
		}
		if flags.Changed("meat") {
			r.ContainsMeat = updateMeat
		}

		if err := cat.Update(ctx, id, r); err != nil {
			fatal("Failed to update recipe", err)
		}

		fmt.Printf("Recipe %s updated.\n", id)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "Recipe title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "Recipe description")
	updateCmd.Flags().StringVar(&updateImage, "image", "", "Image reference (URI)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "Category")
	updateCmd.Flags().StringArrayVar(&updateTags, "tag", nil, "Tag (repeatable, replaces existing tags)")
	updateCmd.Flags().StringArrayVarP(&updateIngredients, "ingredient", "i", nil, "Ingredient (repeatable, replaces existing ingredients)")
	updateCmd.Flags().BoolVar(&updateVegetarian, "vegetarian", false, "Mark as vegetarian")
	updateCmd.Flags().BoolVar(&updateVegan, "vegan", false, "Mark as vegan")
	updateCmd.Flags().BoolVar(&updateGlutenFree, "gluten-free", false, "Mark as gluten-free")
	updateCmd.Flags().BoolVar(&updateMeat, "meat", false, "Mark as meat-containing")

	rootCmd.AddCommand(updateCmd)
}
