package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/cookbook"
)

var (
	addTitle       string
	addDescription string
	addImage       string
	addCategory    string
	addTags        []string
	addIngredients []string
	addVegetarian  bool
	addVegan       bool
	addGlutenFree  bool
	addMeat        bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe to the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cat, err := cookbook.Open(ctx, dataPath, cookbook.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open catalog", err)
		}
		defer cat.Close(ctx)

		id, err := cat.Add(ctx, cookbook.Recipe{
			Title:        addTitle,
			Description:  addDescription,
			ImageRef:     addImage,
			Category:     addCategory,
			Tags:         addTags,
			Ingredients:  addIngredients,
			Vegetarian:   addVegetarian,
			Vegan:        addVegan,
			GlutenFree:   addGlutenFree,
			ContainsMeat: addMeat,
		})
		if err != nil {
			fatal("Failed to add recipe", err)
		}

		fmt.Printf("Recipe %q added with id %s\n", addTitle, id)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Recipe title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Recipe description")
	addCmd.Flags().StringVar(&addImage, "image", "", "Image reference (URI)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (defaults to Other)")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().StringArrayVarP(&addIngredients, "ingredient", "i", nil, "Ingredient (repeatable)")
	addCmd.Flags().BoolVar(&addVegetarian, "vegetarian", false, "Mark as vegetarian")
	addCmd.Flags().BoolVar(&addVegan, "vegan", false, "Mark as vegan")
	addCmd.Flags().BoolVar(&addGlutenFree, "gluten-free", false, "Mark as gluten-free")
	addCmd.Flags().BoolVar(&addMeat, "meat", false, "Mark as meat-containing")
	_ = addCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(addCmd)
}
