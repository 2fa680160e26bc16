// Recipe is the central entity of the domain.
package core

import (
	"slices"
	"strings"
)

// Known categories, in display order. Records created without a category
// fall back to CategoryOther.
const (
	CategoryAppetizers = "Appetizers"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
	CategoryBeverages  = "Beverages"
	CategorySalads     = "Salads"
	CategoryOther      = "Other"
)

// Categories returns the known category set in display order.
func Categories() []string {
	return []string{
		CategoryAppetizers,
		CategoryMainCourse,
		CategoryDesserts,
		CategoryBeverages,
		CategorySalads,
		CategoryOther,
	}
}

// Recipe is a single catalog record.
//
// The field tags keep the persisted form compatible with collections written
// by earlier codec versions: decoders must tolerate unknown fields, and
// fields absent from an old payload default to empty/false.
//
// The dietary flags are independent, not mutually exclusive. A record marked
// both vegan and meat-containing is a caller error the catalog does not
// police.
type Recipe struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	ImageRef     string   `json:"imageUri,omitempty" yaml:"imageUri,omitempty"`
	Category     string   `json:"category" yaml:"category"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Vegetarian   bool     `json:"isVegetarian" yaml:"isVegetarian"`
	Vegan        bool     `json:"isVegan" yaml:"isVegan"`
	GlutenFree   bool     `json:"isGlutenFree" yaml:"isGlutenFree"`
	ContainsMeat bool     `json:"hasMeat" yaml:"hasMeat"`
}

// Validate checks the save preconditions for a record.
// The catalog rejects invalid records before mutating any state.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return nil
}

// Normalize enforces the record invariants in place: the category is never
// empty (a missing one falls back to CategoryOther), tags are trimmed,
// deduplicated (case-sensitive) and free of empties, ingredients are trimmed
// and free of empties, and neither slice is ever nil.
func (r *Recipe) Normalize() {
	if strings.TrimSpace(r.Category) == "" {
		r.Category = CategoryOther
	}

	tags := make([]string, 0, len(r.Tags))
	seen := make(map[string]bool, len(r.Tags))
	for _, t := range r.Tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	r.Tags = tags

	ingredients := make([]string, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		ingredients = append(ingredients, in)
	}
	r.Ingredients = ingredients
}

// Equal reports whether two records carry identical content, slices
// included.
func (r Recipe) Equal(o Recipe) bool {
	return r.ID == o.ID &&
		r.Title == o.Title &&
		r.Description == o.Description &&
		r.ImageRef == o.ImageRef &&
		r.Category == o.Category &&
		r.Vegetarian == o.Vegetarian &&
		r.Vegan == o.Vegan &&
		r.GlutenFree == o.GlutenFree &&
		r.ContainsMeat == o.ContainsMeat &&
		slices.Equal(r.Tags, o.Tags) &&
		slices.Equal(r.Ingredients, o.Ingredients)
}

// Clone returns a deep copy of the record.
func (r Recipe) Clone() Recipe {
	c := r
	if r.Tags != nil {
		c.Tags = append([]string(nil), r.Tags...)
	}
	if r.Ingredients != nil {
		c.Ingredients = append([]string(nil), r.Ingredients...)
	}
	return c
}

func cloneAll(records []Recipe) []Recipe {
	out := make([]Recipe, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
