package core

import (
	"fmt"
	"strings"
)

// CategoryAll is the category criterion sentinel that matches every record.
const CategoryAll = "All"

// DietaryFilter selects records by exactly one dietary flag.
type DietaryFilter string

// Dietary criterion values. DietaryAll matches every record.
const (
	DietaryAll        DietaryFilter = "All"
	DietaryVegetarian DietaryFilter = "Vegetarian"
	DietaryVegan      DietaryFilter = "Vegan"
	DietaryGlutenFree DietaryFilter = "Gluten-Free"
	DietaryMeat       DietaryFilter = "Meat"
)

// DietaryFilters returns the known dietary criterion values in display
// order.
func DietaryFilters() []DietaryFilter {
	return []DietaryFilter{
		DietaryAll,
		DietaryVegetarian,
		DietaryVegan,
		DietaryGlutenFree,
		DietaryMeat,
	}
}

// ParseDietary matches s against the known dietary criterion values,
// ignoring case. Anything else is rejected with an error naming the
// accepted set.
func ParseDietary(s string) (DietaryFilter, error) {
	for _, d := range DietaryFilters() {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}

	accepted := make([]string, 0, len(DietaryFilters()))
	for _, d := range DietaryFilters() {
		accepted = append(accepted, string(d))
	}
	return "", fmt.Errorf("unknown dietary filter %q (accepted: %s)", s, strings.Join(accepted, ", "))
}

// Criteria holds the three independent filter criteria. The zero value
// restricts nothing: a blank search, empty category, and empty dietary
// filter all match every record.
//
// Predicates are pure and combined with logical AND, so evaluation order
// does not affect the result.
type Criteria struct {
	Search   string
	Category string
	Dietary  DietaryFilter
}

// Matches reports whether r passes every active criterion.
func (c Criteria) Matches(r Recipe) bool {
	return c.matchesSearch(r) && c.matchesCategory(r) && c.matchesDietary(r)
}

// matchesSearch is a case-insensitive substring match against title,
// description, category, or any tag.
func (c Criteria) matchesSearch(r Recipe) bool {
	q := strings.ToLower(strings.TrimSpace(c.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Category), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesCategory(r Recipe) bool {
	if c.Category == "" || c.Category == CategoryAll {
		return true
	}
	return r.Category == c.Category
}

func (c Criteria) matchesDietary(r Recipe) bool {
	switch c.Dietary {
	case "", DietaryAll:
		return true
	case DietaryVegetarian:
		return r.Vegetarian
	case DietaryVegan:
		return r.Vegan
	case DietaryGlutenFree:
		return r.GlutenFree
	case DietaryMeat:
		return r.ContainsMeat
	default:
		// Unknown filter values match nothing rather than silently
		// degrading to "All".
		return false
	}
}
