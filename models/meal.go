package models

// Meal is a recipe record from the external recipe database. The backend
// treats it as opaque JSON; only the id is ever read, for enrichment
// lookups.
type Meal map[string]any

// ID returns the meal's idMeal field, or "" when absent.
func (m Meal) ID() string {
	id, _ := m["idMeal"].(string)
	return id
}

// SearchResult is the normalized payload of a recipe search.
type SearchResult struct {
	Count int    `json:"count"`
	Meals []Meal `json:"meals"`
}

// NewSearchResult builds a SearchResult from a meal list. Count always
// equals len(Meals), and a nil list serializes as [] rather than null.
func NewSearchResult(meals []Meal) SearchResult {
	if meals == nil {
		meals = []Meal{}
	}
	return SearchResult{Count: len(meals), Meals: meals}
}
