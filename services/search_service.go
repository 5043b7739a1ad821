package services

import (
	"log"
	"strings"

	"recipegenie/models"
)

// maxEnrichmentLookups bounds the per-candidate detail calls in the
// ingredient fallback stage.
const maxEnrichmentLookups = 12

// targetLanguage is what internal retries translate queries into; the
// recipe database is English-only.
const targetLanguage = "en"

// MealAPI is the slice of the recipe database client the search
// pipeline needs.
type MealAPI interface {
	SearchByName(q string) ([]models.Meal, error)
	FilterByIngredient(ingredient string) ([]models.Meal, error)
	LookupMealByID(id string) (models.Meal, error)
}

// Translator translates text into a target language.
type Translator interface {
	Translate(text, target string) (string, error)
}

// SearchService implements the fallback search over the recipe and
// translation APIs.
type SearchService struct {
	meals      MealAPI
	translator Translator
}

func NewSearchService(meals MealAPI, translator Translator) *SearchService {
	return &SearchService{meals: meals, translator: translator}
}

// Search runs the fallback chain for a free-text query in any language:
// a direct name search, a retry with the query translated to English,
// then an ingredient filter whose candidates are enriched one by one.
// The first stage to produce any meals terminates the chain. All stages
// coming up empty is a normal zero-result outcome, not an error.
func (s *SearchService) Search(q string) (models.SearchResult, error) {
	stages := []func() ([]models.Meal, error){
		func() ([]models.Meal, error) { return s.meals.SearchByName(q) },
		func() ([]models.Meal, error) { return s.searchTranslated(q) },
		func() ([]models.Meal, error) { return s.searchByIngredient(q) },
	}
	for _, stage := range stages {
		meals, err := stage()
		if err != nil {
			return models.SearchResult{}, err
		}
		if len(meals) > 0 {
			return models.NewSearchResult(meals), nil
		}
	}
	return models.NewSearchResult(nil), nil
}

// toEnglish translates q for the retry stages. Translation failure is
// never fatal here; the original text is used instead.
func (s *SearchService) toEnglish(q string) string {
	translated, err := s.translator.Translate(q, targetLanguage)
	if err != nil {
		log.Printf("translation failed, searching with original query: %v", err)
		return q
	}
	if translated == "" {
		return q
	}
	return translated
}

// searchTranslated retries the name search with the query translated to
// English. When the translation comes back identical to the query there
// is nothing new to try and the stage falls through.
func (s *SearchService) searchTranslated(q string) ([]models.Meal, error) {
	translated := s.toEnglish(q)
	if strings.EqualFold(translated, q) {
		return nil, nil
	}
	return s.meals.SearchByName(translated)
}

// searchByIngredient treats the (translated) query as an ingredient,
// then enriches each lightweight candidate with a full lookup. Lookups
// run sequentially in candidate order; a failed lookup drops that
// candidate and the rest of the batch continues.
func (s *SearchService) searchByIngredient(q string) ([]models.Meal, error) {
	ingredient := s.toEnglish(q)
	candidates, err := s.meals.FilterByIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	if len(candidates) > maxEnrichmentLookups {
		candidates = candidates[:maxEnrichmentLookups]
	}

	enriched := make([]models.Meal, 0, len(candidates))
	for _, candidate := range candidates {
		meal, err := s.meals.LookupMealByID(candidate.ID())
		if err != nil {
			log.Printf("skipping candidate %q: %v", candidate.ID(), err)
			continue
		}
		enriched = append(enriched, meal)
	}
	return enriched, nil
}
