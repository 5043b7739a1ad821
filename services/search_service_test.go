package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipegenie/models"
)

type fakeMealAPI struct {
	searchResults map[string][]models.Meal
	searchErr     error
	filterResults []models.Meal
	filterErr     error
	lookupErrs    map[string]error

	searchCalls []string
	filterCalls []string
	lookupCalls []string
}

func (f *fakeMealAPI) SearchByName(q string) ([]models.Meal, error) {
	f.searchCalls = append(f.searchCalls, q)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults[strings.ToLower(q)], nil
}

func (f *fakeMealAPI) FilterByIngredient(ingredient string) ([]models.Meal, error) {
	f.filterCalls = append(f.filterCalls, ingredient)
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.filterResults, nil
}

func (f *fakeMealAPI) LookupMealByID(id string) (models.Meal, error) {
	f.lookupCalls = append(f.lookupCalls, id)
	if err := f.lookupErrs[id]; err != nil {
		return nil, err
	}
	return models.Meal{"idMeal": id, "strMeal": "meal " + id}, nil
}

// fakeTranslator echoes the input unless out is set.
type fakeTranslator struct {
	out   string
	err   error
	calls int
}

func (f *fakeTranslator) Translate(text, target string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.out == "" {
		return text, nil
	}
	return f.out, nil
}

func meal(id string) models.Meal {
	return models.Meal{"idMeal": id}
}

func candidates(n int) []models.Meal {
	out := make([]models.Meal, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, meal(fmt.Sprintf("%d", i)))
	}
	return out
}

func TestSearchDirectHitIsTerminal(t *testing.T) {
	api := &fakeMealAPI{
		searchResults: map[string][]models.Meal{
			"pasta": {meal("52771"), meal("52772")},
		},
	}
	tr := &fakeTranslator{}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("pasta")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Meals, result.Count)
	assert.Equal(t, []string{"pasta"}, api.searchCalls)
	assert.Zero(t, tr.calls, "direct hit must not invoke translation")
	assert.Empty(t, api.filterCalls, "direct hit must not invoke the ingredient filter")
}

func TestSearchTranslatedRetry(t *testing.T) {
	api := &fakeMealAPI{
		searchResults: map[string][]models.Meal{
			"chicken": {meal("52772")},
		},
	}
	tr := &fakeTranslator{out: "chicken"}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("pollo")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, []string{"pollo", "chicken"}, api.searchCalls)
	assert.Empty(t, api.filterCalls)
}

func TestSearchTranslationFailureIsAbsorbed(t *testing.T) {
	api := &fakeMealAPI{}
	tr := &fakeTranslator{err: errors.New("connection refused")}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("pollo")
	require.NoError(t, err, "translation failure must never surface")
	assert.Equal(t, 0, result.Count)
	// Stage 2 falls back to the original text, which equals the query,
	// so its search is skipped; stage 3 filters with the original text.
	assert.Equal(t, []string{"pollo"}, api.searchCalls)
	assert.Equal(t, []string{"pollo"}, api.filterCalls)
	assert.Equal(t, 2, tr.calls)
}

func TestSearchSkipsRetryWhenTranslationMatchesQuery(t *testing.T) {
	api := &fakeMealAPI{}
	tr := &fakeTranslator{out: "Chicken"}
	svc := NewSearchService(api, tr)

	_, err := svc.Search("chicken")
	require.NoError(t, err)
	// Case-insensitive match: no second name search.
	assert.Equal(t, []string{"chicken"}, api.searchCalls)
	assert.Equal(t, []string{"Chicken"}, api.filterCalls)
}

func TestSearchEnrichmentCappedAtTwelve(t *testing.T) {
	api := &fakeMealAPI{filterResults: candidates(20)}
	tr := &fakeTranslator{out: "chicken"}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("pollo")
	require.NoError(t, err)
	assert.Len(t, api.lookupCalls, 12)
	assert.Equal(t, 12, result.Count)
	for i, m := range result.Meals {
		assert.Equal(t, fmt.Sprintf("%d", i+1), m.ID(), "candidate order must be preserved")
	}
}

func TestSearchEnrichmentSkipsFailedLookups(t *testing.T) {
	api := &fakeMealAPI{
		filterResults: candidates(20),
		lookupErrs: map[string]error{
			"3": errors.New("timeout"),
			"7": errors.New("503"),
		},
	}
	tr := &fakeTranslator{out: "chicken"}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("pollo")
	require.NoError(t, err, "per-item lookup failure must never surface")
	assert.Equal(t, 10, result.Count)
	assert.Len(t, result.Meals, 10)

	wantIDs := []string{"1", "2", "4", "5", "6", "8", "9", "10", "11", "12"}
	gotIDs := make([]string, 0, len(result.Meals))
	for _, m := range result.Meals {
		gotIDs = append(gotIDs, m.ID())
	}
	assert.Equal(t, wantIDs, gotIDs)
}

func TestSearchNoMatchAnywhere(t *testing.T) {
	api := &fakeMealAPI{}
	tr := &fakeTranslator{}
	svc := NewSearchService(api, tr)

	result, err := svc.Search("xyzxyzxyz")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	require.NotNil(t, result.Meals)
	assert.Empty(t, result.Meals)
}

func TestSearchDirectFailurePropagates(t *testing.T) {
	api := &fakeMealAPI{searchErr: errors.New("recipe API error 500: boom")}
	svc := NewSearchService(api, &fakeTranslator{})

	_, err := svc.Search("pasta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe API error 500")
}

func TestSearchFilterFailurePropagates(t *testing.T) {
	api := &fakeMealAPI{filterErr: errors.New("recipe API error 502: bad gateway")}
	tr := &fakeTranslator{out: "chicken"}
	svc := NewSearchService(api, tr)

	_, err := svc.Search("pollo")
	require.Error(t, err)
	assert.Empty(t, api.lookupCalls)
}
