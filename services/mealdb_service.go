package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recipegenie/models"
	"recipegenie/utils"
)

// MealDBService is the client for the external recipe database API.
type MealDBService struct {
	baseURL string
	client  *http.Client
}

func NewMealDBService(baseURL string) *MealDBService {
	return &MealDBService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// mealListResponse is the common envelope of the search, filter and
// lookup endpoints. The API reports "no matches" as a null meals field.
type mealListResponse struct {
	Meals []models.Meal `json:"meals"`
}

// SearchByName searches meals by name. An empty slice means no matches.
func (s *MealDBService) SearchByName(q string) ([]models.Meal, error) {
	return s.getMeals("search.php", url.Values{"s": {q}})
}

// FilterByIngredient returns lightweight candidates (id, name, thumbnail)
// that use the given ingredient.
func (s *MealDBService) FilterByIngredient(ingredient string) ([]models.Meal, error) {
	return s.getMeals("filter.php", url.Values{"i": {ingredient}})
}

// LookupMealByID fetches the full detail of a single meal.
func (s *MealDBService) LookupMealByID(id string) (models.Meal, error) {
	meals, err := s.getMeals("lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("meal %q not found", id)
	}
	return meals[0], nil
}

// LookupByID returns the raw lookup payload for passthrough to clients.
func (s *MealDBService) LookupByID(id string) (map[string]any, error) {
	return s.getRaw("lookup.php", url.Values{"i": {id}})
}

// Random returns the raw random-meal payload for passthrough to clients.
func (s *MealDBService) Random() (map[string]any, error) {
	return s.getRaw("random.php", nil)
}

func (s *MealDBService) getMeals(path string, params url.Values) ([]models.Meal, error) {
	body, err := s.get(path, params)
	if err != nil {
		return nil, err
	}
	var lr mealListResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("failed to parse recipe API response: %w", err)
	}
	return lr.Meals, nil
}

func (s *MealDBService) getRaw(path string, params url.Values) (map[string]any, error) {
	body, err := s.get(path, params)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse recipe API response: %w", err)
	}
	return payload, nil
}

func (s *MealDBService) get(path string, params url.Values) ([]byte, error) {
	u := s.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API error %d: %s", resp.StatusCode, utils.Truncate(string(body), 120))
	}
	return body, nil
}
