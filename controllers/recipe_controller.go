package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipegenie/services"
)

// RecipeController serves the search, random and lookup endpoints.
type RecipeController struct {
	search *services.SearchService
	meals  *services.MealDBService
}

func NewRecipeController(search *services.SearchService, meals *services.MealDBService) *RecipeController {
	return &RecipeController{search: search, meals: meals}
}

// GET /api/recipes/search?q=pollo
func (rc *RecipeController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	result, err := rc.search.Search(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe search failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/recipes/random
func (rc *RecipeController) Random(c *gin.Context) {
	payload, err := rc.meals.Random()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "random recipe failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GET /api/recipes/:mealId
func (rc *RecipeController) Lookup(c *gin.Context) {
	payload, err := rc.meals.LookupByID(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}
