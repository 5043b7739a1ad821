package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipegenie/models"
	"recipegenie/services"
	"recipegenie/utils"
)

// FavoriteController serves the favorites CRUD surface.
type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// POST /api/favorites  {"mealId": "52772", "title": "Teriyaki Chicken"}
func (fc *FavoriteController) Add(c *gin.Context) {
	var in models.FavoriteRecipeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	id, err := fc.favorites.Add(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorite: " + utils.Truncate(err.Error(), 50)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// GET /api/favorites?limit=50
func (fc *FavoriteController) List(c *gin.Context) {
	limit := int64(services.DefaultFavoritesLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	items, err := fc.favorites.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites: " + utils.Truncate(err.Error(), 50)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
