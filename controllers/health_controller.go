package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"recipegenie/storage"
	"recipegenie/utils"
)

// HealthController serves the liveness and store-diagnostic endpoints.
// The store handle may be nil when the store never came up; /test
// reports that instead of failing.
type HealthController struct {
	store *storage.MongoStore
}

func NewHealthController(store *storage.MongoStore) *HealthController {
	return &HealthController{store: store}
}

// GET /
func (h *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Recipe Genie backend is running"})
}

// GET /test
func (h *HealthController) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envFlag("DATABASE_URL"),
		"database_name":     envFlag("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.store == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["connection_status"] = "connected"
	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		resp["database"] = "connected but error: " + utils.Truncate(err.Error(), 50)
	} else if names, err := h.store.CollectionNames(ctx, 10); err != nil {
		resp["database"] = "connected but error: " + utils.Truncate(err.Error(), 50)
	} else {
		resp["database"] = "connected and working"
		resp["collections"] = names
	}
	c.JSON(http.StatusOK, resp)
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
