package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipegenie/services"
)

// TranslateController exposes the translation API directly to clients.
type TranslateController struct {
	translator *services.TranslateService
}

func NewTranslateController(translator *services.TranslateService) *TranslateController {
	return &TranslateController{translator: translator}
}

// GET /api/translate?text=hello&target=es
func (tc *TranslateController) Translate(c *gin.Context) {
	text := c.Query("text")
	target := c.Query("target")
	if text == "" || target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters text and target are required"})
		return
	}

	translated, err := tc.translator.Translate(text, target)
	if err != nil {
		// Upstream rejections (e.g. an unknown target code) keep their
		// original status; everything else is a gateway failure.
		var ue *services.UpstreamError
		if errors.As(err, &ue) {
			c.JSON(ue.Status, gin.H{"error": "translation error: " + ue.Detail})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "translation service failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"translated": translated})
}
