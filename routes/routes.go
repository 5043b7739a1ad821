package routes

import (
	"github.com/gin-gonic/gin"

	"recipegenie/controllers"
	"recipegenie/middlewares"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Health    *controllers.HealthController
	Recipes   *controllers.RecipeController
	Favorites *controllers.FavoriteController
	Translate *controllers.TranslateController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", ctl.Health.Root)
	r.GET("/test", ctl.Health.Test)

	api := r.Group("/api")
	{
		recipes := api.Group("/recipes")
		{
			recipes.GET("/search", ctl.Recipes.Search)
			recipes.GET("/random", ctl.Recipes.Random)
			recipes.GET("/:mealId", ctl.Recipes.Lookup)
		}

		api.POST("/favorites", ctl.Favorites.Add)
		api.GET("/favorites", ctl.Favorites.List)

		api.GET("/translate", ctl.Translate.Translate)
	}

	return r
}
