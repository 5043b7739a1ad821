package main

import (
	"context"
	"log"
	"time"

	"recipegenie/config"
	"recipegenie/controllers"
	"recipegenie/routes"
	"recipegenie/services"
	"recipegenie/storage"
)

func main() {
	config.Load()

	// The store is optional: recipe search and translation keep working
	// without it, and /test reports its state.
	var store *storage.MongoStore
	if uri := config.DatabaseURL(); uri != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := storage.Connect(ctx, uri, config.DatabaseName())
		cancel()
		if err != nil {
			log.Printf("document store unavailable: %v", err)
		} else {
			store = s
		}
	} else {
		log.Println("DATABASE_URL not set, favorites disabled")
	}

	meals := services.NewMealDBService(config.MealDBBaseURL())
	translator := services.NewTranslateService(config.TranslateURL())
	search := services.NewSearchService(meals, translator)

	var docs services.DocumentStore
	if store != nil {
		docs = store
	}
	favorites := services.NewFavoriteService(docs)

	r := routes.SetupRouter(routes.Controllers{
		Health:    controllers.NewHealthController(store),
		Recipes:   controllers.NewRecipeController(search, meals),
		Favorites: controllers.NewFavoriteController(favorites),
		Translate: controllers.NewTranslateController(translator),
	})

	addr := ":" + config.Port()
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
