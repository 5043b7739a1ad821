package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"recipegenie/models"
)

// favoritesCollection is where favorite recipes live in the store.
const favoritesCollection = "recipefavorite"

// DefaultFavoritesLimit applies when the client doesn't ask for one.
const DefaultFavoritesLimit = 50

// ErrStoreUnavailable is returned when the document store never came up.
var ErrStoreUnavailable = errors.New("document store not available")

// DocumentStore is the slice of the store the favorites service needs.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// FavoriteService persists and lists favorite recipes. The store may be
// nil when the process runs without a configured database; operations
// then fail with ErrStoreUnavailable.
type FavoriteService struct {
	store DocumentStore
}

func NewFavoriteService(store DocumentStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Add persists the payload verbatim and returns the store-assigned id.
func (s *FavoriteService) Add(ctx context.Context, in models.FavoriteRecipeIn) (string, error) {
	if s.store == nil {
		return "", ErrStoreUnavailable
	}
	return s.store.CreateDocument(ctx, favoritesCollection, in)
}

// List returns up to limit favorites with their ids populated.
func (s *FavoriteService) List(ctx context.Context, limit int64) ([]models.FavoriteRecipe, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	docs, err := s.store.GetDocuments(ctx, favoritesCollection, bson.M{}, limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.FavoriteRecipe, 0, len(docs))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var fav models.FavoriteRecipe
		if err := bson.Unmarshal(raw, &fav); err != nil {
			return nil, err
		}
		items = append(items, fav)
	}
	return items, nil
}
