package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FavoriteRecipe is a saved recipe reference as stored in the
// "recipefavorite" collection. Documents are immutable once created.
type FavoriteRecipe struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MealID    string             `bson:"meal_id" json:"mealId"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Area      string             `bson:"area,omitempty" json:"area,omitempty"`
}

// FavoriteRecipeIn is the client payload for saving a favorite. It is
// persisted verbatim; the store assigns the id.
type FavoriteRecipeIn struct {
	MealID    string `bson:"meal_id" json:"mealId" binding:"required"`
	Title     string `bson:"title" json:"title" binding:"required"`
	Thumbnail string `bson:"thumbnail,omitempty" json:"thumbnail"`
	Category  string `bson:"category,omitempty" json:"category"`
	Area      string `bson:"area,omitempty" json:"area"`
}
