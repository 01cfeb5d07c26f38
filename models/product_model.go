package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the fixed set of product categories.
var Categories = []string{"Electronics", "Clothing", "Sports", "Home & Garden", "Books", "Other"}

type ProductImage struct {
	Url      string `bson:"url" json:"url" validate:"required,url"`
	PublicId string `bson:"public_id" json:"public_id"`
}

type Product struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required,min=3,max=100"`
	Description  string             `bson:"description" json:"description" validate:"required,min=10"`
	Price        float64            `bson:"price" json:"price" validate:"required,gt=0"`
	ComparePrice *float64           `bson:"comparePrice,omitempty" json:"comparePrice,omitempty" validate:"omitempty,gt=0"`
	Category     string             `bson:"category" json:"category" validate:"required,oneof=Electronics Clothing Sports 'Home & Garden' Books Other"`
	Stock        int                `bson:"stock" json:"stock" validate:"gte=0"`
	Rating       float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	NumReviews   int                `bson:"numReviews" json:"numReviews" validate:"gte=0"`
	Featured     bool               `bson:"featured" json:"featured"`
	Tags         []string           `bson:"tags" json:"tags"`
	Images       []ProductImage     `bson:"images" json:"images" validate:"omitempty,dive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
