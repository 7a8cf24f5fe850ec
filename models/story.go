package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Story is a catalog entry belonging to a single category.
type Story struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating     float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	CategoryID primitive.ObjectID `bson:"category" json:"category"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
