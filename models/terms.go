package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TermSection is one ordered section of the terms-and-conditions page.
type TermSection struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type TermSectionUpdate struct {
	Title *string `bson:"title,omitempty"`
	Body  *string `bson:"body,omitempty"`
	Order *int    `bson:"order,omitempty"`
}

// TermOrder is one element of a bulk reorder request. The whole batch is
// applied atomically or not at all.
type TermOrder struct {
	ID    primitive.ObjectID `json:"id"`
	Order int                `json:"order"`
}
