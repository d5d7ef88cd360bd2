package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// About is the singleton profile section of the portfolio.
type About struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Headline  string             `bson:"headline" json:"headline"`
	Bio       string             `bson:"bio" json:"bio"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	PhotoPath string             `bson:"photo_path,omitempty" json:"photo_path,omitempty"`
	CVPath    string             `bson:"cv_path,omitempty" json:"cv_path,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// AboutUpdate carries the fields of an about update; nil fields are left
// untouched in the stored document.
type AboutUpdate struct {
	Name      *string `bson:"name,omitempty"`
	Headline  *string `bson:"headline,omitempty"`
	Bio       *string `bson:"bio,omitempty"`
	Email     *string `bson:"email,omitempty"`
	Phone     *string `bson:"phone,omitempty"`
	Address   *string `bson:"address,omitempty"`
	PhotoPath *string `bson:"photo_path,omitempty"`
	CVPath    *string `bson:"cv_path,omitempty"`
}
