package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLink is a single entry in the profile's social bar.
type SocialLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Platform  string             `bson:"platform" json:"platform"`
	URL       string             `bson:"url" json:"url"`
	IconPath  string             `bson:"icon_path,omitempty" json:"icon_path,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type SocialLinkUpdate struct {
	Platform *string `bson:"platform,omitempty"`
	URL      *string `bson:"url,omitempty"`
	IconPath *string `bson:"icon_path,omitempty"`
	Order    *int    `bson:"order,omitempty"`
}
