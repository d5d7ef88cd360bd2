package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a collaborator shown on the team page and attachable to
// projects.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoPath string             `bson:"photo_path,omitempty" json:"photo_path,omitempty"`
	Socials   map[string]string  `bson:"socials,omitempty" json:"socials,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type TeamMemberUpdate struct {
	Name      *string            `bson:"name,omitempty"`
	Role      *string            `bson:"role,omitempty"`
	Bio       *string            `bson:"bio,omitempty"`
	PhotoPath *string            `bson:"photo_path,omitempty"`
	Socials   *map[string]string `bson:"socials,omitempty"`
}
