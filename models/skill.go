package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillCategory groups skills on the public listing.
type SkillCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	// Skills is populated on grouped reads only; it is not stored on the
	// category document.
	Skills []Skill `bson:"-" json:"skills,omitempty"`
}

type SkillCategoryUpdate struct {
	Name  *string `bson:"name,omitempty"`
	Order *int    `bson:"order,omitempty"`
}

// Skill is a single named skill with a 0-100 proficiency level.
type Skill struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
	Name       string             `bson:"name" json:"name"`
	Level      int                `bson:"level" json:"level"`
	IconPath   string             `bson:"icon_path,omitempty" json:"icon_path,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

type SkillUpdate struct {
	CategoryID *primitive.ObjectID `bson:"category_id,omitempty"`
	Name       *string             `bson:"name,omitempty"`
	Level      *int                `bson:"level,omitempty"`
	IconPath   *string             `bson:"icon_path,omitempty"`
}
