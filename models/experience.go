package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is a single work-history entry. A nil EndDate means the role is
// current.
type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company     string             `bson:"company" json:"company"`
	Role        string             `bson:"role" json:"role"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	LogoPath    string             `bson:"logo_path,omitempty" json:"logo_path,omitempty"`
	StartDate   time.Time          `bson:"start_date" json:"start_date"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

func (e Experience) Interval() (time.Time, *time.Time) {
	return e.StartDate, e.EndDate
}

type ExperienceUpdate struct {
	Company     *string    `bson:"company,omitempty"`
	Role        *string    `bson:"role,omitempty"`
	Location    *string    `bson:"location,omitempty"`
	Description *string    `bson:"description,omitempty"`
	LogoPath    *string    `bson:"logo_path,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty"`

	// ClearEndDate marks the entry ongoing again; it wins over EndDate.
	ClearEndDate bool `bson:"-"`
}
