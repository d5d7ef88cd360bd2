package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Education is a single study-history entry. A nil EndDate means ongoing.
type Education struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School    string             `bson:"school" json:"school"`
	Degree    string             `bson:"degree" json:"degree"`
	Field     string             `bson:"field,omitempty" json:"field,omitempty"`
	Grade     string             `bson:"grade,omitempty" json:"grade,omitempty"`
	StartDate time.Time          `bson:"start_date" json:"start_date"`
	EndDate   *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (e Education) Interval() (time.Time, *time.Time) {
	return e.StartDate, e.EndDate
}

type EducationUpdate struct {
	School    *string    `bson:"school,omitempty"`
	Degree    *string    `bson:"degree,omitempty"`
	Field     *string    `bson:"field,omitempty"`
	Grade     *string    `bson:"grade,omitempty"`
	StartDate *time.Time `bson:"start_date,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty"`

	ClearEndDate bool `bson:"-"`
}
