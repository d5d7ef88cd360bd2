package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectCategory groups projects on the public listing.
type ProjectCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ProjectCategoryUpdate struct {
	Name *string `bson:"name,omitempty"`
}

// Project is a portfolio entry. A nil EndDate means actively maintained.
// MemberIDs reference TeamMember documents; reads expand them into Members.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Summary     string               `bson:"summary,omitempty" json:"summary,omitempty"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID  primitive.ObjectID   `bson:"category_id,omitempty" json:"category_id,omitempty"`
	MemberIDs   []primitive.ObjectID `bson:"member_ids,omitempty" json:"member_ids,omitempty"`
	TechStack   []string             `bson:"tech_stack,omitempty" json:"tech_stack,omitempty"`
	LiveURL     string               `bson:"live_url,omitempty" json:"live_url,omitempty"`
	RepoURL     string               `bson:"repo_url,omitempty" json:"repo_url,omitempty"`
	ImagePaths  []string             `bson:"image_paths,omitempty" json:"image_paths,omitempty"`
	StartDate   time.Time            `bson:"start_date" json:"start_date"`
	EndDate     *time.Time           `bson:"end_date,omitempty" json:"end_date,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`

	// Members is populated on reads; not stored on the project document.
	Members []TeamMember `bson:"-" json:"members,omitempty"`
}

func (p Project) Interval() (time.Time, *time.Time) {
	return p.StartDate, p.EndDate
}

type ProjectUpdate struct {
	Title       *string               `bson:"title,omitempty"`
	Summary     *string               `bson:"summary,omitempty"`
	Description *string               `bson:"description,omitempty"`
	CategoryID  *primitive.ObjectID   `bson:"category_id,omitempty"`
	MemberIDs   *[]primitive.ObjectID `bson:"member_ids,omitempty"`
	TechStack   *[]string             `bson:"tech_stack,omitempty"`
	LiveURL     *string               `bson:"live_url,omitempty"`
	RepoURL     *string               `bson:"repo_url,omitempty"`
	ImagePaths  *[]string             `bson:"image_paths,omitempty"`
	StartDate   *time.Time            `bson:"start_date,omitempty"`
	EndDate     *time.Time            `bson:"end_date,omitempty"`

	ClearEndDate bool `bson:"-"`
}
