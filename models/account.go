package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role distinguishes the two account variants. They share one collection and
// one service; OTP verification only applies to RoleUser.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account represents an admin or public-user credential record.
//
// VerifyCode/VerifyExpiry and ResetCode/ResetExpiry are written and cleared
// as pairs: a code is present iff its expiry is present.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	IsVerified   bool               `bson:"is_verified" json:"is_verified"`

	VerifyCode   string     `bson:"verify_code,omitempty" json:"-"`
	VerifyExpiry *time.Time `bson:"verify_expiry,omitempty" json:"-"`

	ResetCode   string     `bson:"reset_code,omitempty" json:"-"`
	ResetExpiry *time.Time `bson:"reset_expiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
