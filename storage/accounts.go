package storage

import (
	"context"
	"errors"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) accounts() *mongo.Collection {
	return s.db.Collection(colAccounts)
}

// GetAccountByEmail looks an account up by email and role. Returns
// models.ErrNotFound when absent.
func (s *Store) GetAccountByEmail(ctx context.Context, email string, role models.Role) (*models.Account, error) {
	var acc models.Account
	err := s.accounts().FindOne(ctx, bson.M{"email": email, "role": role}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var acc models.Account
	err := s.accounts().FindOne(ctx, bson.M{"_id": id}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *models.Account) error {
	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	res, err := s.accounts().InsertOne(ctx, acc)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateAccount
	}
	if err != nil {
		return err
	}
	acc.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// DeleteUnverifiedAccount purges an abandoned registration so the email can
// be registered again.
func (s *Store) DeleteUnverifiedAccount(ctx context.Context, email string, role models.Role) error {
	_, err := s.accounts().DeleteMany(ctx, bson.M{
		"email": email, "role": role, "is_verified": false,
	})
	return err
}

// SetVerifyCode stores a fresh OTP and its expiry, overwriting any previous
// unconsumed code.
func (s *Store) SetVerifyCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error {
	_, err := s.accounts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"verify_code": code, "verify_expiry": expiry, "updated_at": time.Now()},
	})
	return err
}

// MarkVerified flips is_verified and clears both OTP fields in one update.
func (s *Store) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.accounts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"is_verified": true, "updated_at": time.Now()},
		"$unset": bson.M{"verify_code": "", "verify_expiry": ""},
	})
	return err
}

// SetResetCode stores a fresh password-reset code, independent of any
// pending verification OTP.
func (s *Store) SetResetCode(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error {
	_, err := s.accounts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"reset_code": code, "reset_expiry": expiry, "updated_at": time.Now()},
	})
	return err
}

// UpdatePassword writes the new hash and clears both reset fields in the
// same update.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := s.accounts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now()},
		"$unset": bson.M{"reset_code": "", "reset_expiry": ""},
	})
	return err
}

// EnsureAdmin seeds the admin account on first boot; an existing admin with
// the email is left untouched.
func (s *Store) EnsureAdmin(ctx context.Context, name, email, passwordHash string) error {
	now := time.Now()
	_, err := s.accounts().UpdateOne(ctx,
		bson.M{"email": email, "role": models.RoleAdmin},
		bson.M{"$setOnInsert": models.Account{
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
