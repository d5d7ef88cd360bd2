package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colAccounts          = "accounts"
	colAbout             = "about"
	colSocialLinks       = "social_links"
	colSkillCategories   = "skill_categories"
	colSkills            = "skills"
	colExperience        = "experience"
	colEducation         = "education"
	colTeamMembers       = "team_members"
	colProjectCategories = "project_categories"
	colProjects          = "projects"
	colTerms             = "terms"
	colContactMessages   = "contact_messages"
)

// Store is the single handle onto the Mongo database. It is opened once at
// process start, injected into the services, and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects, pings, and creates the indexes the services rely on.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("db", dbName).Msg("connected to mongodb")
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(colAccounts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create account index: %w", err)
	}
	_, err = s.db.Collection(colSkills).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create skill index: %w", err)
	}
	return nil
}

// Close tears the connection down; call on shutdown.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// withTransaction runs fn inside a single Mongo transaction so multi-row
// updates land all-or-nothing.
func (s *Store) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// setDoc turns an optional-field update struct into the $set document,
// dropping nil fields. updated_at is always stamped, so the $set is never
// empty even for an all-nil patch.
func setDoc(upd interface{}) (bson.M, error) {
	raw, err := bson.Marshal(upd)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal update: %w", err)
	}
	m["updated_at"] = time.Now()
	return m, nil
}
