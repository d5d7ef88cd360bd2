package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListContactMessages(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error)
	MarkContactMessageRead(ctx context.Context, id primitive.ObjectID) error
	DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error
}

// AttachmentStore is the S3 surface used for contact-form attachments.
type AttachmentStore interface {
	Upload(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error)
	PresignURL(ctx context.Context, objectKey string) (string, error)
}

type ContactService struct {
	store       ContactStore
	attachments AttachmentStore
}

func NewContactService(store ContactStore, attachments AttachmentStore) *ContactService {
	return &ContactService{store: store, attachments: attachments}
}

// Submit stores a public contact-form message; attachments go to S3 first so
// the saved record only ever references uploaded objects.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage, files []*multipart.FileHeader) error {
	if msg.Name == "" {
		return models.Invalid("name", "is required")
	}
	if msg.Email == "" {
		return models.Invalid("email", "is required")
	}
	if msg.Message == "" {
		return models.Invalid("message", "is required")
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("failed to open attachment %s: %w", fh.Filename, err)
		}

		key := fmt.Sprintf("contact/%s%s", uuid.New().String(), filepath.Ext(fh.Filename))
		_, err = s.attachments.Upload(ctx, f, key, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to upload attachment %s: %w", fh.Filename, err)
		}
		msg.AttachmentKeys = append(msg.AttachmentKeys, key)
	}

	return s.store.CreateContactMessage(ctx, msg)
}

// List returns one inbox page, newest first, with attachment keys replaced
// by presigned read URLs. A presign failure falls back to the raw key.
func (s *ContactService) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	msgs, total, err := s.store.ListContactMessages(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range msgs {
		for j, key := range msgs[i].AttachmentKeys {
			url, err := s.attachments.PresignURL(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to presign attachment")
				continue
			}
			msgs[i].AttachmentKeys[j] = url
		}
	}
	return msgs, total, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.store.MarkContactMessageRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteContactMessage(ctx, id)
}
