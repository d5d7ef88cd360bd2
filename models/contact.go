package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is an inbox entry submitted from the public contact form.
// AttachmentKeys are S3 object keys; reads replace them with presigned URLs.
type ContactMessage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Subject        string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message        string             `bson:"message" json:"message"`
	AttachmentKeys []string           `bson:"attachment_keys,omitempty" json:"attachments,omitempty"`
	IsRead         bool               `bson:"is_read" json:"is_read"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
