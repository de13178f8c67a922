package domain

import (
	"errors"
	"time"
)

var ErrFileNotFound = errors.New("file not found")
var ErrFileTokenInvalid = errors.New("file token invalid or expired")

// StoredFile is the metadata for one resume blob. The blob itself lives in
// the file store; access goes through short-lived tokens, never raw paths.
type StoredFile struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OriginalName string    `json:"original_name" bson:"original_name"`
	StoredName   string    `json:"stored_name" bson:"stored_name"`
	SizeBytes    int64     `json:"size_bytes" bson:"size_bytes"`
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	UploadedAt   time.Time `json:"uploaded_at" bson:"uploaded_at"`
}
