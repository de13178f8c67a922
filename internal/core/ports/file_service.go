package ports

import (
	"context"
	"io"
	"time"

	"github.com/getready/ats-system/internal/core/domain"
)

// FileService mediates resume blob access through short-lived tokens.
type FileService interface {
	// Store saves an uploaded resume and its metadata; returns the record.
	Store(ctx context.Context, upload ResumeUpload, ownerID string) (*domain.StoredFile, error)
	// IssueToken returns a short-lived opaque token bound to the file.
	// Candidates may only request tokens for their own resume.
	IssueToken(ctx context.Context, fileID string, actor Actor) (string, error)
	// Open validates the token and returns the file metadata plus a reader
	// over its content. The caller closes the reader.
	Open(ctx context.Context, fileID, token string) (*domain.StoredFile, io.ReadCloser, error)
}

// FileRepository defines persistence for resume metadata.
type FileRepository interface {
	Create(ctx context.Context, file *domain.StoredFile) (*domain.StoredFile, error)
	FindByID(ctx context.Context, id string) (*domain.StoredFile, error)
}

// BlobStore holds the resume content under opaque stored names.
type BlobStore interface {
	Save(ctx context.Context, storedName string, content io.Reader, limit int64) (int64, error)
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
}

// FileTokenStore issues and validates the short-lived access tokens that
// make resume URLs safe to open as top-level navigations.
type FileTokenStore interface {
	Issue(ctx context.Context, fileID string, ttl time.Duration) (string, error)
	// Validate reports whether token is live and bound to fileID.
	Validate(ctx context.Context, fileID, token string) error
}
