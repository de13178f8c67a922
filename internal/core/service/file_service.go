package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

const defaultTokenTTL = 5 * time.Minute

// FileService stores resume blobs under opaque names and mediates reads
// through short-lived tokens issued per file.
type FileService struct {
	files    ports.FileRepository
	blobs    ports.BlobStore
	tokens   ports.FileTokenStore
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewFileService(
	files ports.FileRepository,
	blobs ports.BlobStore,
	tokens ports.FileTokenStore,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *FileService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &FileService{
		files:    files,
		blobs:    blobs,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *FileService) Store(ctx context.Context, upload ports.ResumeUpload, ownerID string) (*domain.StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	storedName := uuid.NewString() + ext

	size, err := s.blobs.Save(ctx, storedName, upload.Content, domain.MaxResumeSize)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	file := &domain.StoredFile{
		OriginalName: upload.Filename,
		StoredName:   storedName,
		SizeBytes:    size,
		OwnerID:      ownerID,
		UploadedAt:   time.Now().UTC(),
	}

	created, err := s.files.Create(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	s.logger.Info().Str("file_id", created.ID).Str("owner_id", ownerID).Int64("size", size).Msg("resume stored")
	return created, nil
}

func (s *FileService) IssueToken(ctx context.Context, fileID string, actor ports.Actor) (string, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	switch {
	case file.OwnerID == actor.UserID:
	case domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin):
	default:
		return "", domain.ErrForbidden
	}

	token, err := s.tokens.Issue(ctx, fileID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *FileService) Open(ctx context.Context, fileID, token string) (*domain.StoredFile, io.ReadCloser, error) {
	if err := s.tokens.Validate(ctx, fileID, token); err != nil {
		return nil, nil, err
	}

	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("open resume: %w", err)
	}

	rc, err := s.blobs.Open(ctx, file.StoredName)
	if err != nil {
		return nil, nil, fmt.Errorf("open resume: %w", err)
	}
	return file, rc, nil
}
