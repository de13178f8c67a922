package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

// AuditService persists activity events handed off by the dispatcher
// workers. It runs off the request path; a failed insert is logged and
// retried by the dispatcher, never surfaced to the caller.
type AuditService struct {
	history ports.AuditRepository
	logger  zerolog.Logger
}

func NewAuditService(history ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{history: history, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.ApplicationID == "" || event.Kind == "" {
		s.logger.Warn().Str("kind", event.Kind).Msg("dropping malformed activity event")
		return nil
	}

	if err := s.history.Insert(ctx, &event); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}

	s.logger.Debug().
		Str("application_id", event.ApplicationID).
		Str("kind", event.Kind).
		Msg("activity event recorded")
	return nil
}
