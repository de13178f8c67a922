package ports

import (
	"context"

	"github.com/getready/ats-system/internal/core/domain"
)

// AuditService processes activity events dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// AuditRepository persists the application activity trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	ListByApplication(ctx context.Context, applicationID string) ([]domain.ActivityEvent, error)
}
