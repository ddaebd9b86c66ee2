package ports

import (
	"context"
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// AuditEventInput is the DTO handed from the auth flow to the audit pipeline.
type AuditEventInput struct {
	Action    string
	Subject   string
	AccountID string
	Timestamp time.Time
}

// AuditService processes queued authentication audit events.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository persists audit events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
