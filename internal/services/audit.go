package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

// auditor appends best-effort audit records; a failed write never fails the
// operation that triggered it.
type auditor struct{ logs repo.AuditLogs }

func (a auditor) record(ctx context.Context, entityType, entityID, action string, details map[string]any) {
	if a.logs == nil {
		return
	}
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Details:    details,
	}
	if id, ok := auth.IdentityFrom(ctx); ok {
		actor := id.UserID
		l.ActorID = &actor
	}
	if err := a.logs.Create(ctx, l); err != nil {
		slog.Warn("audit log", "entity", entityType, "id", entityID, "action", action, "err", err)
	}
}

type Submitter interface {
	Submit(f func()) error
}

// AsyncAuditLogs writes audit records on a worker pool, off the request
// path. When the pool refuses work the record is written inline.
type AsyncAuditLogs struct {
	logs    repo.AuditLogs
	pool    Submitter
	timeout time.Duration
}

func NewAsyncAuditLogs(logs repo.AuditLogs, pool Submitter) *AsyncAuditLogs {
	return &AsyncAuditLogs{logs: logs, pool: pool, timeout: 5 * time.Second}
}

func (a *AsyncAuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	ctx = context.WithoutCancel(ctx)
	err := a.pool.Submit(func() {
		wctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		if err := a.logs.Create(wctx, l); err != nil {
			slog.Warn("audit log", "entity", l.EntityType, "action", l.Action, "err", err)
		}
	})
	if err != nil {
		return a.logs.Create(ctx, l)
	}
	return nil
}
