package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

type auditLogsRepo struct{ db DBTX }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_logs(id, entity_type, entity_id, action, actor_id, details) VALUES($1,$2,$3,$4,$5,$6)`,
		l.ID, l.EntityType, l.EntityID, l.Action, l.ActorID, l.Details,
	)
	return err
}
