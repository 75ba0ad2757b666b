package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

type AuditLogs struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func NewAuditLogs() *AuditLogs { return &AuditLogs{} }

func (r *AuditLogs) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uuid.NewString()
	l.CreatedAt = now()
	r.entries = append(r.entries, l)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (r *AuditLogs) Entries() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLog(nil), r.entries...)
}
