// Package memory keeps every record in process memory. It backs tests and
// the STORE_DRIVER=memory development mode.
package memory

import (
	"time"

	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

func NewRepositories() repo.Repositories {
	return repo.Repositories{
		Users:     NewUsers(),
		Products:  NewProducts(),
		AuditLogs: NewAuditLogs(),
	}
}

var now = func() time.Time { return time.Now().UTC() }
