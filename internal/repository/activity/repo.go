package activity

import (
	"context"
	"fmt"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// store is the consumer interface for activity persistence (ISP).
type store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Repo appends activity-log records. Callers treat failures as best-effort:
// the write is a side effect that must never surface to a client.
type Repo struct {
	store store
}

// New creates an activity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Record appends one activity entry.
func (r *Repo) Record(ctx context.Context, entry *domain.ActivityLog) error {
	if _, err := r.store.Insert(ctx, domain.KindActivityLog, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}
