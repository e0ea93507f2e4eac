package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/venturebridge/venturebridge/internal/db"
	"github.com/venturebridge/venturebridge/internal/domain"
)

// store is the consumer interface for verification persistence (ISP).
type store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Repo persists KYC verification submissions.
type Repo struct {
	store store
}

// New creates a verification repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Submit inserts one verification record and returns the generated id.
func (r *Repo) Submit(ctx context.Context, v *domain.Verification) (string, error) {
	id, err := r.store.Insert(ctx, domain.KindVerification, v)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return "", fmt.Errorf("submit verification: %w: %s", domain.ErrStoreUnavailable, err)
		}
		return "", fmt.Errorf("submit verification: %w", err)
	}
	return id, nil
}
