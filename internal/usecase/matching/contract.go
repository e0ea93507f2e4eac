package matching

import (
	"context"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// StartupSource reads the full startup set for scoring.
type StartupSource interface {
	ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error)
}

// InvestorSource reads the full investor set for scoring.
type InvestorSource interface {
	ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error)
}
