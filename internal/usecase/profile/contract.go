package profile

import (
	"context"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Repository defines the storage contract for profiles.
type Repository interface {
	CreateStartup(ctx context.Context, s *domain.Startup) (string, error)
	ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error)
	GetStartup(ctx context.Context, id string) (domain.Startup, error)
	CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error)
	ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error)
	GetInvestor(ctx context.Context, id string) (domain.Investor, error)
}
