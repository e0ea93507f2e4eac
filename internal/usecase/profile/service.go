package profile

import (
	"context"
	"fmt"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Service handles profile creation and filtered listing. Validation happens
// here, at the boundary, so repositories only ever see well-formed documents.
type Service struct {
	repo Repository
}

// New creates a profile service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateStartup normalizes, validates and persists a startup profile.
func (s *Service) CreateStartup(ctx context.Context, st *domain.Startup) (string, error) {
	st.Normalize()
	if err := st.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.CreateStartup(ctx, st)
	if err != nil {
		return "", fmt.Errorf("create startup: %w", err)
	}
	return id, nil
}

// ListStartups returns startups matching the conjunctive query.
func (s *Service) ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error) {
	startups, err := s.repo.ListStartups(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	return startups, nil
}

// GetStartup returns one startup by id.
func (s *Service) GetStartup(ctx context.Context, id string) (domain.Startup, error) {
	st, err := s.repo.GetStartup(ctx, id)
	if err != nil {
		return domain.Startup{}, fmt.Errorf("get startup: %w", err)
	}
	return st, nil
}

// CreateInvestor normalizes, validates and persists an investor profile.
func (s *Service) CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error) {
	inv.Normalize()
	if err := inv.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.CreateInvestor(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("create investor: %w", err)
	}
	return id, nil
}

// ListInvestors returns investors matching the conjunctive query.
func (s *Service) ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error) {
	investors, err := s.repo.ListInvestors(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	return investors, nil
}

// GetInvestor returns one investor by id.
func (s *Service) GetInvestor(ctx context.Context, id string) (domain.Investor, error) {
	inv, err := s.repo.GetInvestor(ctx, id)
	if err != nil {
		return domain.Investor{}, fmt.Errorf("get investor: %w", err)
	}
	return inv, nil
}
