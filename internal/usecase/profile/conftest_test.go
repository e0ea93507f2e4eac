package profile

import (
	"context"

	"github.com/venturebridge/venturebridge/internal/domain"
)

type mockRepo struct {
	createStartupFn  func(ctx context.Context, st *domain.Startup) (string, error)
	listStartupsFn   func(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error)
	getStartupFn     func(ctx context.Context, id string) (domain.Startup, error)
	createInvestorFn func(ctx context.Context, inv *domain.Investor) (string, error)
	listInvestorsFn  func(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error)
	getInvestorFn    func(ctx context.Context, id string) (domain.Investor, error)
}

func (m *mockRepo) CreateStartup(ctx context.Context, st *domain.Startup) (string, error) {
	return m.createStartupFn(ctx, st)
}

func (m *mockRepo) ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error) {
	return m.listStartupsFn(ctx, q)
}

func (m *mockRepo) GetStartup(ctx context.Context, id string) (domain.Startup, error) {
	return m.getStartupFn(ctx, id)
}

func (m *mockRepo) CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error) {
	return m.createInvestorFn(ctx, inv)
}

func (m *mockRepo) ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error) {
	return m.listInvestorsFn(ctx, q)
}

func (m *mockRepo) GetInvestor(ctx context.Context, id string) (domain.Investor, error) {
	return m.getInvestorFn(ctx, id)
}
