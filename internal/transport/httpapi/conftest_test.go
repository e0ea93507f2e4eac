package httpapi

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/db"
	"github.com/venturebridge/venturebridge/internal/domain"
	authuc "github.com/venturebridge/venturebridge/internal/usecase/auth"
	chatuc "github.com/venturebridge/venturebridge/internal/usecase/chat"
	healthuc "github.com/venturebridge/venturebridge/internal/usecase/health"
	matchinguc "github.com/venturebridge/venturebridge/internal/usecase/matching"
	profileuc "github.com/venturebridge/venturebridge/internal/usecase/profile"
	verificationuc "github.com/venturebridge/venturebridge/internal/usecase/verification"
)

type mockProfileRepo struct {
	createStartupFn  func(ctx context.Context, st *domain.Startup) (string, error)
	listStartupsFn   func(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error)
	getStartupFn     func(ctx context.Context, id string) (domain.Startup, error)
	createInvestorFn func(ctx context.Context, inv *domain.Investor) (string, error)
	listInvestorsFn  func(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error)
	getInvestorFn    func(ctx context.Context, id string) (domain.Investor, error)
}

func (m *mockProfileRepo) CreateStartup(ctx context.Context, st *domain.Startup) (string, error) {
	return m.createStartupFn(ctx, st)
}

func (m *mockProfileRepo) ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error) {
	return m.listStartupsFn(ctx, q)
}

func (m *mockProfileRepo) GetStartup(ctx context.Context, id string) (domain.Startup, error) {
	return m.getStartupFn(ctx, id)
}

func (m *mockProfileRepo) CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error) {
	return m.createInvestorFn(ctx, inv)
}

func (m *mockProfileRepo) ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error) {
	return m.listInvestorsFn(ctx, q)
}

func (m *mockProfileRepo) GetInvestor(ctx context.Context, id string) (domain.Investor, error) {
	return m.getInvestorFn(ctx, id)
}

type mockChatRepo struct {
	appendFn       func(ctx context.Context, msg *domain.Message) (string, error)
	conversationFn func(ctx context.Context, a, b string) ([]domain.Message, error)
}

func (m *mockChatRepo) Append(ctx context.Context, msg *domain.Message) (string, error) {
	return m.appendFn(ctx, msg)
}

func (m *mockChatRepo) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	return m.conversationFn(ctx, a, b)
}

type mockVerificationRepo struct {
	submitFn func(ctx context.Context, v *domain.Verification) (string, error)
}

func (m *mockVerificationRepo) Submit(ctx context.Context, v *domain.Verification) (string, error) {
	return m.submitFn(ctx, v)
}

// newTestRouter builds a router with every endpoint over the given mocks.
// Nil mocks fall back to empty-result defaults.
func newTestRouter(profiles *mockProfileRepo, chat *mockChatRepo, verifications *mockVerificationRepo) chi.Router {
	if profiles == nil {
		profiles = &mockProfileRepo{}
	}
	if profiles.listStartupsFn == nil {
		profiles.listStartupsFn = func(context.Context, domain.StartupQuery) ([]domain.Startup, error) {
			return nil, nil
		}
	}
	if profiles.listInvestorsFn == nil {
		profiles.listInvestorsFn = func(context.Context, domain.InvestorQuery) ([]domain.Investor, error) {
			return nil, nil
		}
	}
	if chat == nil {
		chat = &mockChatRepo{}
	}
	if verifications == nil {
		verifications = &mockVerificationRepo{}
	}

	profileSvc := profileuc.New(profiles)
	srv := NewServer(
		profileSvc,
		matchinguc.New(profileSvc, profileSvc),
		chatuc.New(chat),
		verificationuc.New(verifications),
		authuc.New(authuc.Config{}),
		healthuc.New(db.NewDisabled(), false),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}
