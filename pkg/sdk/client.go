package venturebridge

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/db"
	dbMongo "github.com/venturebridge/venturebridge/internal/db/mongo"
	"github.com/venturebridge/venturebridge/internal/domain"
	activityrepo "github.com/venturebridge/venturebridge/internal/repository/activity"
	chatrepo "github.com/venturebridge/venturebridge/internal/repository/chat"
	profilerepo "github.com/venturebridge/venturebridge/internal/repository/profile"
	verificationrepo "github.com/venturebridge/venturebridge/internal/repository/verification"
	authuc "github.com/venturebridge/venturebridge/internal/usecase/auth"
	chatuc "github.com/venturebridge/venturebridge/internal/usecase/chat"
	healthuc "github.com/venturebridge/venturebridge/internal/usecase/health"
	matchinguc "github.com/venturebridge/venturebridge/internal/usecase/matching"
	profileuc "github.com/venturebridge/venturebridge/internal/usecase/profile"
	verificationuc "github.com/venturebridge/venturebridge/internal/usecase/verification"
)

const defaultConnectTimeout = 10 * time.Second

// Internal interfaces for test substitution.
type profileUseCase interface {
	CreateStartup(ctx context.Context, st *domain.Startup) (string, error)
	ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error)
	GetStartup(ctx context.Context, id string) (domain.Startup, error)
	CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error)
	ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error)
	GetInvestor(ctx context.Context, id string) (domain.Investor, error)
}

type matchingUseCase interface {
	Match(ctx context.Context, pref *domain.MatchPreference) ([]domain.Match, error)
}

type chatUseCase interface {
	Send(ctx context.Context, msg *domain.Message) (string, error)
	Conversation(ctx context.Context, a, b string) ([]domain.Message, error)
}

type verificationUseCase interface {
	Submit(ctx context.Context, v *domain.Verification) (string, error)
}

type authUseCase interface {
	VerifyGoogleToken(ctx context.Context, idToken string) (domain.GoogleProfile, error)
}

// Client is the matchmaking SDK entry point.
type Client struct {
	store           db.Store
	profileSvc      profileUseCase
	matchingSvc     matchingUseCase
	chatSvc         chatUseCase
	verificationSvc verificationUseCase
	authSvc         authUseCase
	healthSvc       *healthuc.Service
}

// New creates a Client and connects to the document store. The provided
// context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		connectTimeout: defaultConnectTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var store db.Store
	configured := cfg.uri != ""
	if configured {
		mongoStore, err := dbMongo.NewStore(ctx, dbMongo.Config{
			URI:            cfg.uri,
			Database:       cfg.database,
			ConnectTimeout: cfg.connectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("venturebridge: create store: %w", err)
		}
		if err := mongoStore.WaitForReady(ctx, cfg.connectTimeout); err != nil {
			_ = mongoStore.Close(ctx)
			return nil, fmt.Errorf("venturebridge: store not ready: %w", err)
		}
		store = mongoStore
	} else {
		store = db.NewDisabled()
	}

	return wireClient(store, configured, cfg, logger), nil
}

func wireClient(store db.Store, configured bool, cfg *clientConfig, logger *zap.Logger) *Client {
	profileRepo := profilerepo.New(store)
	profileSvc := profileuc.New(profileRepo)

	authSvc := authuc.New(authuc.Config{
		TokenInfoURL: cfg.tokenInfoURL,
		Audience:     cfg.googleClientID,
	}).WithActivityLog(activityrepo.New(store)).WithLogger(logger)

	return &Client{
		store:           store,
		profileSvc:      profileSvc,
		matchingSvc:     matchinguc.New(profileRepo, profileRepo),
		chatSvc:         chatuc.New(chatrepo.New(store)),
		verificationSvc: verificationuc.New(verificationrepo.New(store)),
		authSvc:         authSvc,
		healthSvc:       healthuc.New(store, configured),
	}
}

// CreateStartup validates and stores a startup profile, returning its id.
func (c *Client) CreateStartup(ctx context.Context, st *domain.Startup) (string, error) {
	return c.profileSvc.CreateStartup(ctx, st)
}

// ListStartups returns startups matching the query filters.
func (c *Client) ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error) {
	return c.profileSvc.ListStartups(ctx, q)
}

// GetStartup returns one startup by id.
func (c *Client) GetStartup(ctx context.Context, id string) (domain.Startup, error) {
	return c.profileSvc.GetStartup(ctx, id)
}

// CreateInvestor validates and stores an investor profile, returning its id.
func (c *Client) CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error) {
	return c.profileSvc.CreateInvestor(ctx, inv)
}

// ListInvestors returns investors matching the query filters.
func (c *Client) ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error) {
	return c.profileSvc.ListInvestors(ctx, q)
}

// GetInvestor returns one investor by id.
func (c *Client) GetInvestor(ctx context.Context, id string) (domain.Investor, error) {
	return c.profileSvc.GetInvestor(ctx, id)
}

// Match scores the full startup/investor cross-product against pref and
// returns up to 50 ranked candidates.
func (c *Client) Match(ctx context.Context, pref *domain.MatchPreference) ([]domain.Match, error) {
	return c.matchingSvc.Match(ctx, pref)
}

// SendMessage stores one chat message and returns its id.
func (c *Client) SendMessage(ctx context.Context, msg *domain.Message) (string, error) {
	return c.chatSvc.Send(ctx, msg)
}

// Conversation returns every message exchanged between a and b.
func (c *Client) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	return c.chatSvc.Conversation(ctx, a, b)
}

// SubmitVerification stores a KYC submission and returns its id.
func (c *Client) SubmitVerification(ctx context.Context, v *domain.Verification) (string, error) {
	return c.verificationSvc.Submit(ctx, v)
}

// VerifyGoogleToken introspects a Google identity token.
func (c *Client) VerifyGoogleToken(ctx context.Context, idToken string) (domain.GoogleProfile, error) {
	return c.authSvc.VerifyGoogleToken(ctx, idToken)
}

// Health returns the store liveness summary.
func (c *Client) Health(ctx context.Context) healthuc.Report {
	return c.healthSvc.Check(ctx)
}

// Close releases the store connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.store.Close(ctx); err != nil {
		return fmt.Errorf("venturebridge: close store: %w", err)
	}
	return nil
}
