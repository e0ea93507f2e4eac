package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// DefaultTokenInfoURL is Google's token introspection endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

const defaultTimeout = 10 * time.Second

// recorder is the activity log sink consumed by this service.
type recorder interface {
	Record(ctx context.Context, entry *domain.ActivityLog) error
}

// Config carries the Google sign-in settings.
type Config struct {
	// TokenInfoURL is the introspection endpoint. Empty means Google's.
	TokenInfoURL string
	// Audience is the OAuth client id tokens must be issued for. Empty
	// disables the audience check.
	Audience string
	// Timeout bounds the introspection round trip.
	Timeout time.Duration
}

// Service verifies Google identity tokens by relaying them to the tokeninfo
// endpoint. No sessions are issued; the caller gets the verified profile back.
type Service struct {
	cfg      Config
	client   *http.Client
	activity recorder
	logger   *zap.Logger
}

// New creates an auth service from cfg, applying defaults for unset fields.
func New(cfg Config) *Service {
	if cfg.TokenInfoURL == "" {
		cfg.TokenInfoURL = DefaultTokenInfoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: zap.NewNop(),
	}
}

// WithActivityLog attaches a sink for sign-in events. Writes are best-effort.
func (s *Service) WithActivityLog(r recorder) *Service {
	s.activity = r
	return s
}

// WithLogger attaches a logger.
func (s *Service) WithLogger(logger *zap.Logger) *Service {
	s.logger = logger
	return s
}

// tokenInfo is the introspection response. Google returns every claim as a
// string, booleans included.
type tokenInfo struct {
	Sub           string `json:"sub"`
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// VerifyGoogleToken introspects idToken and returns the verified profile.
// Any introspection failure, including an audience mismatch, surfaces as
// domain.ErrAuthFailed.
func (s *Service) VerifyGoogleToken(ctx context.Context, idToken string) (domain.GoogleProfile, error) {
	if idToken == "" {
		return domain.GoogleProfile{}, fmt.Errorf("%w: empty token", domain.ErrAuthFailed)
	}

	endpoint := s.cfg.TokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.GoogleProfile{}, fmt.Errorf("%w: build introspection request: %v", domain.ErrAuthFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.GoogleProfile{}, fmt.Errorf("%w: tokeninfo unreachable: %v", domain.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.GoogleProfile{}, fmt.Errorf("%w: tokeninfo returned %d", domain.ErrAuthFailed, resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.GoogleProfile{}, fmt.Errorf("%w: decode tokeninfo response: %v", domain.ErrAuthFailed, err)
	}

	if s.cfg.Audience != "" && info.Aud != s.cfg.Audience {
		return domain.GoogleProfile{}, fmt.Errorf("%w: token issued for another client", domain.ErrAuthFailed)
	}

	profile := domain.GoogleProfile{
		Sub:           info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified == "true",
		Name:          info.Name,
		Picture:       info.Picture,
		GivenName:     info.GivenName,
		FamilyName:    info.FamilyName,
	}

	s.recordSignIn(ctx, profile)
	return profile, nil
}

// recordSignIn logs the sign-in to the activity collection. Failures never
// affect the auth result.
func (s *Service) recordSignIn(ctx context.Context, p domain.GoogleProfile) {
	if s.activity == nil {
		return
	}
	userID := p.Sub
	if userID == "" {
		userID = "unknown"
	}
	entry := &domain.ActivityLog{
		UserID:   userID,
		UserType: domain.UserTypeStartup,
		Action:   "google_sign_in",
		Meta:     map[string]any{"email": p.Email},
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		s.logger.Warn("activity log write failed",
			zap.String("action", "google_sign_in"),
			zap.Error(err))
	}
}
