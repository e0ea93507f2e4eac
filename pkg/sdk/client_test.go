package venturebridge

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/db"
	"github.com/venturebridge/venturebridge/internal/domain"
)

func newDegradedClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = client.Close(context.Background()) })
	return client
}

func TestNew_NoURIRunsDegraded(t *testing.T) {
	client := newDegradedClient(t)

	if _, ok := client.store.(*db.Disabled); !ok {
		t.Fatalf("store = %T, want *db.Disabled", client.store)
	}

	report := client.Health(context.Background())
	if report.Database != "not configured" {
		t.Errorf("database = %q, want not configured", report.Database)
	}
}

func TestDegradedClient_WritesDropReadsEmpty(t *testing.T) {
	client := newDegradedClient(t)
	ctx := context.Background()

	id, err := client.CreateStartup(ctx, &domain.Startup{Name: "Acme"})
	if err != nil {
		t.Fatalf("CreateStartup: %v", err)
	}
	if id != "" {
		t.Errorf("degraded insert returned id %q", id)
	}

	startups, err := client.ListStartups(ctx, domain.StartupQuery{})
	if err != nil {
		t.Fatalf("ListStartups: %v", err)
	}
	if len(startups) != 0 {
		t.Errorf("startups = %+v, want none", startups)
	}

	if _, err := client.GetStartup(ctx, "64f1a2b3c4d5e6f7a8b9c0d1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetStartup err = %v, want ErrNotFound", err)
	}
}

func TestDegradedClient_ValidationStillApplies(t *testing.T) {
	client := newDegradedClient(t)

	if _, err := client.CreateStartup(context.Background(), &domain.Startup{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDegradedClient_MatchIsEmpty(t *testing.T) {
	client := newDegradedClient(t)

	matches, err := client.Match(context.Background(), &domain.MatchPreference{
		Industry: []string{"fintech"},
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %+v, want none", matches)
	}
}

func TestWireClient_SubstitutableServices(t *testing.T) {
	client := wireClient(db.NewDisabled(), false, &clientConfig{}, zap.NewNop())

	client.profileSvc = &stubProfiles{id: "s1"}
	id, err := client.CreateStartup(context.Background(), &domain.Startup{Name: "Acme"})
	if err != nil {
		t.Fatalf("CreateStartup: %v", err)
	}
	if id != "s1" {
		t.Errorf("id = %q, want s1", id)
	}
}

type stubProfiles struct {
	id string
}

func (s *stubProfiles) CreateStartup(context.Context, *domain.Startup) (string, error) {
	return s.id, nil
}

func (s *stubProfiles) ListStartups(context.Context, domain.StartupQuery) ([]domain.Startup, error) {
	return nil, nil
}

func (s *stubProfiles) GetStartup(context.Context, string) (domain.Startup, error) {
	return domain.Startup{}, nil
}

func (s *stubProfiles) CreateInvestor(context.Context, *domain.Investor) (string, error) {
	return s.id, nil
}

func (s *stubProfiles) ListInvestors(context.Context, domain.InvestorQuery) ([]domain.Investor, error) {
	return nil, nil
}

func (s *stubProfiles) GetInvestor(context.Context, string) (domain.Investor, error) {
	return domain.Investor{}, nil
}
