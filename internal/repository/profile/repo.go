package profile

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/venturebridge/venturebridge/internal/db"
	"github.com/venturebridge/venturebridge/internal/domain"
)

// store is the consumer interface for profile persistence (ISP).
type store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, f *db.Filter) ([]db.Record, error)
	FindByID(ctx context.Context, collection, id string) (db.Record, error)
}

// Repo persists startup and investor profiles.
type Repo struct {
	store store
}

// New creates a profile repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// CreateStartup inserts a startup profile and returns the generated id.
func (r *Repo) CreateStartup(ctx context.Context, s *domain.Startup) (string, error) {
	id, err := r.store.Insert(ctx, domain.KindStartup, s)
	if err != nil {
		return "", wrapStoreErr("insert startup", err)
	}
	return id, nil
}

// ListStartups returns startups matching the conjunctive query.
func (r *Repo) ListStartups(ctx context.Context, q domain.StartupQuery) ([]domain.Startup, error) {
	f := db.NewFilter()
	if q.Industry != "" {
		f.In("industry", q.Industry)
	}
	if q.Stage != "" {
		f.Eq("stage", q.Stage)
	}
	if q.Text != "" {
		f.Or(
			db.NewFilter().MatchFold("name", q.Text),
			db.NewFilter().MatchFold("tagline", q.Text),
		)
	}

	recs, err := r.store.Find(ctx, domain.KindStartup, f)
	if err != nil {
		return nil, wrapStoreErr("list startups", err)
	}

	out := make([]domain.Startup, 0, len(recs))
	for _, rec := range recs {
		s, err := decodeStartup(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GetStartup returns one startup by id.
func (r *Repo) GetStartup(ctx context.Context, id string) (domain.Startup, error) {
	rec, err := r.store.FindByID(ctx, domain.KindStartup, id)
	if err != nil {
		return domain.Startup{}, wrapStoreErr("get startup", err)
	}
	return decodeStartup(rec)
}

// CreateInvestor inserts an investor profile and returns the generated id.
func (r *Repo) CreateInvestor(ctx context.Context, inv *domain.Investor) (string, error) {
	id, err := r.store.Insert(ctx, domain.KindInvestor, inv)
	if err != nil {
		return "", wrapStoreErr("insert investor", err)
	}
	return id, nil
}

// ListInvestors returns investors matching the conjunctive query.
func (r *Repo) ListInvestors(ctx context.Context, q domain.InvestorQuery) ([]domain.Investor, error) {
	f := db.NewFilter()
	if q.Domain != "" {
		f.In("domains", q.Domain)
	}
	if q.Stage != "" {
		f.In("preferred_stage", q.Stage)
	}
	if q.Geography != "" {
		f.Eq("geography", q.Geography)
	}

	recs, err := r.store.Find(ctx, domain.KindInvestor, f)
	if err != nil {
		return nil, wrapStoreErr("list investors", err)
	}

	out := make([]domain.Investor, 0, len(recs))
	for _, rec := range recs {
		inv, err := decodeInvestor(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

// GetInvestor returns one investor by id.
func (r *Repo) GetInvestor(ctx context.Context, id string) (domain.Investor, error) {
	rec, err := r.store.FindByID(ctx, domain.KindInvestor, id)
	if err != nil {
		return domain.Investor{}, wrapStoreErr("get investor", err)
	}
	return decodeInvestor(rec)
}

func decodeStartup(rec db.Record) (domain.Startup, error) {
	var s domain.Startup
	if err := bson.Unmarshal(rec.Data, &s); err != nil {
		return domain.Startup{}, fmt.Errorf("decode startup %s: %w", rec.ID, err)
	}
	s.ID = rec.ID
	return s, nil
}

func decodeInvestor(rec db.Record) (domain.Investor, error) {
	var inv domain.Investor
	if err := bson.Unmarshal(rec.Data, &inv); err != nil {
		return domain.Investor{}, fmt.Errorf("decode investor %s: %w", rec.ID, err)
	}
	inv.ID = rec.ID
	return inv, nil
}

// wrapStoreErr maps store sentinels onto domain sentinels, keeping the
// operational error text for logs.
func wrapStoreErr(op string, err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, db.ErrInvalidID):
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidID)
	case errors.Is(err, db.ErrUnavailable):
		return fmt.Errorf("%s: %w: %s", op, domain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
