package chat

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/venturebridge/venturebridge/internal/db"
	"github.com/venturebridge/venturebridge/internal/domain"
)

// store is the consumer interface for message persistence (ISP).
type store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, f *db.Filter) ([]db.Record, error)
}

// Repo persists chat messages, append-only.
type Repo struct {
	store store
}

// New creates a chat repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Append inserts one message and returns the generated id.
func (r *Repo) Append(ctx context.Context, m *domain.Message) (string, error) {
	id, err := r.store.Insert(ctx, domain.KindMessage, m)
	if err != nil {
		return "", wrapStoreErr("append message", err)
	}
	return id, nil
}

// Conversation returns all messages between a and b in either direction, in
// storage order.
func (r *Repo) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	f := db.NewFilter().Or(
		db.NewFilter().Eq("sender_id", a).Eq("receiver_id", b),
		db.NewFilter().Eq("sender_id", b).Eq("receiver_id", a),
	)

	recs, err := r.store.Find(ctx, domain.KindMessage, f)
	if err != nil {
		return nil, wrapStoreErr("load conversation", err)
	}

	out := make([]domain.Message, 0, len(recs))
	for _, rec := range recs {
		var m domain.Message
		if err := bson.Unmarshal(rec.Data, &m); err != nil {
			return nil, fmt.Errorf("decode message %s: %w", rec.ID, err)
		}
		m.ID = rec.ID
		out = append(out, m)
	}
	return out, nil
}

func wrapStoreErr(op string, err error) error {
	if errors.Is(err, db.ErrUnavailable) {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
