package profile

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venturebridge/venturebridge/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	insertFn   func(ctx context.Context, collection string, doc any) (string, error)
	findFn     func(ctx context.Context, collection string, f *db.Filter) ([]db.Record, error)
	findByIDFn func(ctx context.Context, collection, id string) (db.Record, error)
}

func (m *mockStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, collection, doc)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockStore) Find(ctx context.Context, collection string, f *db.Filter) ([]db.Record, error) {
	if m.findFn != nil {
		return m.findFn(ctx, collection, f)
	}
	return nil, nil
}

func (m *mockStore) FindByID(ctx context.Context, collection, id string) (db.Record, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, collection, id)
	}
	return db.Record{}, db.ErrNotFound
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

// rawRecord marshals a document map into a db.Record the way the store would
// return it.
func rawRecord(t *testing.T, id string, doc bson.M) db.Record {
	t.Helper()
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	return db.Record{ID: id, Data: data}
}
