package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document store facade. Consumers should depend on the narrow
// sub-interfaces they actually use.
type Store interface {
	Inserter
	Finder
	Pinger
	Describer
	Close(ctx context.Context) error
}

// Inserter writes a single document into a named collection and returns the
// generated identifier.
type Inserter interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Finder reads raw documents from a named collection. An empty filter returns
// the full collection in storage order; there is no pagination.
type Finder interface {
	Find(ctx context.Context, collection string, f *Filter) ([]Record, error)
	FindByID(ctx context.Context, collection, id string) (Record, error)
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Describer exposes store metadata for the diagnostic endpoint.
type Describer interface {
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

// Record is one raw document returned by a query, with the store-generated
// identifier extracted as a hex string.
type Record struct {
	ID   string
	Data bson.Raw
}
