package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/venturebridge/venturebridge/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a MongoDB store.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store implements db.Store via the official MongoDB driver.
type Store struct {
	client *mongo.Client
	dbase  *mongo.Database
}

// NewStore creates a MongoDB store. Connectivity is verified separately via
// WaitForReady.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts = opts.SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, dbase: client.Database(cfg.Database)}, nil
}

// Insert writes one document and returns the generated ObjectID as hex.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.dbase.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", opErr(db.OpInsert, collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", opErr(db.OpInsert, collection, fmt.Errorf("unexpected id type %T", res.InsertedID))
	}
	return oid.Hex(), nil
}

// Find returns all documents matching the filter in storage order.
func (s *Store) Find(ctx context.Context, collection string, f *db.Filter) ([]db.Record, error) {
	cur, err := s.dbase.Collection(collection).Find(ctx, f.Document())
	if err != nil {
		return nil, opErr(db.OpFind, collection, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var records []db.Record
	for cur.Next(ctx) {
		var raw bson.Raw
		if err := cur.Decode(&raw); err != nil {
			return nil, opErr(db.OpFind, collection, err)
		}
		records = append(records, toRecord(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, opErr(db.OpFind, collection, err)
	}
	return records, nil
}

// FindByID returns one document by its hex ObjectID.
func (s *Store) FindByID(ctx context.Context, collection, id string) (db.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return db.Record{}, fmt.Errorf("%w: %q", db.ErrInvalidID, id)
	}

	var raw bson.Raw
	err = s.dbase.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.Record{}, db.ErrNotFound
	}
	if err != nil {
		return db.Record{}, opErr(db.OpFindOne, collection, err)
	}
	return toRecord(raw), nil
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return opErr(db.OpPing, "", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or the timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Name returns the database name.
func (s *Store) Name() string { return s.dbase.Name() }

// Collections lists collection names in the database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.dbase.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, opErr(db.OpListCollections, "", err)
	}
	return names, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}

func toRecord(raw bson.Raw) db.Record {
	rec := db.Record{Data: raw}
	if oid, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		rec.ID = oid.Hex()
	}
	return rec
}

// opErr classifies any driver failure as a store availability problem. The
// underlying error text is preserved for logs; transport truncates it before
// it reaches a client.
func opErr(op, collection string, err error) error {
	return &db.Error{Op: op, Collection: collection, Err: fmt.Errorf("%w: %v", db.ErrUnavailable, err)}
}
