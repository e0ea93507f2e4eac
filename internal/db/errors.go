package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrUnavailable   = errors.New("db: store unavailable")
	ErrNotConfigured = errors.New("db: store not configured")
	ErrInvalidID     = errors.New("db: invalid identifier")
	ErrNotFound      = errors.New("db: record not found")
)

// Op constants map to MongoDB command names for error context.
const (
	OpInsert          = "insertOne"
	OpFind            = "find"
	OpFindOne         = "findOne"
	OpPing            = "ping"
	OpListCollections = "listCollectionNames"
)

// Error wraps an underlying error with the operation and collection name.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Collection + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
