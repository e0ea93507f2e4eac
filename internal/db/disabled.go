package db

import "context"

// Compile-time check: Disabled implements Store.
var _ Store = (*Disabled)(nil)

// Disabled is the degraded-but-available store used when no database is
// configured. Inserts succeed with an empty identifier and queries return no
// records, so the API stays up while the diagnostic endpoint reports the
// missing configuration.
type Disabled struct{}

// NewDisabled creates a no-op store.
func NewDisabled() *Disabled { return &Disabled{} }

// Insert is a no-op returning an empty identifier.
func (*Disabled) Insert(context.Context, string, any) (string, error) {
	return "", nil
}

// Find returns no records.
func (*Disabled) Find(context.Context, string, *Filter) ([]Record, error) {
	return nil, nil
}

// FindByID reports the record missing.
func (*Disabled) FindByID(context.Context, string, string) (Record, error) {
	return Record{}, ErrNotFound
}

// Ping reports that no store is configured.
func (*Disabled) Ping(context.Context) error { return ErrNotConfigured }

// Name returns an empty store name.
func (*Disabled) Name() string { return "" }

// Collections returns no collection names.
func (*Disabled) Collections(context.Context) ([]string, error) {
	return nil, ErrNotConfigured
}

// Close is a no-op.
func (*Disabled) Close(context.Context) error { return nil }
