package db

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter builds a store query expression. Conditions added to one Filter are
// conjunctive; Or attaches a disjunction of sub-filters. The zero filter
// matches the full collection.
type Filter struct {
	doc bson.M
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return &Filter{doc: bson.M{}}
}

// Eq adds an equality condition.
func (f *Filter) Eq(field string, value any) *Filter {
	f.doc[field] = value
	return f
}

// In adds a set-membership condition: the stored field (scalar or array)
// must contain one of the given values.
func (f *Filter) In(field string, values ...any) *Filter {
	f.doc[field] = bson.M{"$in": values}
	return f
}

// MatchFold adds a case-insensitive regex condition. The pattern is passed to
// the store verbatim, so a plain string means substring match.
func (f *Filter) MatchFold(field, pattern string) *Filter {
	f.doc[field] = primitive.Regex{Pattern: pattern, Options: "i"}
	return f
}

// Or attaches a disjunction of sub-filters, combined conjunctively with any
// other conditions on f.
func (f *Filter) Or(subs ...*Filter) *Filter {
	clauses := make([]bson.M, len(subs))
	for i, sub := range subs {
		clauses[i] = sub.Document()
	}
	f.doc["$or"] = clauses
	return f
}

// Empty reports whether the filter has no conditions.
func (f *Filter) Empty() bool {
	return f == nil || len(f.doc) == 0
}

// Document returns the filter as a store query document. Safe on nil.
func (f *Filter) Document() bson.M {
	if f == nil || f.doc == nil {
		return bson.M{}
	}
	return f.doc
}
