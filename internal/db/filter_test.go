package db

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilter_Empty(t *testing.T) {
	if !NewFilter().Empty() {
		t.Error("fresh filter should be empty")
	}
	var nilFilter *Filter
	if !nilFilter.Empty() {
		t.Error("nil filter should be empty")
	}
	if got := nilFilter.Document(); len(got) != 0 {
		t.Errorf("nil filter document should be empty, got %v", got)
	}
}

func TestFilter_Conjunction(t *testing.T) {
	f := NewFilter().
		In("industry", "fintech").
		Eq("stage", "seed")

	want := bson.M{
		"industry": bson.M{"$in": []any{"fintech"}},
		"stage":    "seed",
	}
	if !reflect.DeepEqual(f.Document(), want) {
		t.Errorf("document mismatch:\ngot:  %v\nwant: %v", f.Document(), want)
	}
}

func TestFilter_MatchFold(t *testing.T) {
	f := NewFilter().MatchFold("name", "acme")

	re, ok := f.Document()["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex condition, got %T", f.Document()["name"])
	}
	if re.Pattern != "acme" || re.Options != "i" {
		t.Errorf("unexpected regex %q options %q", re.Pattern, re.Options)
	}
}

func TestFilter_Or(t *testing.T) {
	f := NewFilter().Or(
		NewFilter().Eq("sender_id", "a").Eq("receiver_id", "b"),
		NewFilter().Eq("sender_id", "b").Eq("receiver_id", "a"),
	)

	clauses, ok := f.Document()["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause list, got %T", f.Document()["$or"])
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0]["sender_id"] != "a" || clauses[1]["sender_id"] != "b" {
		t.Errorf("unexpected clauses: %v", clauses)
	}
}
