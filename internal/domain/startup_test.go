package domain

import (
	"errors"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestStartupNormalize_Defaults(t *testing.T) {
	s := Startup{Name: "Acme"}
	s.Normalize()

	if s.Stage != StagePreSeed {
		t.Errorf("expected default stage %q, got %q", StagePreSeed, s.Stage)
	}
	if s.Industry == nil {
		t.Error("expected industry to default to empty slice")
	}
}

func TestStartupValidate_Valid(t *testing.T) {
	s := Startup{
		Name:            "Acme",
		Industry:        []string{"fintech", "ai"},
		Stage:           StageSeed,
		FundingNeedsMin: f64(100000),
		FundingNeedsMax: f64(500000),
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStartupValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		startup Startup
		field   string
	}{
		{"missing name", Startup{Stage: StageSeed}, "name"},
		{"unknown stage", Startup{Name: "Acme", Stage: "unicorn"}, "stage"},
		{"negative funding min", Startup{Name: "Acme", Stage: StageSeed, FundingNeedsMin: f64(-1)}, "funding_needs_min"},
		{"negative valuation", Startup{Name: "Acme", Stage: StageSeed, Valuation: f64(-100)}, "valuation"},
		{"negative revenue", Startup{Name: "Acme", Stage: StageSeed, Revenue: f64(-0.5)}, "revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.startup.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			found := false
			for _, fe := range verr.Fields {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a field error for %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestStartupValidate_CollectsAllViolations(t *testing.T) {
	s := Startup{Stage: "bogus", Revenue: f64(-1)}

	var verr *ValidationError
	if err := s.Validate(); !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("expected 3 field errors (name, stage, revenue), got %d: %v", len(verr.Fields), verr.Fields)
	}
}
