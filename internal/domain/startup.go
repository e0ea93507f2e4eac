package domain

// Startup is a startup profile document. The ID is assigned by the store on
// insert and never travels back into it.
type Startup struct {
	ID              string   `json:"id,omitempty" bson:"-"`
	Name            string   `json:"name" bson:"name"`
	Tagline         string   `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Website         string   `json:"website,omitempty" bson:"website,omitempty"`
	Industry        []string `json:"industry" bson:"industry"`
	Stage           Stage    `json:"stage" bson:"stage"`
	Geography       string   `json:"geography,omitempty" bson:"geography,omitempty"`
	Problem         string   `json:"problem,omitempty" bson:"problem,omitempty"`
	Solution        string   `json:"solution,omitempty" bson:"solution,omitempty"`
	Traction        string   `json:"traction,omitempty" bson:"traction,omitempty"`
	Team            string   `json:"team,omitempty" bson:"team,omitempty"`
	FundingNeedsMin *float64 `json:"funding_needs_min,omitempty" bson:"funding_needs_min,omitempty"`
	FundingNeedsMax *float64 `json:"funding_needs_max,omitempty" bson:"funding_needs_max,omitempty"`
	Valuation       *float64 `json:"valuation,omitempty" bson:"valuation,omitempty"`
	Revenue         *float64 `json:"revenue,omitempty" bson:"revenue,omitempty"`
	PitchDeckURL    string   `json:"pitch_deck_url,omitempty" bson:"pitch_deck_url,omitempty"`
	MediaURLs       []string `json:"media_urls,omitempty" bson:"media_urls,omitempty"`
	FounderName     string   `json:"founder_name,omitempty" bson:"founder_name,omitempty"`
	FounderEmail    string   `json:"founder_email,omitempty" bson:"founder_email,omitempty"`
	VerifiedFounder bool     `json:"verified_founder" bson:"verified_founder"`
}

// Normalize fills defaulted fields on a fresh payload.
func (s *Startup) Normalize() {
	if s.Stage == "" {
		s.Stage = StagePreSeed
	}
	if s.Industry == nil {
		s.Industry = []string{}
	}
}

// Validate checks field constraints and returns a *ValidationError listing
// every violation, or nil.
func (s *Startup) Validate() error {
	v := &ValidationError{}
	if s.Name == "" {
		v.Addf("name", "is required")
	}
	if !s.Stage.Valid() {
		v.Addf("stage", "must be one of idea, MVP, pre-seed, seed, series-a, series-b")
	}
	checkNonNegative(v, "funding_needs_min", s.FundingNeedsMin)
	checkNonNegative(v, "funding_needs_max", s.FundingNeedsMax)
	checkNonNegative(v, "valuation", s.Valuation)
	checkNonNegative(v, "revenue", s.Revenue)
	return v.OrNil()
}

// StartupQuery is the listing filter for startups. All conditions are
// conjunctive; zero values mean "no filter".
type StartupQuery struct {
	Industry string
	Stage    string
	Text     string // case-insensitive substring over name and tagline
}
