package domain

// Investor is an investor or fund profile document.
type Investor struct {
	ID                  string   `json:"id,omitempty" bson:"-"`
	Name                string   `json:"name" bson:"name"`
	Email               string   `json:"email,omitempty" bson:"email,omitempty"`
	Thesis              string   `json:"thesis,omitempty" bson:"thesis,omitempty"`
	Domains             []string `json:"domains" bson:"domains"`
	PreferredStage      []Stage  `json:"preferred_stage" bson:"preferred_stage"`
	Geography           string   `json:"geography,omitempty" bson:"geography,omitempty"`
	TicketMin           *float64 `json:"ticket_min,omitempty" bson:"ticket_min,omitempty"`
	TicketMax           *float64 `json:"ticket_max,omitempty" bson:"ticket_max,omitempty"`
	PortfolioHighlights string   `json:"portfolio_highlights,omitempty" bson:"portfolio_highlights,omitempty"`
	Exits               string   `json:"exits,omitempty" bson:"exits,omitempty"`
	VerifiedInvestor    bool     `json:"verified_investor" bson:"verified_investor"`
}

// Normalize fills defaulted fields on a fresh payload.
func (i *Investor) Normalize() {
	if i.PreferredStage == nil {
		i.PreferredStage = []Stage{StagePreSeed, StageSeed}
	}
	if i.Domains == nil {
		i.Domains = []string{}
	}
}

// Validate checks field constraints and returns a *ValidationError listing
// every violation, or nil.
func (i *Investor) Validate() error {
	v := &ValidationError{}
	if i.Name == "" {
		v.Addf("name", "is required")
	}
	for _, st := range i.PreferredStage {
		if !st.Valid() {
			v.Addf("preferred_stage", "contains unknown stage %q", st)
		}
	}
	checkNonNegative(v, "ticket_min", i.TicketMin)
	checkNonNegative(v, "ticket_max", i.TicketMax)
	return v.OrNil()
}

// InvestorQuery is the listing filter for investors, conjunctive.
type InvestorQuery struct {
	Domain    string
	Stage     string
	Geography string
}
