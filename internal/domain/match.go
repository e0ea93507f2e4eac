package domain

// MatchPreference is the transient matchmaking input. EntityID scopes matches
// to one owning profile in the schema, but the matchmaking endpoint scores the
// full cross-product and ignores it; the field is kept for wire compatibility.
type MatchPreference struct {
	UserType  UserType `json:"user_type,omitempty"`
	EntityID  string   `json:"id,omitempty"`
	Industry  []string `json:"industry,omitempty"`
	Stage     Stage    `json:"stage,omitempty"`
	Geography string   `json:"geography,omitempty"`
	TicketMin *float64 `json:"ticket_min,omitempty"`
	TicketMax *float64 `json:"ticket_max,omitempty"`
}

// Match is one scored startup/investor pairing. Computed per request, never
// persisted.
type Match struct {
	AID       string   `json:"a_id"`
	AType     UserType `json:"a_type"`
	BID       string   `json:"b_id"`
	BType     UserType `json:"b_type"`
	Score     float64  `json:"score"`
	Rationale string   `json:"rationale,omitempty"`
}

// GoogleProfile is the fixed set of claims extracted from a verified identity
// token.
type GoogleProfile struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}
