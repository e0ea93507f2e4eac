package matching

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Rationale is attached to every surviving match candidate.
const Rationale = "Heuristic overlap on filters"

// Scoring weights. Each signal is independent; the sum is clamped to [0,1].
const (
	industryWeight = 0.1
	industryCap    = 0.4
	stageWeight    = 0.2
	geoWeight      = 0.1
	floorWeight    = 0.15
	ceilingWeight  = 0.15

	scoreThreshold = 0.2
	maxCandidates  = 50
)

// Service scores the full startup × investor cross-product against one
// preference filter. The preference's owning-entity id is accepted but
// ignored: the contract is the full cross-product.
type Service struct {
	startups  StartupSource
	investors InvestorSource

	pairsScored prometheus.Counter
	candidates  prometheus.Observer
}

// New creates a matching service.
func New(startups StartupSource, investors InvestorSource) *Service {
	return &Service{startups: startups, investors: investors}
}

// WithMetrics wires matchmaking counters. Either may be nil.
func (s *Service) WithMetrics(pairsScored prometheus.Counter, candidates prometheus.Observer) *Service {
	s.pairsScored = pairsScored
	s.candidates = candidates
	return s
}

// Match returns up to 50 candidates scoring at least 0.2, sorted by
// descending score, stable in cross-product enumeration order on ties.
// Empty input sets produce an empty result, not an error.
func (s *Service) Match(ctx context.Context, pref *domain.MatchPreference) ([]domain.Match, error) {
	startups, err := s.startups.ListStartups(ctx, domain.StartupQuery{})
	if err != nil {
		return nil, fmt.Errorf("load startups: %w", err)
	}
	investors, err := s.investors.ListInvestors(ctx, domain.InvestorQuery{})
	if err != nil {
		return nil, fmt.Errorf("load investors: %w", err)
	}

	matches := make([]domain.Match, 0)
	for _, st := range startups {
		for _, inv := range investors {
			sc := Score(&st, &inv, pref)
			if sc < scoreThreshold {
				continue
			}
			matches = append(matches, domain.Match{
				AID:       st.ID,
				AType:     domain.UserTypeStartup,
				BID:       inv.ID,
				BType:     domain.UserTypeInvestor,
				Score:     round2(sc),
				Rationale: Rationale,
			})
		}
	}

	if s.pairsScored != nil {
		s.pairsScored.Add(float64(len(startups) * len(investors)))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxCandidates {
		matches = matches[:maxCandidates]
	}

	if s.candidates != nil {
		s.candidates.Observe(float64(len(matches)))
	}
	return matches, nil
}

// Score computes the additive compatibility of one pair, clamped to [0,1].
// The investor ticket range is compared against the preference's range, not
// the startup's funding needs.
func Score(st *domain.Startup, inv *domain.Investor, pref *domain.MatchPreference) float64 {
	var sc float64

	if len(pref.Industry) > 0 {
		overlap := intersectCount(st.Industry, pref.Industry)
		sc += math.Min(industryCap, industryWeight*float64(overlap))
	}
	if pref.Stage != "" && pref.Stage == st.Stage {
		sc += stageWeight
	}
	if pref.Geography != "" && pref.Geography == inv.Geography {
		sc += geoWeight
	}
	if pref.TicketMin != nil && inv.TicketMin != nil && *inv.TicketMin <= *pref.TicketMin {
		sc += floorWeight
	}
	if pref.TicketMax != nil && inv.TicketMax != nil && *inv.TicketMax >= *pref.TicketMax {
		sc += ceilingWeight
	}

	return math.Max(0, math.Min(1, sc))
}

func intersectCount(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
