// Package reconcile joins the canonical fixture catalog against the per-user
// tracking records to find tracked fixtures whose enrichment data
// (statistics, lineups, events) has not been fetched yet.
//
// The resolver issues three independent reads with no transactional
// isolation: tracked ids, then count and page in parallel, then the username
// annotation. A tracking record inserted between reads may or may not appear
// in the username annotation of the same response; that staleness is
// acceptable and does not affect the filter or the total.
package reconcile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/megagoal/megagoal-data/internal/match"
)

// PageSize is the fixed page size of ResolveIncomplete.
const PageSize = 50

// FixtureSource is the read surface the resolver needs from the fixture
// catalog.
type FixtureSource interface {
	IncompleteCount(ctx context.Context, fixtureIDs []int) (int, error)
	IncompletePage(ctx context.Context, fixtureIDs []int, limit, offset int) ([]match.RealMatch, error)
}

// TrackingSource is the read surface the resolver needs from the tracking
// records.
type TrackingSource interface {
	TrackedFixtureIDs(ctx context.Context) ([]int, error)
	UsernamesByFixture(ctx context.Context, fixtureIDs []int) (map[int][]string, error)
}

// Resolver correlates the two stores.
type Resolver struct {
	fixtures FixtureSource
	tracking TrackingSource
}

// NewResolver creates a completeness resolver over the two stores.
func NewResolver(fixtures FixtureSource, tracking TrackingSource) *Resolver {
	return &Resolver{fixtures: fixtures, tracking: tracking}
}

// IncompletePage is one page of tracked, under-enriched fixtures.
type IncompletePage struct {
	Matches    []match.RealMatch `json:"matches"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// ResolveIncomplete returns the page-th page (1-based, normalized up from
// smaller values) of tracked fixtures missing all three enrichment arrays,
// ordered by kickoff descending, each annotated with the usernames tracking
// it. The total counts fixtures, not trackers: five users tracking one
// fixture contribute one to the total. A page beyond the last returns empty
// matches with the correct totals. Any store failure is returned as-is;
// partial pages are never returned.
func (r *Resolver) ResolveIncomplete(ctx context.Context, page int) (*IncompletePage, error) {
	if page < 1 {
		page = 1
	}

	// Tracked ids first: with no tracking records there is nothing to
	// reconcile and the catalog is never queried.
	ids, err := r.tracking.TrackedFixtureIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve incomplete: %w", err)
	}
	if len(ids) == 0 {
		return &IncompletePage{Matches: []match.RealMatch{}, Page: page}, nil
	}

	// Count and page are independent reads over the same filter.
	var (
		total   int
		matches []match.RealMatch
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = r.fixtures.IncompleteCount(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = r.fixtures.IncompletePage(gctx, ids, PageSize, (page-1)*PageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve incomplete: %w", err)
	}

	// Username annotation is display-only: it must not change which
	// fixtures qualify or how many there are.
	if len(matches) > 0 {
		pageIDs := make([]int, len(matches))
		for i := range matches {
			pageIDs[i] = matches[i].Fixture.ID
		}
		usernames, err := r.tracking.UsernamesByFixture(ctx, pageIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve incomplete: %w", err)
		}
		for i := range matches {
			matches[i].Usernames = usernames[matches[i].Fixture.ID]
		}
	}

	if matches == nil {
		matches = []match.RealMatch{}
	}
	return &IncompletePage{
		Matches:    matches,
		Total:      total,
		Page:       page,
		TotalPages: (total + PageSize - 1) / PageSize,
	}, nil
}
