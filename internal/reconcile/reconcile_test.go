package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/megagoal/megagoal-data/internal/match"
)

// fakeFixtures is an in-memory FixtureSource.
type fakeFixtures struct {
	total      int
	pages      map[int][]match.RealMatch // offset -> page content
	countErr   error
	pageErr    error
	countCalls int
	pageCalls  int
	gotIDs     []int
}

func (f *fakeFixtures) IncompleteCount(ctx context.Context, fixtureIDs []int) (int, error) {
	f.countCalls++
	f.gotIDs = fixtureIDs
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeFixtures) IncompletePage(ctx context.Context, fixtureIDs []int, limit, offset int) ([]match.RealMatch, error) {
	f.pageCalls++
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.pages[offset], nil
}

// fakeTracking is an in-memory TrackingSource.
type fakeTracking struct {
	ids       []int
	usernames map[int][]string
	idsErr    error
	namesErr  error
}

func (f *fakeTracking) TrackedFixtureIDs(ctx context.Context) ([]int, error) {
	if f.idsErr != nil {
		return nil, f.idsErr
	}
	return f.ids, nil
}

func (f *fakeTracking) UsernamesByFixture(ctx context.Context, fixtureIDs []int) (map[int][]string, error) {
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	out := make(map[int][]string, len(fixtureIDs))
	for _, id := range fixtureIDs {
		if names, ok := f.usernames[id]; ok {
			out[id] = names
		}
	}
	return out, nil
}

func incompleteFixture(id int) match.RealMatch {
	return match.RealMatch{
		Fixture: match.Fixture{ID: id, Status: match.Status{Short: match.StatusFullTime}},
	}
}

func TestResolveIncompleteEmptyTracking(t *testing.T) {
	fixtures := &fakeFixtures{total: 99}
	r := NewResolver(fixtures, &fakeTracking{})

	result, err := r.ResolveIncomplete(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, result.Matches)
	require.Empty(t, result.Matches)
	require.Equal(t, 0, result.Total)
	require.Equal(t, 0, result.TotalPages)

	// With no tracking records the catalog is never queried.
	require.Zero(t, fixtures.countCalls)
	require.Zero(t, fixtures.pageCalls)
}

func TestResolveIncompleteAnnotatesUsernames(t *testing.T) {
	fixtures := &fakeFixtures{
		total: 2,
		pages: map[int][]match.RealMatch{
			0: {incompleteFixture(10), incompleteFixture(20)},
		},
	}
	tracking := &fakeTracking{
		ids: []int{10, 20, 30},
		usernames: map[int][]string{
			10: {"alice", "bob"},
			20: {"carol"},
		},
	}
	r := NewResolver(fixtures, tracking)

	result, err := r.ResolveIncomplete(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	require.Equal(t, []string{"alice", "bob"}, result.Matches[0].Usernames)
	require.Equal(t, []string{"carol"}, result.Matches[1].Usernames)
	require.Equal(t, 2, result.Total)
	require.Equal(t, 1, result.Page)
	require.Equal(t, 1, result.TotalPages)
	require.Equal(t, []int{10, 20, 30}, fixtures.gotIDs)
}

func TestResolveIncompleteTotalCountsFixturesNotTrackers(t *testing.T) {
	// Five users tracking the same fixture contribute one to the total.
	fixtures := &fakeFixtures{
		total: 1,
		pages: map[int][]match.RealMatch{0: {incompleteFixture(10)}},
	}
	tracking := &fakeTracking{
		ids: []int{10},
		usernames: map[int][]string{
			10: {"u1", "u2", "u3", "u4", "u5"},
		},
	}
	r := NewResolver(fixtures, tracking)

	result, err := r.ResolveIncomplete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Len(t, result.Matches, 1)
	require.Len(t, result.Matches[0].Usernames, 5)
}

func TestResolveIncompletePageNormalization(t *testing.T) {
	fixtures := &fakeFixtures{
		total: 1,
		pages: map[int][]match.RealMatch{0: {incompleteFixture(10)}},
	}
	tracking := &fakeTracking{ids: []int{10}}
	r := NewResolver(fixtures, tracking)

	for _, pageNum := range []int{0, -3} {
		result, err := r.ResolveIncomplete(context.Background(), pageNum)
		require.NoError(t, err)
		require.Equal(t, 1, result.Page)
		require.Len(t, result.Matches, 1)
	}
}

func TestResolveIncompleteBeyondLastPage(t *testing.T) {
	fixtures := &fakeFixtures{
		total: 40,
		pages: map[int][]match.RealMatch{0: {incompleteFixture(10)}},
	}
	tracking := &fakeTracking{ids: []int{10}}
	r := NewResolver(fixtures, tracking)

	result, err := r.ResolveIncomplete(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, result.Matches)
	require.Empty(t, result.Matches)
	require.Equal(t, 40, result.Total)
	require.Equal(t, 3, result.Page)
	require.Equal(t, 1, result.TotalPages)
}

func TestResolveIncompleteTotalPages(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 50, want: 1},
		{total: 51, want: 2},
		{total: 123, want: 3},
	}
	for _, tc := range cases {
		fixtures := &fakeFixtures{total: tc.total}
		tracking := &fakeTracking{ids: []int{1}}
		r := NewResolver(fixtures, tracking)

		result, err := r.ResolveIncomplete(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, tc.want, result.TotalPages, "total=%d", tc.total)
	}
}

func TestResolveIncompleteErrorPropagation(t *testing.T) {
	boom := errors.New("connection reset")

	cases := []struct {
		name     string
		fixtures *fakeFixtures
		tracking *fakeTracking
	}{
		{
			name:     "tracked ids",
			fixtures: &fakeFixtures{},
			tracking: &fakeTracking{idsErr: boom},
		},
		{
			name:     "count",
			fixtures: &fakeFixtures{countErr: boom},
			tracking: &fakeTracking{ids: []int{1}},
		},
		{
			name:     "page",
			fixtures: &fakeFixtures{pageErr: boom},
			tracking: &fakeTracking{ids: []int{1}},
		},
		{
			name: "usernames",
			fixtures: &fakeFixtures{
				total: 1,
				pages: map[int][]match.RealMatch{0: {incompleteFixture(10)}},
			},
			tracking: &fakeTracking{ids: []int{10}, namesErr: boom},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(tc.fixtures, tc.tracking)
			result, err := r.ResolveIncomplete(context.Background(), 1)
			require.ErrorIs(t, err, boom)
			require.Nil(t, result)
		})
	}
}
