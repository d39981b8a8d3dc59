package matching

import (
	"testing"

	"meetup_server/models"

	"github.com/stretchr/testify/require"
)

func TestScoreMatchBounds(t *testing.T) {
	t.Parallel()

	profiles := []models.UserProfile{
		{UserID: "a"},
		{UserID: "b", Status: "I wanna go hiking"},
		{UserID: "c", Interests: []string{"hiking", "art", "music"}},
		{UserID: "d", Status: "painting class tonight", Interests: []string{"art"}},
		{UserID: "e", Status: "coffee?"},
		{UserID: "f", Status: "something nobody else wants"},
	}

	for _, me := range profiles {
		for _, cand := range profiles {
			score := ScoreMatch(me, cand)
			require.GreaterOrEqual(t, score, 0.0, "score(%s,%s)", me.UserID, cand.UserID)
			require.LessOrEqual(t, score, 1.0, "score(%s,%s)", me.UserID, cand.UserID)
		}
	}
}

func TestScoreMatchCrossStatusInterest(t *testing.T) {
	t.Parallel()

	// A's status keyword "hiking" maps to interest id "hiking", which B
	// declares. Only A has a status, A has no interests, so the cross
	// bonus is the whole score.
	a := models.UserProfile{UserID: "a", Status: "I wanna go hiking"}
	b := models.UserProfile{UserID: "b", Interests: []string{"hiking"}}

	require.InDelta(t, 0.8, ScoreMatch(a, b), 1e-9)
	require.InDelta(t, 0.8, ScoreMatch(b, a), 1e-9)
}

func TestScoreMatchSharedCluster(t *testing.T) {
	t.Parallel()

	// Identical statuses in the same cluster, no interests: full status
	// similarity weighted at 0.6.
	a := models.UserProfile{UserID: "a", Status: "coffee"}
	b := models.UserProfile{UserID: "b", Status: "coffee"}

	require.InDelta(t, 0.6, ScoreMatch(a, b), 1e-9)
}

func TestScoreMatchSameClusterBeatsDisjoint(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "a", Status: "going for a hike"}
	sameCluster := models.UserProfile{UserID: "b", Status: "nature walk"}
	disjoint := models.UserProfile{UserID: "c", Status: "movie night"}

	require.Greater(t, ScoreMatch(me, sameCluster), ScoreMatch(me, disjoint))
}

func TestScoreMatchInterestOverlapRatio(t *testing.T) {
	t.Parallel()

	// No statuses: plain interest overlap, |intersection| / max size.
	a := models.UserProfile{UserID: "a", Interests: []string{"hiking", "art"}}
	b := models.UserProfile{UserID: "b", Interests: []string{"hiking"}}

	require.InDelta(t, 0.5, ScoreMatch(a, b), 1e-9)
}

func TestScoreMatchBaselineFloor(t *testing.T) {
	t.Parallel()

	// Two users with no status and no interests still score the floor, so
	// they can match as a last resort but rank below everyone else.
	a := models.UserProfile{UserID: "a"}
	b := models.UserProfile{UserID: "b"}

	require.InDelta(t, 0.05, ScoreMatch(a, b), 1e-9)
}

func TestScoreMatchEmptyIsNotWildcard(t *testing.T) {
	t.Parallel()

	// One side with a status, the other completely empty: no overlap of
	// any kind, so zero, not a wildcard match.
	a := models.UserProfile{UserID: "a", Status: "coffee"}
	b := models.UserProfile{UserID: "b"}

	require.Zero(t, ScoreMatch(a, b))

	// Whitespace-only status counts as no status.
	c := models.UserProfile{UserID: "c", Status: "   "}
	require.InDelta(t, 0.05, ScoreMatch(b, c), 1e-9)
}

func TestScoreMatchBothStatusDisjointNoOverlap(t *testing.T) {
	t.Parallel()

	a := models.UserProfile{UserID: "a", Status: "movie night"}
	b := models.UserProfile{UserID: "b", Status: "gym session"}

	require.Zero(t, ScoreMatch(a, b))
}
