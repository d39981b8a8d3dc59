package matching

import (
	"testing"

	"meetup_server/models"

	"github.com/stretchr/testify/require"
)

func TestFindBestMatchesExcludesSelf(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "coffee"}
	candidates := []models.UserProfile{
		{UserID: "me", Status: "coffee"},
		{UserID: "other", Status: "coffee"},
	}

	best := FindBestMatches(me, candidates, 4)
	require.Len(t, best, 1)
	require.Equal(t, "other", best[0].UserID)
}

func TestFindBestMatchesDropsZeroScores(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "coffee"}
	candidates := []models.UserProfile{
		{UserID: "a", Status: "movie night"}, // disjoint cluster, no interests
		{UserID: "b", Status: "cafe time"},
	}

	best := FindBestMatches(me, candidates, 4)
	require.Len(t, best, 1)
	require.Equal(t, "b", best[0].UserID)
}

func TestFindBestMatchesCapsAtMaxCount(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "coffee"}
	var candidates []models.UserProfile
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		candidates = append(candidates, models.UserProfile{UserID: id, Status: "coffee"})
	}

	best := FindBestMatches(me, candidates, 4)
	require.Len(t, best, 4)
}

func TestFindBestMatchesOrdering(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "going hiking", Interests: []string{"hiking"}}
	candidates := []models.UserProfile{
		{UserID: "weak", Interests: []string{"hiking", "music", "movies"}}, // cross bonus 0.8
		{UserID: "strong", Status: "nature walk", Interests: []string{"hiking"}},
	}

	best := FindBestMatches(me, candidates, 4)
	require.Len(t, best, 2)
	require.Equal(t, "strong", best[0].UserID)
	require.Equal(t, "weak", best[1].UserID)

	// Scores come out non-increasing.
	for i := 1; i < len(best); i++ {
		require.GreaterOrEqual(t, ScoreMatch(me, best[i-1]), ScoreMatch(me, best[i]))
	}
}

func TestFindBestMatchesStableTieOrder(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "coffee"}
	candidates := []models.UserProfile{
		{UserID: "first", Status: "coffee"},
		{UserID: "second", Status: "coffee"},
		{UserID: "third", Status: "coffee"},
	}

	// Equal scores keep input order, on every call.
	for i := 0; i < 5; i++ {
		best := FindBestMatches(me, candidates, 4)
		require.Len(t, best, 3)
		require.Equal(t, "first", best[0].UserID)
		require.Equal(t, "second", best[1].UserID)
		require.Equal(t, "third", best[2].UserID)
	}
}

func TestFindBestMatchesBaselineProfilesStillMatch(t *testing.T) {
	t.Parallel()

	// Completely empty profiles score the 0.05 floor, so they are
	// returned rather than filtered out.
	me := models.UserProfile{UserID: "me"}
	candidates := []models.UserProfile{{UserID: "other"}}

	best := FindBestMatches(me, candidates, 4)
	require.Len(t, best, 1)
}

func TestFindBestMatchesNoCandidates(t *testing.T) {
	t.Parallel()

	me := models.UserProfile{UserID: "me", Status: "coffee"}
	require.Empty(t, FindBestMatches(me, nil, 4))
	require.Empty(t, FindBestMatches(me, []models.UserProfile{{UserID: "a", Status: "coffee"}}, 0))
}
