package matching

import (
	"strings"
	"testing"

	"meetup_server/models"

	"github.com/stretchr/testify/require"
)

func TestGroupNameForMatch(t *testing.T) {
	t.Parallel()

	t.Run("hiking family", func(t *testing.T) {
		profile := models.UserProfile{Status: "going for a HIKE"}
		require.Equal(t, "Hiking Group", GroupNameForMatch(profile))
	})

	t.Run("art family", func(t *testing.T) {
		profile := models.UserProfile{Status: "art class today"}
		require.Equal(t, "Art & Painting Group", GroupNameForMatch(profile))
	})

	t.Run("generic status kept as-is when short", func(t *testing.T) {
		profile := models.UserProfile{Status: "Quiz Night"}
		require.Equal(t, "Quiz Night", GroupNameForMatch(profile))
	})

	t.Run("long generic status truncated with ellipsis", func(t *testing.T) {
		status := strings.Repeat("x", 45)
		profile := models.UserProfile{Status: status}

		name := GroupNameForMatch(profile)
		require.Equal(t, status[:30]+"…", name)
	})

	t.Run("truncation preserves original casing", func(t *testing.T) {
		profile := models.UserProfile{Status: "Board Games And Snacks At My Place Tonight"}
		require.Equal(t, "Board Games And Snacks At My P…", GroupNameForMatch(profile))
	})

	t.Run("empty status falls back to Meetup", func(t *testing.T) {
		require.Equal(t, "Meetup", GroupNameForMatch(models.UserProfile{}))
		require.Equal(t, "Meetup", GroupNameForMatch(models.UserProfile{Status: "   "}))
	})
}
