package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordsForStatus(t *testing.T) {
	t.Parallel()

	require.Contains(t, KeywordsForStatus("fancy a nature walk?"), "hiking")
	require.Nil(t, KeywordsForStatus("zorbing"))
	require.Nil(t, KeywordsForStatus(""))

	// First matching cluster wins when a status spans several.
	require.Contains(t, KeywordsForStatus("walk then a run"), "stroll")
}

func TestBucketForStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hiking", BucketForStatus("I wanna go hiking"))
	require.Equal(t, "coffee", BucketForStatus("Coffee at 3?"))
	require.Equal(t, "art", BucketForStatus("pottery workshop"))
	require.Equal(t, "", BucketForStatus("zorbing"))
	require.Equal(t, "", BucketForStatus(" "))
}

func TestActivityKey(t *testing.T) {
	t.Parallel()

	t.Run("bucketed statuses share one key", func(t *testing.T) {
		require.Equal(t, ActivityKey("I wanna go hiking"), ActivityKey("nature walk in the park"))
	})

	t.Run("unbucketed statuses key on trimmed text", func(t *testing.T) {
		require.Equal(t, "zorbing", ActivityKey("  zorbing  "))
	})

	t.Run("empty status has no key", func(t *testing.T) {
		require.Equal(t, "", ActivityKey(""))
		require.Equal(t, "", ActivityKey("   "))
	})
}

func TestEmojiForStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "☕", EmojiForStatus("coffee?"))
	require.Equal(t, "🥾", EmojiForStatus("hiking this weekend"))
	require.Equal(t, "✨", EmojiForStatus("zorbing"))
	require.Equal(t, "✨", EmojiForStatus(""))
}
