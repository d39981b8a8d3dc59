package matching

import "strings"

// keywordGroup is a cluster of synonymous activity words. Bucket is the
// canonical name of the cluster, used as the dedup key for invites.
type keywordGroup struct {
	Bucket   string
	Keywords []string
}

// Similar activities grouped together, so "walk in nature" and "hiking"
// land in the same cluster. A status belongs to the first cluster that
// contains any matching substring.
var statusKeywordGroups = []keywordGroup{
	{"hiking", []string{"walk", "stroll", "wander", "hike", "hiking", "trail", "nature", "outdoor", "outside", "fresh air", "woods", "forest", "park", "nature walk"}},
	{"running", []string{"run", "jog"}},
	{"coffee", []string{"coffee", "cafe", "tea"}},
	{"drinks", []string{"drink", "bar", "beer", "wine"}},
	{"food", []string{"eat", "food", "lunch", "dinner", "brunch"}},
	{"cooking", []string{"cook", "baking", "bake"}},
	{"reading", []string{"read", "book"}},
	{"movies", []string{"movie", "film", "cinema"}},
	{"music", []string{"music", "concert", "gig"}},
	{"gaming", []string{"game", "gaming", "play"}},
	{"cycling", []string{"bike", "cycling", "cycle"}},
	{"swimming", []string{"swim", "beach", "pool"}},
	{"fitness", []string{"yoga", "gym", "workout", "exercise"}},
	{"travel", []string{"travel", "trip", "explore"}},
	{"art", []string{"art", "museum", "gallery", "painting", "workshop", "craft", "pottery", "draw"}},
	{"social", []string{"chat", "talk", "hang", "catch up"}},
	{"study", []string{"study", "focus"}},
	{"work", []string{"work"}},
	{"pets", []string{"dog", "pet", "puppy"}},
	{"party", []string{"dance", "party"}},
}

// statusToInterest maps individual status keywords to related interest ids.
// A keyword can map to several ids so one activity ("painting class")
// matches multiple interests ("painting", "art").
var statusToInterest = map[string][]string{
	"hike":        {"outdoor"},
	"hiking":      {"hiking"},
	"trail":       {"outdoor"},
	"walk":        {"outdoor"},
	"stroll":      {"outdoor"},
	"nature":      {"outdoor"},
	"outdoor":     {"outdoor"},
	"outside":     {"outdoor"},
	"forest":      {"outdoor"},
	"woods":       {"outdoor"},
	"park":        {"outdoor"},
	"run":         {"sports"},
	"jog":         {"sports"},
	"bike":        {"outdoor"},
	"cycling":     {"outdoor"},
	"swim":        {"sports"},
	"beach":       {"travel"},
	"yoga":        {"sports"},
	"gym":         {"sports"},
	"workout":     {"sports"},
	"exercise":    {"sports"},
	"art":         {"art", "painting"},
	"museum":      {"art"},
	"gallery":     {"art"},
	"painting":    {"painting", "art"},
	"draw":        {"painting", "art"},
	"workshop":    {"crafts", "art"},
	"craft":       {"crafts"},
	"pottery":     {"crafts"},
	"cooking":     {"cooking"},
	"cook":        {"cooking"},
	"baking":      {"cooking"},
	"read":        {"reading"},
	"book":        {"reading"},
	"movie":       {"movies"},
	"film":        {"movies"},
	"cinema":      {"movies"},
	"music":       {"music"},
	"concert":     {"music"},
	"gaming":      {"gaming"},
	"game":        {"gaming"},
	"travel":      {"travel"},
	"trip":        {"travel"},
	"photography": {"photography"},
	"tech":        {"tech"},
}

// statusEmoji maps status keywords to a map-pin emoji for display.
var statusEmoji = []struct {
	Keywords []string
	Emoji    string
}{
	{[]string{"walk", "stroll", "wander"}, "🚶"},
	{[]string{"run", "jog"}, "🏃"},
	{[]string{"coffee", "cafe", "tea"}, "☕"},
	{[]string{"drink", "bar", "beer", "wine"}, "🍻"},
	{[]string{"eat", "food", "lunch", "dinner", "brunch"}, "🍽️"},
	{[]string{"cook", "baking", "bake"}, "🍳"},
	{[]string{"read", "book"}, "📚"},
	{[]string{"movie", "film", "cinema"}, "🎬"},
	{[]string{"music", "concert", "gig"}, "🎵"},
	{[]string{"game", "gaming", "play"}, "🎮"},
	{[]string{"hike", "hiking", "trail"}, "🥾"},
	{[]string{"bike", "cycling", "cycle"}, "🚴"},
	{[]string{"swim", "beach", "pool"}, "🏊"},
	{[]string{"yoga", "gym", "workout", "exercise"}, "💪"},
	{[]string{"travel", "trip", "explore"}, "✈️"},
	{[]string{"art", "museum", "gallery", "painting", "workshop", "craft", "pottery", "draw"}, "🎨"},
	{[]string{"chat", "talk", "hang", "catch up"}, "💬"},
	{[]string{"study", "focus"}, "📖"},
	{[]string{"work"}, "💼"},
	{[]string{"dog", "pet", "puppy"}, "🐕"},
	{[]string{"dance", "party"}, "💃"},
}

const defaultEmoji = "✨"

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// KeywordsForStatus returns the keyword cluster the status belongs to, or
// nil when no cluster matches. An empty status never matches.
func KeywordsForStatus(status string) []string {
	lower := strings.ToLower(strings.TrimSpace(status))
	if lower == "" {
		return nil
	}
	for _, group := range statusKeywordGroups {
		if containsAny(lower, group.Keywords) {
			return group.Keywords
		}
	}
	return nil
}

// BucketForStatus returns the canonical name of the status's keyword
// cluster, or "" when the status maps to no cluster.
func BucketForStatus(status string) string {
	lower := strings.ToLower(strings.TrimSpace(status))
	if lower == "" {
		return ""
	}
	for _, group := range statusKeywordGroups {
		if containsAny(lower, group.Keywords) {
			return group.Bucket
		}
	}
	return ""
}

// ActivityKey returns the canonical dedup key for a status: the bucket name
// when the status maps to a keyword cluster, otherwise the trimmed status
// itself. Empty status yields "".
func ActivityKey(status string) string {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return ""
	}
	if bucket := BucketForStatus(trimmed); bucket != "" {
		return bucket
	}
	return trimmed
}

// EmojiForStatus picks a map-pin emoji for a status.
func EmojiForStatus(status string) string {
	lower := strings.ToLower(strings.TrimSpace(status))
	if lower == "" {
		return defaultEmoji
	}
	for _, entry := range statusEmoji {
		if containsAny(lower, entry.Keywords) {
			return entry.Emoji
		}
	}
	return defaultEmoji
}
