package matching

import (
	"strings"

	"meetup_server/models"
)

// Keyword families with a dedicated group name.
var (
	hikingNameKeywords = []string{"hike", "hiking", "trail", "walk", "nature", "stroll", "wander"}
	artNameKeywords    = []string{"painting", "art", "draw", "museum", "gallery", "workshop", "craft"}
)

const (
	groupNameMaxLen  = 30
	defaultGroupName = "Meetup"
)

// GroupNameForMatch derives a human-readable group label from the
// initiator's status. Always returns a non-empty string.
func GroupNameForMatch(initiator models.UserProfile) string {
	status := strings.TrimSpace(initiator.Status)
	lower := strings.ToLower(status)

	if containsAny(lower, hikingNameKeywords) {
		return "Hiking Group"
	}
	if containsAny(lower, artNameKeywords) {
		return "Art & Painting Group"
	}
	if status != "" {
		runes := []rune(status)
		if len(runes) > groupNameMaxLen {
			return string(runes[:groupNameMaxLen]) + "…"
		}
		return status
	}
	return defaultGroupName
}
