package matching

import (
	"sort"

	"meetup_server/models"
)

// DefaultMaxMatches caps a match round at four candidates, forming groups
// of 2-5 people including the initiator.
const DefaultMaxMatches = 4

// ScoredCandidate pairs a candidate profile with its compatibility score.
// Ephemeral; never persisted.
type ScoredCandidate struct {
	Profile models.UserProfile
	Score   float64
}

// FindBestMatches selects the best-scoring candidates for a user, up to
// maxCount. The caller's own profile is excluded, zero scores are dropped,
// and ties keep their input order so repeated calls produce the same
// result.
func FindBestMatches(me models.UserProfile, candidates []models.UserProfile, maxCount int) []models.UserProfile {
	if maxCount <= 0 {
		return nil
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == me.UserID {
			continue
		}
		score := ScoreMatch(me, c)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{Profile: c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxCount {
		scored = scored[:maxCount]
	}

	best := make([]models.UserProfile, len(scored))
	for i, s := range scored {
		best[i] = s.Profile
	}
	return best
}
