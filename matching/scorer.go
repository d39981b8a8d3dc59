package matching

import (
	"strings"

	"meetup_server/models"
)

// Scoring constants. Tuned against observed match quality across product
// iterations; preserved exactly for compatibility, not derived from any
// principled model.
const (
	statusWeight       = 0.6  // weight of status similarity when both users have a status
	interestWeight     = 0.4  // weight of interest overlap when both users have a status
	singleStatusWeight = 0.9  // interest-overlap weight when only one user has a status
	crossMatchScore    = 0.8  // fixed bonus when a status keyword maps onto the other side's interests
	baselineScore      = 0.05 // last-resort floor so two empty profiles can still match, ranked lowest
)

// statusSimilarity compares two statuses through their keyword clusters:
// |intersection| / max(|A|, |B|). A shared cluster scores higher when the
// cluster is small and specific. Zero when either side has no cluster.
func statusSimilarity(statusA, statusB string) float64 {
	kwA := KeywordsForStatus(statusA)
	kwB := KeywordsForStatus(statusB)
	if len(kwA) == 0 || len(kwB) == 0 {
		return 0
	}

	setB := make(map[string]struct{}, len(kwB))
	for _, k := range kwB {
		setB[k] = struct{}{}
	}
	overlap := 0
	for _, k := range kwA {
		if _, ok := setB[k]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}
	return float64(overlap) / float64(max(len(kwA), len(kwB)))
}

// interestOverlap is |intersection| / max(|A|, |B|) over interest-id sets,
// zero when either side has none.
func interestOverlap(interestsA, interestsB []string) float64 {
	a := stringSet(interestsA)
	b := stringSet(interestsB)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	overlap := 0
	for id := range a {
		if _, ok := b[id]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(max(len(a), len(b)))
}

// statusInterestOverlap cross-checks one user's status keywords against the
// other's interest ids ("painting class" matches interests "painting" and
// "art"). Returns the fixed bonus on any hit.
func statusInterestOverlap(status string, interests []string) float64 {
	lower := strings.ToLower(strings.TrimSpace(status))
	if lower == "" {
		return 0
	}
	set := stringSet(interests)
	if len(set) == 0 {
		return 0
	}
	for keyword, ids := range statusToInterest {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, id := range ids {
			if _, ok := set[id]; ok {
				return crossMatchScore
			}
		}
	}
	return 0
}

// ScoreMatch computes a compatibility score in [0,1] between two profiles.
// Pure and deterministic; the caller is responsible for excluding
// self-comparison.
func ScoreMatch(me, candidate models.UserProfile) float64 {
	myStatus := strings.TrimSpace(me.Status)
	candStatus := strings.TrimSpace(candidate.Status)

	statusSim := statusSimilarity(myStatus, candStatus)
	interestSim := interestOverlap(me.Interests, candidate.Interests)
	// Cross-match runs both directions: my status against their interests
	// and their status against mine.
	crossSim := max(
		statusInterestOverlap(myStatus, candidate.Interests),
		statusInterestOverlap(candStatus, me.Interests),
	)

	bothHaveStatus := myStatus != "" && candStatus != ""
	eitherHasStatus := myStatus != "" || candStatus != ""

	switch {
	case bothHaveStatus:
		return max(statusSim*statusWeight+interestSim*interestWeight, crossSim)
	case eitherHasStatus:
		return max(interestSim*singleStatusWeight, crossSim)
	case interestSim > 0:
		return interestSim
	case crossSim > 0:
		return crossSim
	default:
		return baselineScore
	}
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
