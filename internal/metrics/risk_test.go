package metrics

import (
	"testing"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRiskLevel_HighProbabilityMediumImpact(t *testing.T) {
	assert.Equal(t, 6, RiskScore(domain.RatingHigh, domain.RatingMedium))
	assert.Equal(t, domain.RatingHigh, RiskLevel(domain.RatingHigh, domain.RatingMedium))
}

func TestRiskLevel_Grid(t *testing.T) {
	cases := []struct {
		probability domain.RiskRating
		impact      domain.RiskRating
		want        domain.RiskRating
	}{
		{domain.RatingLow, domain.RatingLow, domain.RatingLow},
		{domain.RatingLow, domain.RatingMedium, domain.RatingLow},
		{domain.RatingLow, domain.RatingHigh, domain.RatingLow},
		{domain.RatingMedium, domain.RatingMedium, domain.RatingMedium},
		{domain.RatingMedium, domain.RatingHigh, domain.RatingHigh},
		{domain.RatingHigh, domain.RatingHigh, domain.RatingHigh},
	}

	for _, tc := range cases {
		got := RiskLevel(tc.probability, tc.impact)
		assert.Equalf(t, tc.want, got, "probability=%s impact=%s", tc.probability, tc.impact)
	}
}

// rank orders ratings for the monotonicity check.
func rank(r domain.RiskRating) int {
	switch r {
	case domain.RatingHigh:
		return 3
	case domain.RatingMedium:
		return 2
	default:
		return 1
	}
}

func TestRiskLevel_Monotonic(t *testing.T) {
	ratings := domain.AllRiskRatings

	for _, impact := range ratings {
		for i := 0; i < len(ratings)-1; i++ {
			lo := RiskLevel(ratings[i], impact)
			hi := RiskLevel(ratings[i+1], impact)
			assert.LessOrEqualf(t, rank(lo), rank(hi),
				"raising probability %s->%s at impact %s lowered the level", ratings[i], ratings[i+1], impact)
		}
	}

	for _, probability := range ratings {
		for i := 0; i < len(ratings)-1; i++ {
			lo := RiskLevel(probability, ratings[i])
			hi := RiskLevel(probability, ratings[i+1])
			assert.LessOrEqualf(t, rank(lo), rank(hi),
				"raising impact %s->%s at probability %s lowered the level", ratings[i], ratings[i+1], probability)
		}
	}
}
