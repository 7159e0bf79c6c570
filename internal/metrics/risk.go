package metrics

import "github.com/Silvia-9/taskflow-canvas/internal/domain"

// ratingWeight maps a probability or impact rating onto its numeric weight.
func ratingWeight(r domain.RiskRating) int {
	switch r {
	case domain.RatingLow:
		return 1
	case domain.RatingMedium:
		return 2
	case domain.RatingHigh:
		return 3
	default:
		return 1
	}
}

// RiskScore returns probability weight times impact weight, in 1..9.
func RiskScore(probability, impact domain.RiskRating) int {
	return ratingWeight(probability) * ratingWeight(impact)
}

// RiskLevel derives the overall risk level from probability and impact.
// Score >= 6 is High, >= 4 is Medium, anything lower is Low. The function
// is total over the rating enum and monotonic in both arguments.
func RiskLevel(probability, impact domain.RiskRating) domain.RiskRating {
	score := RiskScore(probability, impact)
	switch {
	case score >= 6:
		return domain.RatingHigh
	case score >= 4:
		return domain.RatingMedium
	default:
		return domain.RatingLow
	}
}
