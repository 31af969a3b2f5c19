package models

// Tier represents the complexity classification of a project request.
// Tiers are totally ordered: Simple < Moderate < Complex.
type Tier string

const (
	// TierSimple is for small, single-purpose requests.
	TierSimple Tier = "SIMPLE"
	// TierModerate is for multi-feature applications and integrations.
	TierModerate Tier = "MODERATE"
	// TierComplex is for enterprise, distributed, or large-scale systems.
	TierComplex Tier = "COMPLEX"
)

// Valid returns true if the tier is a known value.
func (t Tier) Valid() bool {
	switch t {
	case TierSimple, TierModerate, TierComplex:
		return true
	default:
		return false
	}
}

// rank orders tiers for comparison. Unknown tiers rank below Simple.
func (t Tier) rank() int {
	switch t {
	case TierSimple:
		return 1
	case TierModerate:
		return 2
	case TierComplex:
		return 3
	default:
		return 0
	}
}

// AtLeast returns true if t is the same tier as other or a higher one.
func (t Tier) AtLeast(other Tier) bool {
	return t.rank() >= other.rank()
}
