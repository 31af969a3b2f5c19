package models

import "testing"

func TestTierValid(t *testing.T) {
	for _, tier := range []Tier{TierSimple, TierModerate, TierComplex} {
		if !tier.Valid() {
			t.Errorf("expected %q to be valid", tier)
		}
	}

	if Tier("EXTREME").Valid() {
		t.Error("expected unknown tier to be invalid")
	}
}

func TestTierOrdering(t *testing.T) {
	if !TierComplex.AtLeast(TierModerate) {
		t.Error("expected COMPLEX >= MODERATE")
	}
	if !TierModerate.AtLeast(TierSimple) {
		t.Error("expected MODERATE >= SIMPLE")
	}
	if TierSimple.AtLeast(TierModerate) {
		t.Error("expected SIMPLE < MODERATE")
	}
	if !TierSimple.AtLeast(TierSimple) {
		t.Error("expected tier to be at least itself")
	}
}
