package domain

import (
	"fmt"
	"sort"
)

// Destination labels for advancement, applied to the ranked result.
const (
	DestinationFinal        = "FINAL"
	DestinationSecondChance = "ANDRA CHANSEN"
	DestinationEliminated   = "Eliminated"
)

// Rules holds the heat's point-allocation rules. Every voter must use each
// legal point value exactly once, so a well-formed ballot always sums to
// RequiredSum. Rules are built once per invocation and never mutated.
type Rules struct {
	// PointValues is the closed set of legal point amounts, ascending.
	PointValues []int

	// RequiredSum is the total every valid ballot must reach. With the
	// default point set this is 39.
	RequiredSum int

	// Finalists is the number of top-ranked songs that advance directly.
	Finalists int

	// SecondChance is the number of songs after the finalists that go to
	// the second-chance round.
	SecondChance int
}

// DefaultRules returns the standard heat rules: point set {1,2,3,4,5,6,8,10},
// required sum 39, top 2 to the final and the next 2 to second chance.
func DefaultRules() Rules {
	pv := []int{1, 2, 3, 4, 5, 6, 8, 10}
	sum := 0
	for _, p := range pv {
		sum += p
	}
	return Rules{
		PointValues:  pv,
		RequiredSum:  sum,
		Finalists:    2,
		SecondChance: 2,
	}
}

// Validate checks the rules for internal consistency.
func (r Rules) Validate() error {
	if len(r.PointValues) == 0 {
		return fmt.Errorf("%w: empty point set", ErrInvalidRules)
	}
	seen := make(map[int]bool, len(r.PointValues))
	sum := 0
	for _, p := range r.PointValues {
		if p <= 0 {
			return fmt.Errorf("%w: point value %d is not positive", ErrInvalidRules, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: point value %d repeated", ErrInvalidRules, p)
		}
		seen[p] = true
		sum += p
	}
	if r.RequiredSum != sum {
		return fmt.Errorf("%w: required sum %d does not match point set sum %d", ErrInvalidRules, r.RequiredSum, sum)
	}
	if r.Finalists < 0 || r.SecondChance < 0 {
		return fmt.Errorf("%w: advancement counts must not be negative", ErrInvalidRules)
	}
	return nil
}

// Legal reports whether p belongs to the legal point set.
func (r Rules) Legal(p int) bool {
	for _, v := range r.PointValues {
		if v == p {
			return true
		}
	}
	return false
}

// PointsDescending returns the legal point set from highest to lowest.
// This is the comparison order of the tie-break cascade.
func (r Rules) PointsDescending() []int {
	out := make([]int, len(r.PointValues))
	copy(out, r.PointValues)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// TopValue returns the highest legal point value (the "champion" vote).
func (r Rules) TopValue() int {
	top := r.PointValues[0]
	for _, v := range r.PointValues {
		if v > top {
			top = v
		}
	}
	return top
}

// BottomValue returns the lowest legal point value (the "hater" vote).
func (r Rules) BottomValue() int {
	bottom := r.PointValues[0]
	for _, v := range r.PointValues {
		if v < bottom {
			bottom = v
		}
	}
	return bottom
}

// Destination returns the advancement label for a 1-based rank after
// tie-breaking.
func (r Rules) Destination(rank int) string {
	switch {
	case rank <= r.Finalists:
		return DestinationFinal
	case rank <= r.Finalists+r.SecondChance:
		return DestinationSecondChance
	default:
		return DestinationEliminated
	}
}
