package tally

import (
	"sort"

	"github.com/sunnerberg/heattally/internal/domain"
)

// Rank orders the songs by total points descending and breaks ties with the
// vote-count cascade: at equal totals, the song with more votes at the highest
// point value wins; on equal counts the comparison moves down to the next
// value. Songs still tied after the cascade is exhausted cannot be ordered
// from the data: they keep input order, share a position and are flagged
// Unresolved. Rank never mutates its input and is idempotent.
func Rank(tallies []domain.SongTally, rules domain.Rules) []domain.Placement {
	ordered := make([]domain.SongTally, len(tallies))
	copy(ordered, tallies)

	desc := rules.PointsDescending()
	sort.SliceStable(ordered, func(i, j int) bool {
		return compare(ordered[i], ordered[j], desc) > 0
	})

	placements := make([]domain.Placement, len(ordered))
	for i, t := range ordered {
		placements[i] = domain.Placement{
			SongTally:   t,
			Position:    i + 1,
			Destination: rules.Destination(i + 1),
		}
	}

	// Annotate adjacent equal-total pairs: separated by the cascade means
	// tie-broken, identical at every count means unresolved.
	for i := 1; i < len(placements); i++ {
		prev, cur := &placements[i-1], &placements[i]
		if prev.Total != cur.Total {
			continue
		}
		if compare(prev.SongTally, cur.SongTally, desc) == 0 {
			cur.Position = prev.Position
			prev.Unresolved = true
			cur.Unresolved = true
		} else {
			prev.TieBroken = true
			cur.TieBroken = true
		}
	}
	return placements
}

// compare orders two tallies: positive when a ranks above b, negative when
// below, zero when the cascade is exhausted without separating them.
func compare(a, b domain.SongTally, pointsDesc []int) int {
	if a.Total != b.Total {
		return a.Total - b.Total
	}
	for _, p := range pointsDesc {
		if ca, cb := a.CountAt(p), b.CountAt(p); ca != cb {
			return ca - cb
		}
	}
	return 0
}

// Unresolved returns the songs involved in ties the cascade could not break,
// grouped by shared position.
func Unresolved(placements []domain.Placement) [][]string {
	var groups [][]string
	var current []string
	for i, p := range placements {
		if !p.Unresolved {
			continue
		}
		if len(current) > 0 && placements[i-1].Unresolved && placements[i-1].Position == p.Position {
			current = append(current, p.Song)
			continue
		}
		if len(current) > 1 {
			groups = append(groups, current)
		}
		current = []string{p.Song}
	}
	if len(current) > 1 {
		groups = append(groups, current)
	}
	return groups
}
