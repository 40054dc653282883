// Package tally aggregates valid ballots into per-song totals and ranks the
// songs with the deterministic tie-break cascade.
package tally

import "github.com/sunnerberg/heattally/internal/domain"

// Aggregate sums each song's points across the valid ballots and records, per
// legal point value, which voters awarded it, in ballot-input order. Invalid
// ballots must be filtered out before this step; their points never count.
func Aggregate(valid []domain.Ballot, rules domain.Rules, songs []string) []domain.SongTally {
	tallies := make([]domain.SongTally, 0, len(songs))
	for _, song := range songs {
		t := domain.SongTally{
			Song:           song,
			VotersByPoints: make(map[int][]string, len(rules.PointValues)),
		}
		for _, b := range valid {
			p, ok := b.Points[song]
			if !ok {
				continue
			}
			t.Total += p
			if rules.Legal(p) {
				t.VotersByPoints[p] = append(t.VotersByPoints[p], b.Voter)
			}
		}
		tallies = append(tallies, t)
	}
	return tallies
}
