// Package validate checks ballots against the heat's point-allocation rules.
//
// Checks run in a fixed cascade and the first failure wins, so a ballot that
// violates several rules reports one deterministic reason. The sum check is
// redundant with the earlier checks for a correctly sized heat but is kept
// independent: when the song count differs from the point-set size, the fixed
// set no longer guarantees the required sum.
package validate

import (
	"fmt"
	"sort"

	"github.com/sunnerberg/heattally/internal/domain"
)

// Ballot checks one ballot against the rules and the heat's declared song set.
// Pure function; the ballot is never modified.
func Ballot(b domain.Ballot, rules domain.Rules, songs []string) domain.ValidationResult {
	invalid := func(reason domain.Reason, detail string) domain.ValidationResult {
		return domain.ValidationResult{Voter: b.Voter, Reason: reason, Detail: detail}
	}

	// Malformed cells first: the ballot has no usable value for that song.
	for _, song := range songs {
		if raw, ok := b.Malformed[song]; ok {
			return invalid(domain.ReasonMalformedCell, fmt.Sprintf("%s: %q", song, raw))
		}
	}

	// Song-set match against the declared heat.
	for _, song := range songs {
		if _, ok := b.Points[song]; !ok {
			return invalid(domain.ReasonMissingSong, song)
		}
	}
	declared := make(map[string]bool, len(songs))
	for _, song := range songs {
		declared[song] = true
	}
	var extra []string
	for song := range b.Points {
		if !declared[song] {
			extra = append(extra, song)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return invalid(domain.ReasonExtraSong, extra[0])
	}

	// Legal values.
	for _, song := range songs {
		if p := b.Points[song]; !rules.Legal(p) {
			return invalid(domain.ReasonIllegalPointValue, fmt.Sprintf("%d (%s)", p, song))
		}
	}

	// Uniqueness across the ballot.
	used := make(map[int]string, len(songs))
	for _, song := range songs {
		p := b.Points[song]
		if first, ok := used[p]; ok {
			return invalid(domain.ReasonDuplicatePointValue, fmt.Sprintf("%d (%s, %s)", p, first, song))
		}
		used[p] = song
	}

	// Sum check, kept independent of the checks above.
	if sum := b.Sum(); sum != rules.RequiredSum {
		return invalid(domain.ReasonWrongSum, fmt.Sprintf("%d, expected %d", sum, rules.RequiredSum))
	}

	return domain.ValidationResult{Voter: b.Voter, Valid: true}
}

// Partition validates every ballot and splits the sequence into the valid
// ballots (input order preserved) and the results for the invalid ones.
func Partition(ballots []domain.Ballot, rules domain.Rules, songs []string) ([]domain.Ballot, []domain.ValidationResult) {
	var valid []domain.Ballot
	var invalid []domain.ValidationResult
	for _, b := range ballots {
		res := Ballot(b, rules, songs)
		if res.Valid {
			valid = append(valid, b)
		} else {
			invalid = append(invalid, res)
		}
	}
	return valid, invalid
}
