package domain

// SongTally is the aggregated result for one song within a heat: its point
// total plus, for every legal point value, the voters who awarded it.
type SongTally struct {
	// Song is the song identifier from the header row.
	Song string

	// Total is the sum of point values from all valid ballots.
	Total int

	// VotersByPoints maps each legal point value to the voters who awarded
	// it to this song, in ballot-input order. Values nobody awarded map to
	// a nil slice.
	VotersByPoints map[int][]string
}

// CountAt returns how many valid ballots awarded this song exactly p points.
func (t SongTally) CountAt(p int) int {
	return len(t.VotersByPoints[p])
}

// Placement is one song's entry in the final ranked result.
type Placement struct {
	SongTally

	// Position is the 1-based placement. Songs that remain fully tied
	// after the cascade share a position.
	Position int

	// TieBroken is true when this song's order relative to an
	// equal-total neighbour was decided by the vote-count cascade.
	TieBroken bool

	// Unresolved is true when the cascade was exhausted without
	// separating this song from a neighbour with the same total.
	Unresolved bool

	// Destination is the advancement label for this placement.
	Destination string
}
