package tally

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sunnerberg/heattally/internal/domain"
)

// tallyFor builds a SongTally from (points, voters...) pairs.
func tallyFor(song string, votes map[int][]string) domain.SongTally {
	t := domain.SongTally{Song: song, VotersByPoints: votes}
	for p, voters := range votes {
		t.Total += p * len(voters)
	}
	return t
}

func TestRankByTotal(t *testing.T) {
	rules := domain.DefaultRules()
	tallies := []domain.SongTally{
		tallyFor("low", map[int][]string{1: {"a"}, 2: {"b"}}),
		tallyFor("high", map[int][]string{10: {"a"}, 8: {"b"}}),
		tallyFor("mid", map[int][]string{5: {"a"}, 6: {"b"}}),
	}

	placements := Rank(tallies, rules)

	var order []string
	for _, p := range placements {
		order = append(order, p.Song)
	}
	if diff := cmp.Diff([]string{"high", "mid", "low"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	for i, p := range placements {
		if p.Position != i+1 {
			t.Errorf("%s Position = %d, want %d", p.Song, p.Position, i+1)
		}
		if p.TieBroken || p.Unresolved {
			t.Errorf("%s unexpectedly flagged (tieBroken=%v unresolved=%v)", p.Song, p.TieBroken, p.Unresolved)
		}
	}
}

func TestRankTieBreakCascade(t *testing.T) {
	rules := domain.DefaultRules()
	// Both songs total 28; A has two 10p votes, B has one. A must rank
	// above B no matter what the lower counts look like.
	tallies := []domain.SongTally{
		tallyFor("B", map[int][]string{10: {"v1"}, 8: {"v2"}, 6: {"v3"}, 4: {"v4"}}),
		tallyFor("A", map[int][]string{10: {"v1", "v2"}, 8: {"v3"}}),
	}

	placements := Rank(tallies, rules)

	if placements[0].Song != "A" || placements[1].Song != "B" {
		t.Fatalf("order = %s, %s; want A, B", placements[0].Song, placements[1].Song)
	}
	if !placements[0].TieBroken || !placements[1].TieBroken {
		t.Error("tie-broken pair not flagged")
	}
	if placements[0].Unresolved || placements[1].Unresolved {
		t.Error("cascade-resolved tie flagged unresolved")
	}
	if placements[0].Position != 1 || placements[1].Position != 2 {
		t.Errorf("positions = %d, %d; want 1, 2", placements[0].Position, placements[1].Position)
	}
}

func TestRankCascadeWalksDown(t *testing.T) {
	rules := domain.DefaultRules()
	// Equal totals and equal counts at 10 and 8; the count at 6 decides.
	tallies := []domain.SongTally{
		tallyFor("X", map[int][]string{10: {"a"}, 8: {"b"}, 5: {"c"}, 1: {"d"}}),
		tallyFor("Y", map[int][]string{10: {"a"}, 8: {"b"}, 6: {"c"}}),
	}

	placements := Rank(tallies, rules)

	if placements[0].Song != "Y" {
		t.Errorf("winner = %s, want Y (more 6p votes)", placements[0].Song)
	}
}

func TestRankUnresolvedTie(t *testing.T) {
	rules := domain.DefaultRules()
	// Identical counts at every point value: the data cannot order them.
	tallies := []domain.SongTally{
		tallyFor("solo", map[int][]string{10: {"a"}, 8: {"b"}, 6: {"c"}}),
		tallyFor("twin1", map[int][]string{10: {"a"}, 8: {"b"}}),
		tallyFor("twin2", map[int][]string{10: {"c"}, 8: {"d"}}),
	}

	placements := Rank(tallies, rules)

	if placements[0].Song != "solo" {
		t.Fatalf("first = %s, want solo", placements[0].Song)
	}
	t1, t2 := placements[1], placements[2]
	if !t1.Unresolved || !t2.Unresolved {
		t.Error("fully tied pair not flagged unresolved")
	}
	if t1.Position != t2.Position {
		t.Errorf("tied positions = %d, %d; want shared", t1.Position, t2.Position)
	}
	// Input order is kept rather than an arbitrary reshuffle.
	if t1.Song != "twin1" || t2.Song != "twin2" {
		t.Errorf("tied order = %s, %s; want twin1, twin2", t1.Song, t2.Song)
	}

	groups := Unresolved(placements)
	if diff := cmp.Diff([][]string{{"twin1", "twin2"}}, groups); diff != "" {
		t.Errorf("Unresolved() mismatch (-want +got):\n%s", diff)
	}
}

func TestRankIdempotent(t *testing.T) {
	rules := domain.DefaultRules()
	tallies := []domain.SongTally{
		tallyFor("B", map[int][]string{10: {"v1"}, 8: {"v2"}, 6: {"v3"}, 4: {"v4"}}),
		tallyFor("A", map[int][]string{10: {"v1", "v2"}, 8: {"v3"}}),
		tallyFor("C", map[int][]string{1: {"v1"}}),
	}

	first := Rank(tallies, rules)
	second := Rank(tallies, rules)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Rank not idempotent (-first +second):\n%s", diff)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	rules := domain.DefaultRules()
	tallies := []domain.SongTally{
		tallyFor("B", map[int][]string{1: {"v1"}}),
		tallyFor("A", map[int][]string{10: {"v1"}}),
	}

	Rank(tallies, rules)

	if tallies[0].Song != "B" || tallies[1].Song != "A" {
		t.Errorf("input reordered: %s, %s", tallies[0].Song, tallies[1].Song)
	}
}

func TestRankDestinations(t *testing.T) {
	rules := domain.DefaultRules()
	var tallies []domain.SongTally
	songs := []string{"a", "b", "c", "d", "e", "f"}
	values := []int{10, 8, 6, 5, 4, 3}
	for i, s := range songs {
		tallies = append(tallies, tallyFor(s, map[int][]string{values[i]: {"v"}}))
	}

	placements := Rank(tallies, rules)

	want := []string{
		domain.DestinationFinal,
		domain.DestinationFinal,
		domain.DestinationSecondChance,
		domain.DestinationSecondChance,
		domain.DestinationEliminated,
		domain.DestinationEliminated,
	}
	for i, p := range placements {
		if p.Destination != want[i] {
			t.Errorf("rank %d destination = %q, want %q", i+1, p.Destination, want[i])
		}
	}
}
