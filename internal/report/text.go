// Package report renders the tallied heat for humans: a ranked table with
// advancement destinations and extreme-vote provenance, tie-break notes, the
// invalid-ballot list and a per-voter summary. It only formats; all decisions
// are made upstream.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sunnerberg/heattally/internal/domain"
	"github.com/sunnerberg/heattally/internal/tally"
)

// Result bundles everything the report needs for one heat.
type Result struct {
	Title      string
	Rules      domain.Rules
	Songs      []string
	Ballots    []domain.Ballot
	Valid      []domain.Ballot
	Invalid    []domain.ValidationResult
	Placements []domain.Placement
}

const rule = "============================================================"

// Write renders the full text report.
func Write(w io.Writer, r Result) error {
	title := r.Title
	if title == "" {
		title = "HEAT RESULTS"
	}
	top := r.Rules.TopValue()
	bottom := r.Rules.BottomValue()

	fmt.Fprintf(w, "%s\n%s (%d voters, %d songs)\n%s\n\n", rule, title, len(r.Ballots), len(r.Songs), rule)

	fmt.Fprintf(w, "%-4s %-40s %4s  %3s  %-15s  Champions (%dp) / Haters (%dp)\n",
		"#", "Song", "Pts", fmt.Sprintf("%dp", top), "Destination", top, bottom)
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, p := range r.Placements {
		fmt.Fprintf(w, "%-4d %-40s %4d  %3d  %-15s  %dp: %s | %dp: %s\n",
			p.Position, p.Song, p.Total, p.CountAt(top), p.Destination,
			top, voterList(p.VotersByPoints[top]),
			bottom, voterList(p.VotersByPoints[bottom]))
	}

	writeTieNotes(w, r)
	writeInvalid(w, r.Invalid)
	writeVoterSummary(w, r)
	return nil
}

func voterList(voters []string) string {
	if len(voters) == 0 {
		return "None"
	}
	return strings.Join(voters, ", ")
}

func writeTieNotes(w io.Writer, r Result) {
	var notes []string
	for i := 1; i < len(r.Placements); i++ {
		prev, cur := r.Placements[i-1], r.Placements[i]
		if prev.Total == cur.Total && prev.TieBroken && cur.TieBroken {
			notes = append(notes, fmt.Sprintf("%s ranks above %s on %d points: more votes at a higher point value",
				prev.Song, cur.Song, prev.Total))
		}
	}
	for _, group := range tally.Unresolved(r.Placements) {
		notes = append(notes, fmt.Sprintf("UNRESOLVED TIE: %s are identical at every point value and share a position",
			strings.Join(group, " and ")))
	}
	if len(notes) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTIE-BREAKS\n")
	for _, n := range notes {
		fmt.Fprintf(w, "  - %s\n", n)
	}
}

func writeInvalid(w io.Writer, invalid []domain.ValidationResult) {
	if len(invalid) == 0 {
		return
	}
	fmt.Fprintf(w, "\nINVALID BALLOTS (excluded from the tally)\n")
	for _, res := range invalid {
		fmt.Fprintf(w, "  - %s: %s (%s)\n", res.Voter, res.Reason, res.Detail)
	}
}

func writeVoterSummary(w io.Writer, r Result) {
	fmt.Fprintf(w, "\n%s\nVOTER SUMMARY\n%s\n", rule, rule)
	for _, b := range r.Ballots {
		points := make([]string, 0, len(r.Songs))
		for _, song := range r.Songs {
			if p, ok := b.Points[song]; ok {
				points = append(points, fmt.Sprintf("%d", p))
			} else {
				points = append(points, "?")
			}
		}
		fmt.Fprintf(w, "  %-25s sum=%-3d points=[%s]\n", b.Voter, b.Sum(), strings.Join(points, " "))
	}
}
