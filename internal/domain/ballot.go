package domain

// Ballot is one voter's complete point allocation across all songs in a heat.
// Ballots are built by the parser from one input row and never mutated after
// that; the validator and aggregator only read them.
type Ballot struct {
	// Voter is the participant identifier taken from the name column.
	Voter string

	// Songs lists the heat's songs in header-column order.
	Songs []string

	// Points maps song name to the awarded point value. A song with a
	// malformed cell has no entry here.
	Points map[string]int

	// Malformed maps song name to the raw cell text for cells that did not
	// parse as "<integer> <suffix>". A non-empty map always makes the
	// ballot invalid; the row is kept so the failure is reported instead
	// of the ballot silently going missing.
	Malformed map[string]string
}

// Reason classifies why a ballot failed validation.
type Reason string

// Validation failure reasons, in cascade order.
const (
	ReasonMalformedCell       Reason = "malformed cell"
	ReasonMissingSong         Reason = "missing song"
	ReasonExtraSong           Reason = "extra song"
	ReasonIllegalPointValue   Reason = "illegal point value"
	ReasonDuplicatePointValue Reason = "duplicate point value"
	ReasonWrongSum            Reason = "wrong sum"
)

// ValidationResult tags a Ballot as valid or invalid. When multiple checks
// fail, only the first failure in cascade order is reported.
type ValidationResult struct {
	// Voter is copied from the ballot for reporting.
	Voter string

	// Valid is true when every check passed.
	Valid bool

	// Reason is set when Valid is false.
	Reason Reason

	// Detail carries the specifics of the failure, e.g. the offending
	// value or song name.
	Detail string
}

// Sum returns the total of all parsed point values on the ballot.
func (b Ballot) Sum() int {
	sum := 0
	for _, p := range b.Points {
		sum += p
	}
	return sum
}
