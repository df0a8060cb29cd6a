package parser

import "github.com/devin-lang/devin/internal/token"

// ParseError is a single parse failure: where it happened, what the parser
// was expecting, and whether it is fatal (committed — no alternative parse
// can recover) or a backtrackable mismatch considered during `A | B` choice
// resolution.
type ParseError struct {
	Pos      token.Pos
	Expected []string
	Fatal    bool
	Message  string
}

func (e *ParseError) Error() string { return e.Message }

// mergeFailures implements the spec's alternative-combinator tie-break: of
// two failures, keep the one that got further into the input; on a tie,
// union their expected sets. No parsing rule calls it: every mismatch the
// parser records is fatal, so there is never a pair of backtrackable
// failures to merge.
func mergeFailures(a, b *ParseError) *ParseError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Pos.Offset > b.Pos.Offset {
		return a
	}
	if b.Pos.Offset > a.Pos.Offset {
		return b
	}
	merged := &ParseError{Pos: a.Pos, Fatal: a.Fatal || b.Fatal}
	seen := map[string]bool{}
	for _, s := range append(append([]string{}, a.Expected...), b.Expected...) {
		if !seen[s] {
			seen[s] = true
			merged.Expected = append(merged.Expected, s)
		}
	}
	merged.Message = "parse error at " + a.Pos.String()
	return merged
}
