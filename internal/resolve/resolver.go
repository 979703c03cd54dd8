package resolve

import "strings"

// Outcome is the result of one resolution pass over a single file.
// Changed is false for buffers that had no markers to begin with; those
// need staging but not rewriting.
type Outcome struct {
	Path          string
	Merged        string
	FullyResolved bool
	Changed       bool
	Strategy      StrategyKind
}

// Resolve parses every conflict block in buffer, replaces each one with
// the strategy's merged text, and re-scans the result for leftover
// markers. FullyResolved is true only when none remain. A buffer with no
// markers comes back unchanged and fully resolved.
func Resolve(buffer string, strategy Strategy) Outcome {
	merged := buffer
	for _, b := range ParseBlocks(buffer) {
		merged = strings.ReplaceAll(merged, b.Raw, strategy.Merge(b))
	}

	return Outcome{
		Merged:        merged,
		FullyResolved: !HasConflictMarkers(merged),
		Changed:       merged != buffer,
	}
}
