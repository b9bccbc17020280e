package multialign

import "fmt"

// GlueWarning records a recoverable inconsistency found while merging a
// pairwise alignment into a group: the shared entry's position sequences
// disagreed at a point where both sides expected a value. The merge does
// not abort; it resolves the disagreement by advancing whichever side holds
// the lower position first, and records the event here.
type GlueWarning struct {
	// SharedEntry is the entry whose position stream disagreed.
	SharedEntry int

	// GroupPosition is the position recorded in the existing group at the
	// point of disagreement.
	GroupPosition int

	// IncomingPosition is the position recorded in the alignment being
	// glued in at the point of disagreement.
	IncomingPosition int
}

func (w GlueWarning) String() string {
	return fmt.Sprintf(
		"multialign: glue warning: entry %d position mismatch (group=%d, incoming=%d); advancing lower side",
		w.SharedEntry, w.GroupPosition, w.IncomingPosition,
	)
}

func reportGlueWarning(sink diagnosticSink, w GlueWarning) {
	if sink == nil {
		return
	}
	fmt.Fprintln(sink, w.String())
}
