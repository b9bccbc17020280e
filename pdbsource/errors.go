package pdbsource

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrBadSSAPScoresLine marks an SSAP-scores record that does not have the
// nine whitespace-separated fields the format requires.
var ErrBadSSAPScoresLine = fmt.Errorf("pdbsource: malformed SSAP-scores line: %w", xerrors.Runtime)

// ErrBadLegacyLine marks a CATH legacy pairwise alignment line that does not
// carry exactly two residue-identifier columns.
var ErrBadLegacyLine = fmt.Errorf("pdbsource: malformed legacy alignment line: %w", xerrors.Runtime)

// ErrLegacyIndexOutOfRange marks a legacy alignment residue identifier that
// does not resolve to a position in its structure.
var ErrLegacyIndexOutOfRange = fmt.Errorf("pdbsource: legacy alignment residue out of range: %w", xerrors.OutOfRange)

// ErrFASTAEntryCountMismatch marks a FASTA alignment whose record count does
// not match the number of proteins supplied to resolve it against.
var ErrFASTAEntryCountMismatch = fmt.Errorf("pdbsource: FASTA record count does not match protein count: %w", xerrors.Runtime)

// ErrFASTALengthMismatch marks a FASTA record whose ungapped residue count
// does not match its resolving protein's residue count.
var ErrFASTALengthMismatch = fmt.Errorf("pdbsource: FASTA sequence length does not match protein: %w", xerrors.Runtime)

// ErrEmptyFASTARecord marks a FASTA record with a name line but no sequence.
var ErrEmptyFASTARecord = fmt.Errorf("pdbsource: empty FASTA record: %w", xerrors.Runtime)

// ErrFASTARaggedRecords marks a FASTA alignment whose records are not all
// the same gapped length.
var ErrFASTARaggedRecords = fmt.Errorf("pdbsource: FASTA records have mismatched lengths: %w", xerrors.Runtime)
