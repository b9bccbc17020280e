package pdbsource

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/strucalign/alignment"
)

// ReadLegacyPairAlignment parses the CATH legacy two-column pairwise
// alignment text format: one line per aligned row, each carrying two
// residue identifiers (1-based index into protA's and protB's residue
// lists respectively), "0" marking a gap in that structure's column.
// Blank lines are skipped. lenA and lenB bound valid identifiers and are
// typically protA.Len() and protB.Len(); a line whose identifier exceeds
// its bound fails with ErrLegacyIndexOutOfRange.
func ReadLegacyPairAlignment(r io.Reader, lenA, lenB int) (*alignment.Alignment, error) {
	aln, err := alignment.New(2)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("pdbsource.ReadLegacyPairAlignment: line %d %q: %w", lineNo, line, ErrBadLegacyLine)
		}

		posA, err := legacyPosition(fields[0], lenA)
		if err != nil {
			return nil, fmt.Errorf("pdbsource.ReadLegacyPairAlignment: line %d %q: %w", lineNo, line, err)
		}
		posB, err := legacyPosition(fields[1], lenB)
		if err != nil {
			return nil, fmt.Errorf("pdbsource.ReadLegacyPairAlignment: line %d %q: %w", lineNo, line, err)
		}

		if err := aln.AppendRow([]int{posA, posB}); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadLegacyPairAlignment: line %d %q: %w", lineNo, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return aln, nil
}

// legacyPosition converts a one-based legacy identifier ("0" for a gap) to
// alignment.NoPosition or a zero-based residue index.
func legacyPosition(field string, length int) (int, error) {
	if field == "0" || field == "-" {
		return alignment.NoPosition, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, ErrBadLegacyLine
	}
	pos := n - 1
	if pos < 0 || pos >= length {
		return 0, ErrLegacyIndexOutOfRange
	}
	return pos, nil
}
