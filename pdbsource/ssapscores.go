package pdbsource

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SSAPScoreRecord is one line of an SSAP-scores file: a precomputed
// pairwise comparison result, used to seed a spanning tree without
// re-running the pairwise aligner.
type SSAPScoreRecord struct {
	NameA, NameB     string
	LengthA, LengthB int
	SSAPScore        float64
	NumAligned       int
	RMSD             float64
	SeqID            float64
	Overlap          float64
}

// ReadSSAPScores parses an SSAP-scores file: one record per line,
// whitespace-separated, "name_a name_b length_a length_b ssap_score
// num_aligned rmsd seq_id overlap". Blank lines are skipped. A malformed
// line fails with ErrBadSSAPScoresLine, the offending line included.
func ReadSSAPScores(r io.Reader) ([]SSAPScoreRecord, error) {
	var out []SSAPScoreRecord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 9 {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}

		rec := SSAPScoreRecord{NameA: fields[0], NameB: fields[1]}
		var err error
		if rec.LengthA, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.LengthB, err = strconv.Atoi(fields[3]); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.SSAPScore, err = strconv.ParseFloat(fields[4], 64); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.NumAligned, err = strconv.Atoi(fields[5]); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.RMSD, err = strconv.ParseFloat(fields[6], 64); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.SeqID, err = strconv.ParseFloat(fields[7], 64); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		if rec.Overlap, err = strconv.ParseFloat(fields[8], 64); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadSSAPScores: line %d %q: %w", lineNo, line, ErrBadSSAPScoresLine)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteSSAPScores writes records in the same whitespace-separated format
// ReadSSAPScores accepts.
func WriteSSAPScores(w io.Writer, records []SSAPScoreRecord) error {
	for _, rec := range records {
		_, err := fmt.Fprintf(w, "%s %s %d %d %g %d %g %g %g\n",
			rec.NameA, rec.NameB, rec.LengthA, rec.LengthB, rec.SSAPScore,
			rec.NumAligned, rec.RMSD, rec.SeqID, rec.Overlap)
		if err != nil {
			return err
		}
	}
	return nil
}
