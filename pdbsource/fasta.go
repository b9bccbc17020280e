package pdbsource

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/protein"
)

// fastaRecord is one ">name\nsequence" record.
type fastaRecord struct {
	name     string
	sequence string
}

// parseFASTA reads raw ">name"/sequence records, folding wrapped sequence
// lines into one string per record, in encounter order.
func parseFASTA(r io.Reader) ([]fastaRecord, error) {
	var records []fastaRecord
	var cur *fastaRecord
	var seq strings.Builder

	flush := func() {
		if cur != nil {
			cur.sequence = seq.String()
			records = append(records, *cur)
			seq.Reset()
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			name := strings.TrimSpace(line[1:])
			cur = &fastaRecord{name: name}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("pdbsource.ReadFASTA: sequence data before any %q header", ">")
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadFASTA parses a FASTA alignment and resolves it against proteins,
// matched by order: the i'th FASTA record is proteins[i]'s aligned
// sequence, '-' marking a gap. Fails with ErrFASTAEntryCountMismatch if the
// record count differs from len(proteins), or ErrFASTALengthMismatch if a
// record's non-gap residue count differs from its protein's residue count.
func ReadFASTA(r io.Reader, proteins []*protein.Protein) (*alignment.Alignment, error) {
	records, err := parseFASTA(r)
	if err != nil {
		return nil, err
	}
	if len(records) != len(proteins) {
		return nil, fmt.Errorf("pdbsource.ReadFASTA: %d records, %d proteins: %w", len(records), len(proteins), ErrFASTAEntryCountMismatch)
	}
	for i, rec := range records {
		if rec.sequence == "" {
			return nil, fmt.Errorf("pdbsource.ReadFASTA: record %q: %w", rec.name, ErrEmptyFASTARecord)
		}
		if nonGapCount(rec.sequence) != proteins[i].Len() {
			return nil, fmt.Errorf("pdbsource.ReadFASTA: record %q: %w", rec.name, ErrFASTALengthMismatch)
		}
	}

	rowCount := len(records[0].sequence)
	for _, rec := range records {
		if len(rec.sequence) != rowCount {
			return nil, fmt.Errorf("pdbsource.ReadFASTA: record %q has length %d, expected %d: %w", rec.name, len(rec.sequence), rowCount, ErrFASTARaggedRecords)
		}
	}

	aln, err := alignment.New(len(records))
	if err != nil {
		return nil, err
	}
	cursor := make([]int, len(records))
	for row := 0; row < rowCount; row++ {
		pos := make([]int, len(records))
		for e, rec := range records {
			if rec.sequence[row] == '-' {
				pos[e] = alignment.NoPosition
				continue
			}
			pos[e] = cursor[e]
			cursor[e]++
		}
		if err := aln.AppendRow(pos); err != nil {
			return nil, fmt.Errorf("pdbsource.ReadFASTA: row %d: %w", row, err)
		}
	}
	return aln, nil
}

// WriteFASTA writes aln as a FASTA alignment, one record per entry in
// proteins order, '-' marking a gap row for that entry.
func WriteFASTA(w io.Writer, proteins []*protein.Protein, aln *alignment.Alignment) error {
	if aln.EntryCount() != len(proteins) {
		return fmt.Errorf("pdbsource.WriteFASTA: alignment has %d entries, %d proteins: %w", aln.EntryCount(), len(proteins), ErrFASTAEntryCountMismatch)
	}
	for e, p := range proteins {
		var seq strings.Builder
		for row := 0; row < aln.RowCount(); row++ {
			pos, ok := aln.PositionAt(row, e)
			if !ok {
				seq.WriteByte('-')
				continue
			}
			res, err := p.Residue(pos)
			if err != nil {
				return err
			}
			seq.WriteByte(res.AminoAcid.Byte())
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", p.Names[0], seq.String()); err != nil {
			return err
		}
	}
	return nil
}

func nonGapCount(seq string) int {
	n := 0
	for _, c := range seq {
		if c != '-' {
			n++
		}
	}
	return n
}
