package ssap

import (
	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/viewcache"
)

// maxContextScore is ContextScore(0, cfg), the highest value the formula can
// return, used to normalize residue scores into [0,1].
func maxContextScore(cfg Config) float64 {
	if cfg.Formula == Linear {
		return cfg.A
	}
	return cfg.A / cfg.B
}

// ResidueScores computes, for each row of aln, a [0,1] reliability score:
// for every pair of structures present at that row, it sums the context
// score between their view vectors over every other row where both
// structures are also present, divides by the formula's maximum value times
// the number of co-present rows, and averages that over all structure
// pairs present at the row. A row with fewer than two structures present
// scores 0.
func ResidueScores(aln *alignment.Alignment, caches []*viewcache.Cache, cfg Config) ([]float64, error) {
	maxS := maxContextScore(cfg)
	if maxS <= 0 {
		return nil, errBadConfig
	}

	n, entries := aln.RowCount(), aln.EntryCount()
	out := make([]float64, n)
	for row := 0; row < n; row++ {
		var present []int
		for e := 0; e < entries; e++ {
			if _, ok := aln.PositionAt(row, e); ok {
				present = append(present, e)
			}
		}
		if len(present) < 2 {
			continue
		}

		var pairSum float64
		pairCount := 0
		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				e1, e2 := present[i], present[j]
				p1, _ := aln.PositionAt(row, e1)
				q1, _ := aln.PositionAt(row, e2)

				var sum float64
				count := 0
				for other := 0; other < n; other++ {
					if other == row {
						continue
					}
					p2, ok1 := aln.PositionAt(other, e1)
					q2, ok2 := aln.PositionAt(other, e2)
					if !ok1 || !ok2 {
						continue
					}
					vA, err := caches[e1].View(p1, p2)
					if err != nil {
						return nil, err
					}
					vB, err := caches[e2].View(q1, q2)
					if err != nil {
						return nil, err
					}
					sum += ContextScore(vA.SquaredDistance(vB), cfg)
					count++
				}
				if count > 0 {
					pairSum += sum / (maxS * float64(count))
					pairCount++
				}
			}
		}
		if pairCount > 0 {
			out[row] = pairSum / float64(pairCount)
		}
	}
	return out, nil
}
