package ssap

import "testing"

func TestAffineGapAlign_DiagonalMatchPreferred(t *testing.T) {
	scoreFn := func(p, q int) float64 {
		if p == q {
			return 1
		}
		return -1
	}
	path, total := affineGapAlign(scoreFn, 4, 4, 1, 0)
	if total != 4 {
		t.Fatalf("expected total score 4, got %v", total)
	}
	if len(path) != 4 {
		t.Fatalf("expected 4 aligned pairs, got %d", len(path))
	}
	for i, pr := range path {
		if pr.A != i || pr.B != i {
			t.Fatalf("expected diagonal pair at step %d, got %+v", i, pr)
		}
	}
}

func TestAffineGapAlign_HandlesUnequalLengthsWithGaps(t *testing.T) {
	scoreFn := func(p, q int) float64 {
		if p == q {
			return 2
		}
		return 0
	}
	path, _ := affineGapAlign(scoreFn, 3, 5, 1, 0.5)

	gaps := 0
	for _, pr := range path {
		if pr.A < 0 || pr.B < 0 {
			gaps++
		}
	}
	if gaps == 0 {
		t.Fatalf("expected at least one gap aligning lengths 3 and 5")
	}
}
