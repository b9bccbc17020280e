package ssap

import (
	"github.com/katalvlaran/strucalign/dtw"
	"github.com/katalvlaran/strucalign/protein"
)

// QuickScreenScore cheaply estimates how comparable two proteins' backbones
// are before a full pairwise Align: it runs dynamic time warping over their
// raw phi-angle sequences (in radians) and returns the resulting distance,
// lower meaning more similar. Intended as a pre-screen to skip full SSAP
// comparisons between structures that clearly do not match, not as a
// substitute for it.
func QuickScreenScore(pa, pb *protein.Protein) (float64, error) {
	a := phiSequence(pa)
	b := phiSequence(pb)

	opts := dtw.DefaultOptions()
	dist, _, err := dtw.DTW(a, b, &opts)
	if err != nil {
		return 0, err
	}
	return dist, nil
}

func phiSequence(p *protein.Protein) []float64 {
	residues := p.Residues()
	out := make([]float64, len(residues))
	for i, r := range residues {
		out[i] = r.Phi.Radians()
	}
	return out
}
