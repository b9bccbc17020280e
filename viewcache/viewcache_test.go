package viewcache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/residue"
	"github.com/katalvlaran/strucalign/viewcache"
)

func straightChain(n int) *protein.Protein {
	residues := make([]residue.Residue, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 3.8
		r, err := residue.NewBuilder(residue.ID{ChainLabel: 'A', SequenceNumber: i + 1}, 'A', residue.Coil).
			WithBackbone(
				geom.Coord{X: x + 1, Y: 0, Z: 0},
				geom.Coord{X: x, Y: 0, Z: 0},
				geom.Coord{X: x, Y: 1, Z: 0},
				geom.Coord{X: x, Y: 1, Z: 1},
			).Build()
		if err != nil {
			panic(err)
		}
		residues[i] = r
	}
	p, err := protein.New([]string{"t"}, residues)
	if err != nil {
		panic(err)
	}
	return p
}

func TestBuild_SelfViewIsZero(t *testing.T) {
	p := straightChain(5)
	c, err := viewcache.Build(p)
	require.NoError(t, err)

	v, err := c.View(2, 2)
	require.NoError(t, err)
	require.Equal(t, geom.Coord{}, v)
}

func TestBuild_OutOfRange(t *testing.T) {
	p := straightChain(3)
	c, err := viewcache.Build(p)
	require.NoError(t, err)

	_, err = c.View(10, 0)
	require.Error(t, err)
}

func TestBuild_ViewMagnitudeMatchesCBetaDistance(t *testing.T) {
	p := straightChain(5)
	c, err := viewcache.Build(p)
	require.NoError(t, err)

	r0, _ := p.Residue(0)
	r1, _ := p.Residue(1)
	want := r0.CBeta.Distance(r1.CBeta)

	v, err := c.View(0, 1)
	require.NoError(t, err)
	require.InDelta(t, want, v.Length(), 1e-6)
}

func TestStale_DetectsFingerprintMismatch(t *testing.T) {
	p := straightChain(4)
	c, err := viewcache.Build(p)
	require.NoError(t, err)
	require.True(t, c.Stale("not-the-real-fingerprint"))
	require.False(t, c.Stale(c.Fingerprint))
}
