package viewcache

import (
	"fmt"

	"github.com/katalvlaran/strucalign/fingerprint"
	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/xerrors"
)

// Cache holds the dense N×N view matrix for one protein, plus the content
// fingerprint it was built from so callers can detect a stale cache without
// recomputing it.
type Cache struct {
	n           int
	views       []geom.Coord // row-major, views[i*n+j] == view(i->j)
	Fingerprint string
}

// Build constructs the view cache for p: for every ordered pair (i,j),
// view(i,j) = rotate(inv(frame_i), Cβ_j - Cβ_i).
func Build(p *protein.Protein) (*Cache, error) {
	n := p.Len()
	residues := p.Residues()

	views := make([]geom.Coord, n*n)
	for i := 0; i < n; i++ {
		inv := residues[i].Frame.Transpose()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			delta := residues[j].CBeta.Sub(residues[i].CBeta)
			views[i*n+j] = inv.Apply(delta)
		}
	}

	return &Cache{n: n, views: views, Fingerprint: fingerprint.OfProtein(p)}, nil
}

// View returns the cached view vector for the ordered pair (i,j). Fails
// with OutOfRange when either index is outside [0, N).
func (c *Cache) View(i, j int) (geom.Coord, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return geom.Coord{}, fmt.Errorf("viewcache.View(%d,%d): %w", i, j, xerrors.OutOfRange)
	}
	return c.views[i*c.n+j], nil
}

// Len returns the protein's residue count the cache was built for.
func (c *Cache) Len() int { return c.n }

// Stale reports whether fp no longer matches the fingerprint the cache was
// built from.
func (c *Cache) Stale(fp string) bool { return fp != c.Fingerprint }
