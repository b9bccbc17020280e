package protein

import (
	"math"

	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/linalg"
	"github.com/katalvlaran/strucalign/residue"
)

// Segment is a canonical secondary-structure segment: an inclusive residue
// index range of a single non-coil class, its midpoint and unit direction
// fitted by principal-axis regression, and the planar angles to every other
// segment in the same protein.
type Segment struct {
	Start, Stop int
	Class       residue.SecondaryStructureClass
	Midpoint    geom.Coord
	Direction   geom.Coord

	// AnglesToOthers[j] is the planar angle (radians, in [0,π]) between this
	// segment's direction and the segment at index j of the owning
	// Protein's Segments slice. Populated by FitSegments.
	AnglesToOthers []float64
}

// minSegmentLength is the minimum run length (in residues) eligible for
// segment fitting.
const minSegmentLength = 4

// prosecAxisPoint returns the "prosec axis point" for residue i: a
// weighted blend of its own Cα and the midpoint of its neighbours,
// smoothing local backbone wobble before line fitting.
func prosecAxisPoint(residues []residue.Residue, i int) geom.Coord {
	ca := residues[i].CA
	if i == 0 || i == len(residues)-1 {
		return ca
	}
	neighbourMid := residues[i-1].CA.Add(residues[i+1].CA).Scale(0.5)
	const selfWeight = 0.6
	return ca.Scale(selfWeight).Add(neighbourMid.Scale(1 - selfWeight))
}

// fitLine fits a line of best fit through pts via PCA: the mean point and
// the dominant eigenvector of the points' scatter matrix.
func fitLine(pts []geom.Coord) (mean, direction geom.Coord, err error) {
	n := len(pts)
	for _, p := range pts {
		mean = mean.Add(p)
	}
	mean = mean.Scale(1 / float64(n))

	scatter, dErr := linalg.NewDense(3, 3)
	if dErr != nil {
		return geom.Coord{}, geom.Coord{}, dErr
	}
	for _, p := range pts {
		d := p.Sub(mean)
		comps := [3]float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v, _ := scatter.At(i, j)
				scatter.Set(i, j, v+comps[i]*comps[j])
			}
		}
	}

	vals, vecs, eErr := linalg.Eigen(scatter, 1e-12, 200)
	if eErr != nil {
		return geom.Coord{}, geom.Coord{}, eErr
	}

	// Eigen returns ascending eigenvalues; the dominant axis is the last column.
	_ = vals
	lastCol := 2
	vx, _ := vecs.At(0, lastCol)
	vy, _ := vecs.At(1, lastCol)
	vz, _ := vecs.At(2, lastCol)
	dir, nErr := geom.Coord{X: vx, Y: vy, Z: vz}.Normalize()
	if nErr != nil {
		return geom.Coord{}, geom.Coord{}, nErr
	}
	return mean, dir, nil
}

// FitSegments scans residues for runs of length >= minSegmentLength of a
// single non-coil class, fits each into a Segment, and populates pairwise
// AnglesToOthers across the resulting slice.
func FitSegments(residues []residue.Residue) ([]Segment, error) {
	var segments []Segment

	runStart := 0
	for i := 1; i <= len(residues); i++ {
		boundary := i == len(residues) || residues[i].SecStruc != residues[runStart].SecStruc
		if boundary {
			class := residues[runStart].SecStruc
			length := i - runStart
			if class != residue.Coil && length >= minSegmentLength {
				pts := make([]geom.Coord, length)
				for k := 0; k < length; k++ {
					pts[k] = prosecAxisPoint(residues, runStart+k)
				}
				mean, dir, err := fitLine(pts)
				if err != nil {
					return nil, err
				}
				segments = append(segments, Segment{
					Start:     runStart,
					Stop:      i - 1,
					Class:     class,
					Midpoint:  mean,
					Direction: dir,
				})
			}
			runStart = i
		}
	}

	for a := range segments {
		segments[a].AnglesToOthers = make([]float64, len(segments))
		for b := range segments {
			if a == b {
				continue
			}
			cosTheta := segments[a].Direction.Dot(segments[b].Direction)
			if cosTheta > 1 {
				cosTheta = 1
			}
			if cosTheta < -1 {
				cosTheta = -1
			}
			segments[a].AnglesToOthers[b] = math.Acos(cosTheta)
		}
	}

	return segments, nil
}
