package geom

import "github.com/katalvlaran/strucalign/linalg"

// rowsToDense copies r's three row vectors into a 3x3 linalg.Dense, used
// only as scratch input to linalg.QR.
func rowsToDense(r Rotation) (*linalg.Dense, error) {
	m, err := linalg.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	rows := [3]Coord{r.row[0], r.row[1], r.row[2]}
	for i, row := range rows {
		if err := m.Set(i, 0, row.X); err != nil {
			return nil, err
		}
		if err := m.Set(i, 1, row.Y); err != nil {
			return nil, err
		}
		if err := m.Set(i, 2, row.Z); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// denseToRows reads a 3x3 linalg.Dense back into a Rotation.
func denseToRows(m *linalg.Dense) (Rotation, error) {
	var rows [3]Coord
	for i := 0; i < 3; i++ {
		x, err := m.At(i, 0)
		if err != nil {
			return Rotation{}, err
		}
		y, err := m.At(i, 1)
		if err != nil {
			return Rotation{}, err
		}
		z, err := m.At(i, 2)
		if err != nil {
			return Rotation{}, err
		}
		rows[i] = Coord{X: x, Y: y, Z: z}
	}
	return Rotation{row: rows}, nil
}

func qrDecompose(m *linalg.Dense) (q, r *linalg.Dense, err error) {
	return linalg.QR(m)
}
