package linalg

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("linalg.Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("linalg.NewDense(%d,%d): %w", rows, cols, xerrors.InvalidArgument)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("index", row, col, xerrors.OutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	return cp
}

// Transpose returns a new matrix that is the transpose of m.
func (m *Dense) Transpose() *Dense {
	t, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return t
}

// Mul returns m×other. Fails with InvalidArgument on a dimension mismatch.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.c != other.r {
		return nil, fmt.Errorf("linalg.Dense.Mul: %dx%d * %dx%d: %w", m.r, m.c, other.r, other.c, xerrors.InvalidArgument)
	}
	out, _ := NewDense(m.r, other.c)
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			mik := m.data[i*m.c+k]
			if mik == 0 {
				continue
			}
			for j := 0; j < other.c; j++ {
				out.data[i*out.c+j] += mik * other.data[k*other.c+j]
			}
		}
	}
	return out, nil
}

// Add returns m+other elementwise.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("linalg.Dense.Add: %w", xerrors.InvalidArgument)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out, nil
}

// Sub returns m-other elementwise.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("linalg.Dense.Sub: %w", xerrors.InvalidArgument)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= other.data[i]
	}
	return out, nil
}
