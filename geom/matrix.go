package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Matrix is a dense rows×columns matrix stored in row-major order. A Matrix
// is read-only once built; copies share storage.
type Matrix[S geomfmt.Scalar] struct {
	rows, cols int
	data       []S
}

// NewMatrix returns a rows×cols matrix holding entries in row-major order.
// With no entries the matrix is zero. Any other entry count that differs
// from rows*cols panics.
func NewMatrix[S geomfmt.Scalar](rows, cols int, entries ...S) Matrix[S] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("geom: invalid matrix size %dx%d", rows, cols))
	}
	data := make([]S, rows*cols)
	if len(entries) > 0 {
		if len(entries) != len(data) {
			panic(fmt.Sprintf("geom: %d entries for %dx%d matrix", len(entries), rows, cols))
		}
		copy(data, entries)
	}
	return Matrix[S]{rows: rows, cols: cols, data: data}
}

// Identity returns the n×n identity matrix.
func Identity[S geomfmt.Scalar](n int) Matrix[S] {
	return identity[S](n, n)
}

// identity returns a rows×cols matrix with ones on the main diagonal.
func identity[S geomfmt.Scalar](rows, cols int) Matrix[S] {
	m := NewMatrix[S](rows, cols)
	for i := range min(rows, cols) {
		m.data[i*cols+i] = 1
	}
	return m
}

func (m Matrix[S]) Rows() int    { return m.rows }
func (m Matrix[S]) Columns() int { return m.cols }

// At returns the entry in row i, column j.
func (m Matrix[S]) At(i, j int) S {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("geom: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// PrintTo writes m as "{{row0}, {row1}, ...}".
func (m Matrix[S]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintMatrix[S](s, m)
}

func (m Matrix[S]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, m)
}

func (m Matrix[S]) String() string {
	return geomfmt.Sprint(m)
}
