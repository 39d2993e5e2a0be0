package geomfmt

import (
	"io"
	"strings"
)

// Vector is a fixed-size ordered sequence of scalars.
type Vector[S Scalar] interface {
	Dimension() int
	Component(i int) S
}

// Matrix is a fixed-size grid of scalars addressed by row and column.
type Matrix[S Scalar] interface {
	Rows() int
	Columns() int
	At(i, j int) S
}

// Printable is implemented by values that know which print operation renders
// them. Transformations use it to print their rotation, whose form depends on
// its dimension.
type Printable interface {
	PrintTo(s *Sink)
}

// PrintVector writes v as "(v0, v1, ..., vN-1)".
func PrintVector[S Scalar](s *Sink, v Vector[S]) *Sink {
	width := s.Width()
	s.WriteString("(")
	for i := range v.Dimension() {
		if i > 0 {
			s.WriteString(", ")
		}
		WriteScalar(s.SetWidth(width), v.Component(i))
	}
	return s.WriteString(")")
}

// PrintBox writes a box with corners lo and hi as "{lo, hi}".
func PrintBox[S Scalar](s *Sink, lo, hi Vector[S]) *Sink {
	width := s.Width()
	s.WriteString("{")
	PrintVector(s.SetWidth(width), lo)
	s.WriteString(", ")
	PrintVector(s.SetWidth(width), hi)
	return s.WriteString("}")
}

// PrintPlane writes a plane as "{normal, offset}".
func PrintPlane[S Scalar](s *Sink, normal Vector[S], offset S) *Sink {
	width := s.Width()
	s.WriteString("{")
	PrintVector(s.SetWidth(width), normal)
	s.WriteString(", ")
	WriteScalar(s.SetWidth(width), offset)
	return s.WriteString("}")
}

// PrintMatrix writes m row by row as "{{m00, m01}, {m10, m11}}".
func PrintMatrix[S Scalar](s *Sink, m Matrix[S]) *Sink {
	width := s.Width()
	s.WriteString("{")
	for i := range m.Rows() {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString("{")
		for j := range m.Columns() {
			if j > 0 {
				s.WriteString(", ")
			}
			WriteScalar(s.SetWidth(width), m.At(i, j))
		}
		s.WriteString("}")
	}
	return s.WriteString("}")
}

// PrintRotation2 writes a planar rotation as its bare angle, padded to the
// current width.
func PrintRotation2[S Scalar](s *Sink, angle S) *Sink {
	return WriteScalar(s, angle)
}

// PrintRotation3 writes a spatial rotation as "{axis, angle}".
func PrintRotation3[S Scalar](s *Sink, axis Vector[S], angle S) *Sink {
	width := s.Width()
	s.WriteString("{")
	PrintVector(s.SetWidth(width), axis)
	s.WriteString(", ")
	WriteScalar(s.SetWidth(width), angle)
	return s.WriteString("}")
}

// PrintRigid writes a rigid (orthonormal) transformation as
// "{translation, rotation}".
func PrintRigid[S Scalar](s *Sink, translation Vector[S], rotation Printable) *Sink {
	width := s.Width()
	s.WriteString("{")
	PrintVector(s.SetWidth(width), translation)
	s.WriteString(", ")
	rotation.PrintTo(s.SetWidth(width))
	return s.WriteString("}")
}

// PrintSimilarity writes an orthogonal transformation as
// "{translation, rotation, scaling}". All three fields share one brace pair.
func PrintSimilarity[S Scalar](s *Sink, translation Vector[S], rotation Printable, scaling S) *Sink {
	width := s.Width()
	s.WriteString("{")
	PrintVector(s.SetWidth(width), translation)
	s.WriteString(", ")
	rotation.PrintTo(s.SetWidth(width))
	s.WriteString(", ")
	WriteScalar(s.SetWidth(width), scaling)
	return s.WriteString("}")
}

// PrintAffine writes an affine transformation as its homogeneous matrix.
func PrintAffine[S Scalar](s *Sink, m Matrix[S]) *Sink {
	return PrintMatrix(s, m)
}

// PrintProjective writes a projective transformation as its homogeneous
// matrix.
func PrintProjective[S Scalar](s *Sink, m Matrix[S]) *Sink {
	return PrintMatrix(s, m)
}

// Fprint writes p to w and returns the first write error.
func Fprint(w io.Writer, p Printable, opts ...Option) error {
	s := NewSink(w, opts...)
	p.PrintTo(s)
	return s.Err()
}

// Sprint returns p rendered as a string.
func Sprint(p Printable, opts ...Option) string {
	var b strings.Builder
	_ = Fprint(&b, p, opts...)
	return b.String()
}

// FitWidth returns the width of the widest scalar field of p when printed
// without padding. Printing p with that width lines up every field.
func FitWidth(p Printable, opts ...Option) int {
	widest := 0
	s := NewSink(io.Discard, opts...)
	s.SetWidth(0)
	s.measure = func(n int) { widest = max(widest, n) }
	p.PrintTo(s)
	return widest
}
