package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Vec2 is a two-component vector or point.
type Vec2[S geomfmt.Scalar] [2]S

// Vec3 is a three-component vector or point.
type Vec3[S geomfmt.Scalar] [3]S

// Vec4 is a four-component vector or homogeneous point.
type Vec4[S geomfmt.Scalar] [4]S

// Dimension returns the number of components.
func (v Vec2[S]) Dimension() int { return len(v) }

// Component returns the i-th component.
func (v Vec2[S]) Component(i int) S { return v[i] }

// PrintTo writes v as "(x, y, ...)".
func (v Vec2[S]) PrintTo(s *geomfmt.Sink) { geomfmt.PrintVector[S](s, v) }

// Format implements [fmt.Formatter].
func (v Vec2[S]) Format(f fmt.State, verb rune) { geomfmt.FormatState(f, verb, v) }

func (v Vec2[S]) String() string { return geomfmt.Sprint(v) }

func (v Vec3[S]) Dimension() int                { return len(v) }
func (v Vec3[S]) Component(i int) S             { return v[i] }
func (v Vec3[S]) PrintTo(s *geomfmt.Sink)       { geomfmt.PrintVector[S](s, v) }
func (v Vec3[S]) Format(f fmt.State, verb rune) { geomfmt.FormatState(f, verb, v) }
func (v Vec3[S]) String() string                { return geomfmt.Sprint(v) }

func (v Vec4[S]) Dimension() int                { return len(v) }
func (v Vec4[S]) Component(i int) S             { return v[i] }
func (v Vec4[S]) PrintTo(s *geomfmt.Sink)       { geomfmt.PrintVector[S](s, v) }
func (v Vec4[S]) Format(f fmt.State, verb rune) { geomfmt.FormatState(f, verb, v) }
func (v Vec4[S]) String() string                { return geomfmt.Sprint(v) }
