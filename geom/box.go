package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Box is an axis-aligned box spanned by two corners.
type Box[S geomfmt.Scalar, V geomfmt.Vector[S]] struct {
	Min V
	Max V
}

// Box2 returns the planar box spanning lo and hi.
func Box2[S geomfmt.Scalar](lo, hi Vec2[S]) Box[S, Vec2[S]] {
	return Box[S, Vec2[S]]{Min: lo, Max: hi}
}

// Box3 returns the spatial box spanning lo and hi.
func Box3[S geomfmt.Scalar](lo, hi Vec3[S]) Box[S, Vec3[S]] {
	return Box[S, Vec3[S]]{Min: lo, Max: hi}
}

// PrintTo writes b as "{min, max}".
func (b Box[S, V]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintBox[S](s, b.Min, b.Max)
}

func (b Box[S, V]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, b)
}

func (b Box[S, V]) String() string {
	return geomfmt.Sprint(b)
}
