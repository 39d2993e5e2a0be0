package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Plane is the set of points p with dot(Normal, p) == Offset. The normal is
// not required to be unit length.
type Plane[S geomfmt.Scalar, V geomfmt.Vector[S]] struct {
	Normal V
	Offset S
}

// Plane2 returns the line in the plane with the given normal and offset.
func Plane2[S geomfmt.Scalar](normal Vec2[S], offset S) Plane[S, Vec2[S]] {
	return Plane[S, Vec2[S]]{Normal: normal, Offset: offset}
}

// Plane3 returns the plane in space with the given normal and offset.
func Plane3[S geomfmt.Scalar](normal Vec3[S], offset S) Plane[S, Vec3[S]] {
	return Plane[S, Vec3[S]]{Normal: normal, Offset: offset}
}

// PrintTo writes p as "{normal, offset}".
func (p Plane[S, V]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintPlane[S](s, p.Normal, p.Offset)
}

func (p Plane[S, V]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, p)
}

func (p Plane[S, V]) String() string {
	return geomfmt.Sprint(p)
}
