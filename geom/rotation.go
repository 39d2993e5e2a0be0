package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Rotation is implemented by [Rotation2] and [Rotation3] only. Rotations of
// any other dimension do not exist, so transformations built on them fail to
// compile rather than print something unexpected.
type Rotation interface {
	geomfmt.Printable
	rotation()
}

// Rotation2 is a rotation in the plane by Angle radians.
type Rotation2[S geomfmt.Scalar] struct {
	Angle S
}

// Rotation3 is a rotation in space by Angle radians around Axis.
type Rotation3[S geomfmt.Scalar] struct {
	Axis  Vec3[S]
	Angle S
}

// IdentityRotation2 returns the rotation by zero radians.
func IdentityRotation2[S geomfmt.Scalar]() Rotation2[S] {
	return Rotation2[S]{}
}

// IdentityRotation3 returns the rotation by zero radians around the z axis.
func IdentityRotation3[S geomfmt.Scalar]() Rotation3[S] {
	return Rotation3[S]{Axis: Vec3[S]{0, 0, 1}}
}

func (Rotation2[S]) rotation() {}
func (Rotation3[S]) rotation() {}

// PrintTo writes the bare angle.
func (r Rotation2[S]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintRotation2(s, r.Angle)
}

func (r Rotation2[S]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, r)
}

func (r Rotation2[S]) String() string {
	return geomfmt.Sprint(r)
}

// PrintTo writes r as "{axis, angle}".
func (r Rotation3[S]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintRotation3[S](s, r.Axis, r.Angle)
}

func (r Rotation3[S]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, r)
}

func (r Rotation3[S]) String() string {
	return geomfmt.Sprint(r)
}
