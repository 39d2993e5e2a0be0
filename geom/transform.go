package geom

import (
	"fmt"

	"github.com/bjaus/geomfmt"
)

// Rigid is an orthonormal transformation: a rotation followed by a
// translation.
type Rigid[S geomfmt.Scalar, V geomfmt.Vector[S], R Rotation] struct {
	Translation V
	Rotation    R
}

// Rigid2 returns the planar rigid transformation.
func Rigid2[S geomfmt.Scalar](translation Vec2[S], rotation Rotation2[S]) Rigid[S, Vec2[S], Rotation2[S]] {
	return Rigid[S, Vec2[S], Rotation2[S]]{Translation: translation, Rotation: rotation}
}

// Rigid3 returns the spatial rigid transformation.
func Rigid3[S geomfmt.Scalar](translation Vec3[S], rotation Rotation3[S]) Rigid[S, Vec3[S], Rotation3[S]] {
	return Rigid[S, Vec3[S], Rotation3[S]]{Translation: translation, Rotation: rotation}
}

// PrintTo writes t as "{translation, rotation}".
func (t Rigid[S, V, R]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintRigid[S](s, t.Translation, t.Rotation)
}

func (t Rigid[S, V, R]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, t)
}

func (t Rigid[S, V, R]) String() string {
	return geomfmt.Sprint(t)
}

// Similarity is an orthogonal transformation: a uniform scaling, then a
// rotation, then a translation.
type Similarity[S geomfmt.Scalar, V geomfmt.Vector[S], R Rotation] struct {
	Translation V
	Rotation    R
	Scaling     S
}

// Similarity2 returns the planar similarity transformation.
func Similarity2[S geomfmt.Scalar](translation Vec2[S], rotation Rotation2[S], scaling S) Similarity[S, Vec2[S], Rotation2[S]] {
	return Similarity[S, Vec2[S], Rotation2[S]]{Translation: translation, Rotation: rotation, Scaling: scaling}
}

// Similarity3 returns the spatial similarity transformation.
func Similarity3[S geomfmt.Scalar](translation Vec3[S], rotation Rotation3[S], scaling S) Similarity[S, Vec3[S], Rotation3[S]] {
	return Similarity[S, Vec3[S], Rotation3[S]]{Translation: translation, Rotation: rotation, Scaling: scaling}
}

// PrintTo writes t as "{translation, rotation, scaling}".
func (t Similarity[S, V, R]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintSimilarity[S](s, t.Translation, t.Rotation, t.Scaling)
}

func (t Similarity[S, V, R]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, t)
}

func (t Similarity[S, V, R]) String() string {
	return geomfmt.Sprint(t)
}

// Affine is an affine transformation of dimension d, held as the upper
// d×(d+1) part of its homogeneous matrix.
type Affine[S geomfmt.Scalar] struct {
	m Matrix[S]
}

// NewAffine returns the affine transformation of dimension dim whose
// d×(d+1) matrix holds entries in row-major order.
func NewAffine[S geomfmt.Scalar](dim int, entries ...S) Affine[S] {
	return Affine[S]{m: NewMatrix(dim, dim+1, entries...)}
}

// IdentityAffine returns the identity transformation of dimension dim.
func IdentityAffine[S geomfmt.Scalar](dim int) Affine[S] {
	return Affine[S]{m: identity[S](dim, dim+1)}
}

func (t Affine[S]) Dimension() int    { return t.m.Rows() }
func (t Affine[S]) Matrix() Matrix[S] { return t.m }

// PrintTo writes the matrix of t.
func (t Affine[S]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintAffine[S](s, t.m)
}

func (t Affine[S]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, t)
}

func (t Affine[S]) String() string {
	return geomfmt.Sprint(t)
}

// Projective is a projective transformation of dimension d, held as its
// (d+1)×(d+1) homogeneous matrix.
type Projective[S geomfmt.Scalar] struct {
	m Matrix[S]
}

// NewProjective returns the projective transformation of dimension dim whose
// homogeneous matrix holds entries in row-major order.
func NewProjective[S geomfmt.Scalar](dim int, entries ...S) Projective[S] {
	return Projective[S]{m: NewMatrix(dim+1, dim+1, entries...)}
}

// IdentityProjective returns the identity transformation of dimension dim.
func IdentityProjective[S geomfmt.Scalar](dim int) Projective[S] {
	return Projective[S]{m: Identity[S](dim + 1)}
}

func (t Projective[S]) Dimension() int    { return t.m.Rows() - 1 }
func (t Projective[S]) Matrix() Matrix[S] { return t.m }

// PrintTo writes the homogeneous matrix of t.
func (t Projective[S]) PrintTo(s *geomfmt.Sink) {
	geomfmt.PrintProjective[S](s, t.m)
}

func (t Projective[S]) Format(f fmt.State, verb rune) {
	geomfmt.FormatState(f, verb, t)
}

func (t Projective[S]) String() string {
	return geomfmt.Sprint(t)
}
