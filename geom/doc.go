// Package geom provides small geometry value types that print themselves
// through [geomfmt].
//
// The types only hold data and expose the read accessors the printers need.
// Every type implements [fmt.Formatter], so width, precision and flags given
// to the fmt verbs reach every scalar field:
//
//	v := geom.Vec3[float64]{1, 2, 3}
//	fmt.Printf("%3v\n", v) // (  1,   2,   3)
//
//	r := geom.Rigid3(geom.Vec3[float64]{1, 2, 3}, geom.IdentityRotation3[float64]())
//	fmt.Printf("%3v\n", r) // {(  1,   2,   3), {(  0,   0,   1),   0}}
package geom
