// Package geomfmt renders geometry values as compact, delimiter-bracketed
// text for logs and diagnostics.
//
// There is one print operation per kind of value. Composite values are
// printed by delegating to the operations of their parts:
//
//   - [PrintVector] → (v0, v1, v2)
//   - [PrintBox] → {min, max}
//   - [PrintPlane] → {normal, offset}
//   - [PrintMatrix] → {{m00, m01}, {m10, m11}}
//   - [PrintRotation2] → angle
//   - [PrintRotation3] → {axis, angle}
//   - [PrintRigid] → {translation, rotation}
//   - [PrintSimilarity] → {translation, rotation, scaling}
//   - [PrintAffine], [PrintProjective] → the matrix form
//
// The delimiters are fixed. There is no parser.
//
// # Field Width
//
// Every operation writes to a [Sink]. The sink's field width pads the next
// scalar and is then reset. Each operation reads the width once on entry and
// re-applies it before every field, so a width set before a top-level call
// reaches every scalar, however deeply nested:
//
//	s := geomfmt.NewSink(os.Stdout, geomfmt.WithWidth(3))
//	geomfmt.PrintVector[int](s, geom.Vec3[int]{1, 2, 3}) // (  1,   2,   3)
//
// Delimiters and separators are never padded.
//
// # fmt Integration
//
// Value types call [FormatState] from their Format method, so fmt verbs
// carry width, precision and flags into the sink:
//
//	fmt.Printf("%6.2f", geom.Vec2[float64]{1, 2}) // (  1.00,   2.00)
//
// The geom subpackage provides such types.
//
// # Batches
//
// [Write] and [Marshal] render several values at once in one of the
// [Format] constants. [WriteIter] and [WriteChan] stream values as they
// arrive. Pass [AutoWidth] to pick the narrowest width that lines up every
// field across items (see [FitWidth]).
//
// # Errors
//
// Printing cannot fail except through the underlying writer. A [Sink]
// records the first write error and skips later writes; [Sink.Err] and
// [Fprint] return it unchanged. The package also exports sentinel errors:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidWidth]: negative width other than [AutoWidth]
package geomfmt
