package geomfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Scalar is the set of numeric types a geometry value can be built from.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sink is the output stream the print operations write to. It carries the
// formatting state applied to scalar fields: a field width, an optional
// precision, a verb, and fmt flags.
//
// The width applies to the next write only. Every write resets it to zero,
// so printers re-apply the width they captured on entry before each field.
//
// A Sink is not safe for concurrent use.
type Sink struct {
	w       io.Writer
	width   int
	prec    int
	hasPrec bool
	verb    rune
	flags   string
	measure func(int)
	err     error
}

// Option configures a Sink.
type Option func(*Sink)

// WithWidth sets the initial field width.
func WithWidth(n int) Option {
	return func(s *Sink) { s.SetWidth(n) }
}

// WithPrecision sets the precision used for every scalar field.
func WithPrecision(n int) Option {
	return func(s *Sink) {
		if n < 0 {
			s.prec, s.hasPrec = 0, false
			return
		}
		s.prec, s.hasPrec = n, true
	}
}

// WithVerb sets the fmt verb used for scalar fields. Default: 'v'.
func WithVerb(verb rune) Option {
	return func(s *Sink) { s.verb = scalarVerb(verb) }
}

// WithFlags sets fmt flags for scalar fields. Only the characters "+-# 0"
// are kept.
func WithFlags(flags string) Option {
	return func(s *Sink) {
		var b strings.Builder
		for _, c := range flags {
			if strings.ContainsRune(validFlags, c) && !strings.ContainsRune(b.String(), c) {
				b.WriteRune(c)
			}
		}
		s.flags = b.String()
	}
}

const validFlags = "+-# 0"

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer, opts ...Option) *Sink {
	s := &Sink{w: w, verb: 'v'}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FormatState prints p to a fmt.State, taking width, precision and flags
// from it. It is meant to be called from a Format method:
//
//	func (v Vec3[S]) Format(f fmt.State, verb rune) { geomfmt.FormatState(f, verb, v) }
func FormatState(f fmt.State, verb rune, p Printable) {
	s := &Sink{w: f, verb: scalarVerb(verb)}
	if w, ok := f.Width(); ok {
		s.SetWidth(w)
	}
	if prec, ok := f.Precision(); ok {
		s.prec, s.hasPrec = prec, true
	}
	for _, c := range validFlags {
		if f.Flag(int(c)) {
			s.flags += string(c)
		}
	}
	p.PrintTo(s)
}

// scalarVerb maps string verbs to %v so "%s" renders numbers.
func scalarVerb(verb rune) rune {
	switch verb {
	case 's', 'q', 0:
		return 'v'
	default:
		return verb
	}
}

// Width returns the current field width.
func (s *Sink) Width() int { return s.width }

// SetWidth sets the field width for the next scalar. Negative values are
// treated as zero.
func (s *Sink) SetWidth(n int) *Sink {
	s.width = max(n, 0)
	return s
}

// Err returns the first error reported by the underlying writer.
func (s *Sink) Err() error { return s.err }

// WriteString writes text without padding and resets the field width.
func (s *Sink) WriteString(text string) *Sink {
	s.width = 0
	s.write(text)
	return s
}

// WriteScalar writes x padded to the current field width, then resets the
// width.
func WriteScalar[S Scalar](s *Sink, x S) *Sink {
	field := fmt.Sprintf(s.spec(), x)
	s.width = 0
	if s.measure != nil {
		s.measure(runewidth.StringWidth(field))
	}
	s.write(field)
	return s
}

func (s *Sink) write(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// spec builds the fmt directive for the next scalar, e.g. "%+8.3f".
func (s *Sink) spec() string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(s.flags)
	if s.width > 0 {
		b.WriteString(strconv.Itoa(s.width))
	}
	if s.hasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.prec))
	}
	b.WriteRune(s.verb)
	return b.String()
}
