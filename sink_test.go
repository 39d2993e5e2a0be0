package geomfmt_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bjaus/geomfmt"
	"github.com/bjaus/geomfmt/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkWidthResetsAfterScalar(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := geomfmt.NewSink(&buf)
	geomfmt.WriteScalar(s.SetWidth(3), 1)
	assert.Equal(t, 0, s.Width())
	geomfmt.WriteScalar(s, 2)
	assert.Equal(t, "  12", buf.String())
}

func TestSinkTextIsNeverPadded(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := geomfmt.NewSink(&buf, geomfmt.WithWidth(5))
	s.WriteString("x")
	assert.Equal(t, 0, s.Width())
	geomfmt.WriteScalar(s, 1)
	assert.Equal(t, "x1", buf.String())
}

func TestSinkNegativeWidth(t *testing.T) {
	t.Parallel()
	s := geomfmt.NewSink(&bytes.Buffer{}).SetWidth(-4)
	assert.Equal(t, 0, s.Width())
}

func TestSinkOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts  []geomfmt.Option
		value geomfmt.Printable
		want  string
	}{
		"precision": {
			opts:  []geomfmt.Option{geomfmt.WithVerb('f'), geomfmt.WithPrecision(1)},
			value: geom.Vec2[float64]{1, 2.5},
			want:  "(1.0, 2.5)",
		},
		"negative precision clears": {
			opts:  []geomfmt.Option{geomfmt.WithPrecision(3), geomfmt.WithPrecision(-1)},
			value: geom.Vec2[float64]{1, 2.5},
			want:  "(1, 2.5)",
		},
		"flags filtered": {
			opts:  []geomfmt.Option{geomfmt.WithWidth(3), geomfmt.WithFlags("+x0+")},
			value: geom.Vec2[int]{1, -2},
			want:  "(+01, -02)",
		},
		"left justify": {
			opts:  []geomfmt.Option{geomfmt.WithWidth(3), geomfmt.WithFlags("-")},
			value: geom.Vec2[int]{1, 2},
			want:  "(1  , 2  )",
		},
		"string verb": {
			opts:  []geomfmt.Option{geomfmt.WithVerb('s')},
			value: geom.Vec2[int]{1, 2},
			want:  "(1, 2)",
		},
		"hex": {
			opts:  []geomfmt.Option{geomfmt.WithVerb('x')},
			value: geom.Vec2[int]{10, 255},
			want:  "(a, ff)",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, geomfmt.Sprint(tt.value, tt.opts...))
		})
	}
}

func TestSinkErrIsSticky(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 1}
	s := geomfmt.NewSink(w)
	s.WriteString("(")
	require.NoError(t, s.Err())
	geomfmt.WriteScalar(s, 1)
	require.ErrorIs(t, s.Err(), errWriteFailed)
	s.WriteString(")")
	assert.ErrorIs(t, s.Err(), errWriteFailed)
	assert.Equal(t, 1, w.calls)
}

func TestFormatState(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		value  any
		want   string
	}{
		"width":       {format: "%3v", value: geom.Vec3[int]{1, 2, 3}, want: "(  1,   2,   3)"},
		"plain":       {format: "%v", value: geom.Vec3[int]{1, 2, 3}, want: "(1, 2, 3)"},
		"string verb": {format: "%s", value: geom.Vec2[float32]{0.5, 1}, want: "(0.5, 1)"},
		"precision":   {format: "%6.2f", value: geom.Vec2[float64]{1, 2}, want: "(  1.00,   2.00)"},
		"plus":        {format: "%+v", value: geom.Vec2[int]{1, -2}, want: "(+1, -2)"},
		"zero pad":    {format: "%03d", value: geom.Vec2[int]{1, 2}, want: "(001, 002)"},
		"minus":       {format: "%-3v|", value: geom.Vec2[int]{1, 2}, want: "(1  , 2  )|"},
		"rotation 2d": {format: "%3v", value: geom.Rotation2[float64]{Angle: 1.5708}, want: "1.5708"},
		"rotation 3d": {format: "%3v", value: geom.Rotation3[float64]{Axis: geom.Vec3[float64]{0, 0, 1}, Angle: 0.5}, want: "{(  0,   0,   1), 0.5}"},
		"matrix":      {format: "%3v", value: geom.Identity[int](2), want: "{{  1,   0}, {  0,   1}}"},
		"in sentence": {format: "pose=%2v ok", value: geom.Vec2[int]{1, 2}, want: "pose=( 1,  2) ok"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.value))
		})
	}
}

func TestFormatStateDynamicWidth(t *testing.T) {
	t.Parallel()
	got := fmt.Sprintf("%*v", 4, geom.Box2(geom.Vec2[int]{0, 0}, geom.Vec2[int]{1, 1}))
	assert.Equal(t, "{(   0,    0), (   1,    1)}", got)
}
