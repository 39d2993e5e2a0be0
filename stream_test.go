package geomfmt_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/bjaus/geomfmt"
	"github.com/bjaus/geomfmt/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format geomfmt.Format
		width  int
		items  []geom.Vec2[int]
		want   string
	}{
		"plain":      {format: geomfmt.Plain, width: 2, items: pairs, want: "( 1,  2)\n( 3,  4)\n"},
		"jsonl":      {format: geomfmt.JSONL, items: pairs, want: "\"(1, 2)\"\n\"(3, 4)\"\n"},
		"json":       {format: geomfmt.JSON, items: pairs, want: `["(1, 2)","(3, 4)"]` + "\n"},
		"json empty": {format: geomfmt.JSON, want: "[]\n"},
		"list":       {format: geomfmt.List, items: pairs, want: "(1, 2); (3, 4)\n"},
		"list empty": {format: geomfmt.List, want: ""},
		"auto width": {format: geomfmt.JSONL, width: geomfmt.AutoWidth, items: []geom.Vec2[int]{{1, 2}, {30, 4}}, want: "\"( 1,  2)\"\n\"(30,  4)\"\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := geomfmt.WriteIter(&buf, tt.format, tt.width, slices.Values(tt.items))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteIterYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := geomfmt.WriteIter(&buf, geomfmt.YAML, 0, slices.Values(pairs))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(3, 4)")
}

func TestWriteIterErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := geomfmt.WriteIter(&buf, geomfmt.Format("csv"), 0, slices.Values(pairs))
	require.ErrorIs(t, err, geomfmt.ErrUnsupportedFormat)

	err = geomfmt.WriteIter(&buf, geomfmt.Plain, -3, slices.Values(pairs))
	require.ErrorIs(t, err, geomfmt.ErrInvalidWidth)
	assert.Empty(t, buf.String())
}

func TestWriteIterWriterError(t *testing.T) {
	t.Parallel()
	for _, f := range []geomfmt.Format{geomfmt.Plain, geomfmt.JSON, geomfmt.JSONL} {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := geomfmt.WriteIter(&errWriter{}, f, 0, slices.Values(pairs))
			assert.ErrorIs(t, err, errWriteFailed)
		})
	}
}

func TestWriteIterJSONFailsBetweenElements(t *testing.T) {
	t.Parallel()
	// "[", first element, then the comma fails.
	w := &failAfterN{n: 2}
	err := geomfmt.WriteIter(w, geomfmt.JSON, 0, slices.Values(pairs))
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan geom.Rotation3[float64], 2)
	ch <- geom.IdentityRotation3[float64]()
	ch <- geom.Rotation3[float64]{Axis: geom.Vec3[float64]{1, 0, 0}, Angle: 0.5}
	close(ch)
	var buf bytes.Buffer
	err := geomfmt.WriteChan(&buf, geomfmt.Plain, 3, ch)
	require.NoError(t, err)
	assert.Equal(t, "{(  0,   0,   1),   0}\n{(  1,   0,   0), 0.5}\n", buf.String())
}
