package geomfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidWidth      = errors.New("invalid width")
)

// AutoWidth asks [Write] to pick the narrowest width that lines up every
// scalar field across all items.
const AutoWidth = -1

// Format represents an output format for a batch of geometry values.
type Format string

const (
	Plain Format = "plain"
	List  Format = "list"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{Plain, List, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Separator controls the delimiter between items in List format.
// Default: "; ".
type Separator interface {
	Sep() string
}

// Write renders items with the given field width and writes them to w in
// format f. Pass [AutoWidth] to align fields across items.
func Write[T Printable](w io.Writer, f Format, width int, items ...T) error {
	width, err := resolveWidth(width, items)
	if err != nil {
		return err
	}
	switch f {
	case Plain:
		return writePlain(w, width, items)
	case List:
		return writeList(w, width, items)
	case JSON:
		return writeJSON(w, width, items)
	case JSONL:
		return writeJSONL(w, width, items)
	case YAML:
		return writeYAML(w, width, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders items and returns the bytes.
func Marshal[T Printable](f Format, width int, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, width, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resolveWidth[T Printable](width int, items []T) (int, error) {
	switch {
	case width == AutoWidth:
		fit := 0
		for _, item := range items {
			fit = max(fit, FitWidth(item))
		}
		return fit, nil
	case width < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	default:
		return width, nil
	}
}

// renderAll renders every item to a string. It returns nil for no items so
// encoders produce null, matching a nil slice.
func renderAll[T Printable](width int, items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Sprint(item, WithWidth(width))
	}
	return out
}
