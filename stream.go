package geomfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
)

// WriteIter renders items from an iterator and writes them to w as they
// arrive. Plain and JSONL write each item immediately and JSON streams array
// elements. List, YAML and [AutoWidth] need every item up front, so items are
// collected into a slice first.
func WriteIter[T Printable](w io.Writer, f Format, width int, seq iter.Seq[T]) error {
	if width == AutoWidth {
		return streamCollect(w, f, width, seq)
	}
	if width < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	switch f {
	case Plain:
		return streamPlain(w, width, seq)
	case JSONL:
		return streamJSONL(w, width, seq)
	case JSON:
		return streamJSON(w, width, seq)
	case List, YAML:
		return streamCollect(w, f, width, seq)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan renders items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T Printable](w io.Writer, f Format, width int, ch <-chan T) error {
	return WriteIter(w, f, width, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect[T Printable](w io.Writer, f Format, width int, seq iter.Seq[T]) error {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return Write(w, f, width, items...)
}

func streamPlain[T Printable](w io.Writer, width int, seq iter.Seq[T]) error {
	s := NewSink(w)
	for item := range seq {
		item.PrintTo(s.SetWidth(width))
		s.WriteString("\n")
		if err := s.Err(); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL[T Printable](w io.Writer, width int, seq iter.Seq[T]) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for item := range seq {
		if err := enc.Encode(Sprint(item, WithWidth(width))); err != nil {
			return err
		}
	}
	return nil
}

func streamJSON[T Printable](w io.Writer, width int, seq iter.Seq[T]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for item := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		data, err := json.Marshal(Sprint(item, WithWidth(width)))
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
