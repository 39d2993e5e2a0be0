package geomfmt

import "io"

func writePlain[T Printable](w io.Writer, width int, items []T) error {
	s := NewSink(w)
	for _, item := range items {
		item.PrintTo(s.SetWidth(width))
		s.WriteString("\n")
		if err := s.Err(); err != nil {
			return err
		}
	}
	return nil
}
