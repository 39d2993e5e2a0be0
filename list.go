package geomfmt

import (
	"io"
	"strings"
)

const defaultListSep = "; "

func writeList[T Printable](w io.Writer, width int, items []T) error {
	if len(items) == 0 {
		return nil
	}
	sep := defaultListSep
	if s, ok := any(items[0]).(Separator); ok {
		sep = s.Sep()
	}
	_, err := io.WriteString(w, strings.Join(renderAll(width, items), sep)+"\n")
	return err
}
