package geomfmt

import (
	"encoding/json"
	"io"
)

func writeJSON[T Printable](w io.Writer, width int, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	rendered := renderAll(width, items)
	if len(rendered) == 1 {
		return enc.Encode(rendered[0])
	}
	return enc.Encode(rendered)
}
