package geomfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL[T Printable](w io.Writer, width int, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, text := range renderAll(width, items) {
		if err := enc.Encode(text); err != nil {
			return err
		}
	}
	return nil
}
