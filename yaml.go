package geomfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T Printable](w io.Writer, width int, items []T) error {
	enc := yaml.NewEncoder(w)
	rendered := renderAll(width, items)
	if len(rendered) == 1 {
		if err := enc.Encode(rendered[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(rendered); err != nil {
			return err
		}
	}
	return enc.Close()
}
