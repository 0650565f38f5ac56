package encode

import (
	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.paint = nil
			return
		}
		es.paint = c.Color
	}
}

// EncodeExport exports records with the given options before encoding.
// Without it, text renders records directly and YAML and JSON encode their
// recursive export.
func EncodeExport(opts ...container.ExportOption) EncodeOption {
	return func(es *EncState) {
		es.export = true
		es.exportOpts = append(es.exportOpts, opts...)
	}
}
