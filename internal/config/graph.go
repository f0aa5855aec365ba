package config

import "github.com/yourusername/tigview/internal/graph"

// Encoding selects which of a Glyph's renderings the graph panel draws.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingASCII
	EncodingLine
)

// EngineStrategy maps the configured strategy name onto graph.Strategy,
// defaulting to the richer v2 algorithm for anything unrecognized.
func (g GraphConfig) EngineStrategy() graph.Strategy {
	if g.Strategy == "v1" {
		return graph.V1
	}
	return graph.V2
}

// EngineEncoding maps the configured encoding name onto Encoding,
// defaulting to UTF-8 for anything unrecognized.
func (g GraphConfig) EngineEncoding() Encoding {
	switch g.Encoding {
	case "ascii":
		return EncodingASCII
	case "line":
		return EncodingLine
	default:
		return EncodingUTF8
	}
}
