// Package codec centralizes JSON encoding for evaluation artifacts.
//
// Evaluation files (batch index, batch evaluations, merged results, reports)
// are long-lived research data shared with non-Go tooling, so the codec
// boundary is deliberately narrow: stable field names, indented output,
// UTF-8 passed through unescaped.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
