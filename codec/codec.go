// Package codec centralizes snapshot payload encoding.
//
// The engine and the acquisition collaborator must agree on one codec: a
// snapshot blob written with one codec is only guaranteed to decode with
// the same one. Codecs carry a stable name so embedding applications can
// select one from configuration.
package codec

// Codec decodes snapshot payloads and encodes values for storage.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName resolves a built-in codec by its stable name: "json" for the
// standard library codec, "go-json" for the default high-throughput one.
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
