package codec

import (
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/gitdata/domain"
)

// Decoder parses a wire JSON document into its typed form.
type Decoder func(data []byte) (any, error)

// Registry manages the named document decoders the tooling can verify.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
	}
}

// NewDefaultRegistry creates a registry with every decodable Git Data kind
// registered.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register("tree", func(data []byte) (any, error) {
		var tree domain.Tree
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return tree, nil
	})
	registry.Register("blob", func(data []byte) (any, error) {
		var blob domain.Blob
		if err := json.Unmarshal(data, &blob); err != nil {
			return nil, err
		}
		return blob, nil
	})
	registry.Register("new-blob", func(data []byte) (any, error) {
		var blob domain.NewBlob
		if err := json.Unmarshal(data, &blob); err != nil {
			return nil, err
		}
		return blob, nil
	})
	return registry
}

// Register adds a decoder under the given kind name (e.g. "tree").
func (r *Registry) Register(kind string, decoder Decoder) {
	r.decoders[kind] = decoder
}

// Decode parses data with the decoder registered for kind.
func (r *Registry) Decode(kind string, data []byte) (any, error) {
	decoder, ok := r.decoders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind: %q", kind)
	}
	return decoder(data)
}

// Names returns the list of registered kind names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.decoders))
	for name := range r.decoders {
		names = append(names, name)
	}
	return names
}
