package filestore

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec formats supported by the file backend.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Codec encodes and decodes the stored document.
type Codec interface {
	Format() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// CodecFor returns the codec for format.
func CodecFor(format string) (Codec, error) {
	switch format {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported storage format %q", format)
	}
}

type jsonCodec struct{}

func (jsonCodec) Format() string { return FormatJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Format() string { return FormatYAML }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
