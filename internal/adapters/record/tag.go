package record

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

// JSONAdaptedTag is the serializable form of domain.Tag.
// It encodes as a bare string holding the tag name.
type JSONAdaptedTag struct {
	TagName string
}

// NewJSONAdaptedTag wraps a raw tag name without validating it.
func NewJSONAdaptedTag(tagName string) JSONAdaptedTag {
	return JSONAdaptedTag{TagName: tagName}
}

// FromTag copies the name of t.
func FromTag(t domain.Tag) JSONAdaptedTag {
	return JSONAdaptedTag{TagName: t.Name()}
}

// ToModel converts the record into a domain.Tag.
func (r JSONAdaptedTag) ToModel() (domain.Tag, error) {
	return domain.NewTag(r.TagName)
}

// MarshalJSON implements json.Marshaler.
func (r JSONAdaptedTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.TagName)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *JSONAdaptedTag) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.TagName)
}

// MarshalYAML implements yaml.Marshaler.
func (r JSONAdaptedTag) MarshalYAML() (any, error) {
	return r.TagName, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *JSONAdaptedTag) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&r.TagName)
}
