package domain

// DescriptionConstraints is reported when a present description is blank.
const DescriptionConstraints = "Description can take any values, and it should not be blank"

// Description is an optional free-text note. An absent description is valid;
// a present one must contain a non-whitespace character.
type Description struct {
	value   string
	present bool
}

// NoDescription returns the absent description.
func NoDescription() Description {
	return Description{}
}

// IsValidDescription reports whether raw is acceptable. Absent (nil) is valid.
func IsValidDescription(raw *string) bool {
	if raw == nil {
		return true
	}

	return satisfies(*raw, tagDescription)
}

// NewDescription validates raw and wraps it. A nil raw yields NoDescription.
func NewDescription(raw *string) (Description, error) {
	if !IsValidDescription(raw) {
		return Description{}, NewConstraintError(FieldDescription, DescriptionConstraints)
	}

	if raw == nil {
		return NoDescription(), nil
	}

	return Description{value: *raw, present: true}, nil
}

// MustDescription is like NewDescription for a present value but panics on invalid input.
func MustDescription(raw string) Description {
	return must(NewDescription(&raw))
}

// Value returns the description text and whether one is present.
func (d Description) Value() (string, bool) {
	return d.value, d.present
}

// Ptr returns the description as a nullable string.
func (d Description) Ptr() *string {
	if !d.present {
		return nil
	}

	v := d.value

	return &v
}

// IsPresent reports whether a description is set.
func (d Description) IsPresent() bool { return d.present }

func (d Description) String() string { return d.value }
