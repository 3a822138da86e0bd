// Package record holds the serializable forms of inventory entities.
//
// Records are plain structs that encode to JSON and YAML. They carry raw,
// unvalidated values: a record read from disk or from a request body may be
// incomplete or malformed and only fails when converted with ToModel.
package record

import (
	"fmt"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

// MissingFieldMessageFormat is the message of a ConstraintError for an absent required field.
const MissingFieldMessageFormat = "Ingredient's %s field is missing!"

// Display names used in missing-field messages.
const (
	missingName        = "Name"
	missingQuantity    = "Quantity"
	missingEmail       = "Email"
	missingDescription = "Description"
	missingExpiryDate  = "ExpiryDate"
	missingType        = "Type"
)

// JSONAdaptedIngredient is the serializable form of domain.Ingredient.
// Pointer fields distinguish an absent value (nil) from an empty string.
type JSONAdaptedIngredient struct {
	Name        *string          `json:"name"        yaml:"name"`
	Quantity    *string          `json:"quantity"    yaml:"quantity"`
	Email       *string          `json:"email"       yaml:"email"`
	Description *string          `json:"description" yaml:"description"`
	Tagged      []JSONAdaptedTag `json:"tagged"      yaml:"tagged"`
	Type        *string          `json:"type"        yaml:"type"`
	ExpiryDate  *string          `json:"expiryDate"  yaml:"expiryDate"`
}

// NewJSONAdaptedIngredient stores the given raw fields without validating them.
// A nil tagged slice is stored as empty.
func NewJSONAdaptedIngredient(
	name, quantity, email, description *string,
	tagged []JSONAdaptedTag,
	typ, expiryDate *string,
) JSONAdaptedIngredient {
	tags := make([]JSONAdaptedTag, 0, len(tagged))
	tags = append(tags, tagged...)

	return JSONAdaptedIngredient{
		Name:        name,
		Quantity:    quantity,
		Email:       email,
		Description: description,
		Tagged:      tags,
		Type:        typ,
		ExpiryDate:  expiryDate,
	}
}

// FromIngredient copies the canonical string form of every field of src.
func FromIngredient(src domain.Ingredient) JSONAdaptedIngredient {
	tags := src.Tags().Slice()
	tagged := make([]JSONAdaptedTag, 0, len(tags))

	for _, t := range tags {
		tagged = append(tagged, FromTag(t))
	}

	return JSONAdaptedIngredient{
		Name:        str(src.Name().String()),
		Quantity:    str(src.Quantity().String()),
		Email:       str(src.Email().String()),
		Description: src.Description().Ptr(),
		Tagged:      tagged,
		Type:        str(src.Type().String()),
		ExpiryDate:  str(src.ExpiryDate().String()),
	}
}

// ToModel converts the record into a domain.Ingredient.
//
// Tags are converted first, then the scalar fields in the order name, quantity,
// email, description, expiryDate, type. The first violation is returned as a
// *domain.ConstraintError and no ingredient is produced.
func (r JSONAdaptedIngredient) ToModel() (domain.Ingredient, error) {
	tags := make([]domain.Tag, 0, len(r.Tagged))
	for _, raw := range r.Tagged {
		tag, err := raw.ToModel()
		if err != nil {
			return domain.Ingredient{}, err
		}

		tags = append(tags, tag)
	}

	if r.Name == nil {
		return domain.Ingredient{}, missingField(domain.FieldName, missingName)
	}

	name, err := domain.NewName(*r.Name)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if r.Quantity == nil {
		return domain.Ingredient{}, missingField(domain.FieldQuantity, missingQuantity)
	}

	quantity, err := domain.NewQuantity(*r.Quantity)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if r.Email == nil {
		return domain.Ingredient{}, missingField(domain.FieldEmail, missingEmail)
	}

	email, err := domain.NewEmail(*r.Email)
	if err != nil {
		return domain.Ingredient{}, err
	}

	// An absent description is allowed, an empty one counts as missing.
	if r.Description != nil && *r.Description == "" {
		return domain.Ingredient{}, missingField(domain.FieldDescription, missingDescription)
	}

	description, err := domain.NewDescription(r.Description)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if r.ExpiryDate == nil {
		return domain.Ingredient{}, missingField(domain.FieldExpiryDate, missingExpiryDate)
	}

	expiryDate, err := domain.NewExpiryDate(*r.ExpiryDate)
	if err != nil {
		return domain.Ingredient{}, err
	}

	if r.Type == nil {
		return domain.Ingredient{}, missingField(domain.FieldType, missingType)
	}

	typ, err := domain.NewType(*r.Type)
	if err != nil {
		return domain.Ingredient{}, err
	}

	return domain.NewIngredient(name, quantity, email, description, domain.NewTags(tags...), typ, expiryDate)
}

func missingField(field, display string) error {
	return domain.NewConstraintError(field, fmt.Sprintf(MissingFieldMessageFormat, display))
}

func str(s string) *string {
	return &s
}
