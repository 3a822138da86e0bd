package domain

import (
	"fmt"
	"strings"
)

// Ingredient is a stocked item in the fridge.
// Identity is the name; two ingredients with the same name are the same ingredient.
type Ingredient struct {
	name        Name
	quantity    Quantity
	email       Email
	description Description
	tags        Tags
	typ         Type
	expiryDate  ExpiryDate
}

// NewIngredient assembles an Ingredient from validated value objects.
// Every part except description and tags is required.
func NewIngredient(
	name Name,
	quantity Quantity,
	email Email,
	description Description,
	tags Tags,
	typ Type,
	expiryDate ExpiryDate,
) (Ingredient, error) {
	if name.IsZero() || quantity.IsZero() || email.IsZero() || typ.IsZero() || expiryDate.IsZero() {
		return Ingredient{}, fmt.Errorf("ingredient: %w", ErrMissingComponent)
	}

	return Ingredient{
		name:        name,
		quantity:    quantity,
		email:       email,
		description: description,
		tags:        NewTags(tags.Slice()...),
		typ:         typ,
		expiryDate:  expiryDate,
	}, nil
}

func (i Ingredient) Name() Name               { return i.name }
func (i Ingredient) Quantity() Quantity       { return i.quantity }
func (i Ingredient) Email() Email             { return i.email }
func (i Ingredient) Description() Description { return i.description }
func (i Ingredient) Tags() Tags               { return i.tags }
func (i Ingredient) Type() Type               { return i.typ }
func (i Ingredient) ExpiryDate() ExpiryDate   { return i.expiryDate }

// Base projects the ingredient to its (name, quantity) reference.
func (i Ingredient) Base() BaseIngredient {
	return BaseIngredient{name: i.name, quantity: i.quantity}
}

// IsSameIngredient reports whether other has the same name.
func (i Ingredient) IsSameIngredient(other Ingredient) bool {
	return i.name == other.name
}

// Equal reports whether every field matches; tags compare as sets.
func (i Ingredient) Equal(other Ingredient) bool {
	return i.name == other.name &&
		i.quantity == other.quantity &&
		i.email == other.email &&
		i.description == other.description &&
		i.typ == other.typ &&
		i.expiryDate == other.expiryDate &&
		i.tags.Equal(other.tags)
}

func (i Ingredient) String() string {
	var b strings.Builder

	b.WriteString(i.name.String())
	b.WriteString("; Quantity: ")
	b.WriteString(i.quantity.String())
	b.WriteString("; Email: ")
	b.WriteString(i.email.String())

	if d, ok := i.description.Value(); ok {
		b.WriteString("; Description: ")
		b.WriteString(d)
	}

	b.WriteString("; Type: ")
	b.WriteString(i.typ.String())
	b.WriteString("; Expiry: ")
	b.WriteString(i.expiryDate.String())

	if i.tags.Len() > 0 {
		b.WriteString("; Tags: ")
		for _, t := range i.tags.Slice() {
			b.WriteString(t.String())
		}
	}

	return b.String()
}
