package domain

import (
	"fmt"
	"hash/fnv"
)

// BaseIngredientConstraints describes the expected textual form of a BaseIngredient.
const BaseIngredientConstraints = "Base Ingredient should have the format of <Name> <Quantity>"

// BaseIngredient is a lightweight (name, quantity) reference to an ingredient,
// used where a recipe needs an amount of something rather than a stocked item.
// It is immutable and comparable: == agrees with Equal, so it is safe as a map key.
type BaseIngredient struct {
	name     Name
	quantity Quantity
}

// NewBaseIngredient builds a BaseIngredient from already-validated parts.
// It returns ErrMissingComponent if either part is the zero value.
func NewBaseIngredient(name Name, quantity Quantity) (BaseIngredient, error) {
	if name.IsZero() || quantity.IsZero() {
		return BaseIngredient{}, fmt.Errorf("base ingredient: %w", ErrMissingComponent)
	}

	return BaseIngredient{name: name, quantity: quantity}, nil
}

// Name returns the ingredient name.
func (b BaseIngredient) Name() Name { return b.name }

// Quantity returns the referenced amount.
func (b BaseIngredient) Quantity() Quantity { return b.quantity }

// IsSameIngredient reports whether other names the same ingredient, ignoring quantity.
// This is the weak identity used for duplicate detection.
func (b BaseIngredient) IsSameIngredient(other *BaseIngredient) bool {
	if other == nil {
		return false
	}

	return other.name == b.name
}

// Equal reports whether other has the same name and quantity.
func (b BaseIngredient) Equal(other BaseIngredient) bool {
	return b.name == other.name && b.quantity == other.quantity
}

// Hash returns a hash of (name, quantity) consistent with Equal.
func (b BaseIngredient) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(b.name.String()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(b.quantity.String()))

	return h.Sum64()
}

// String renders "<name>; Quantity: <quantity>" for display.
func (b BaseIngredient) String() string {
	return b.name.String() + "; Quantity: " + b.quantity.String()
}
