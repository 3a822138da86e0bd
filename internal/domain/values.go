package domain

import "fmt"

// Constraint messages reported when a raw value fails its format predicate.
const (
	NameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	QuantityConstraints = "Quantity should be a positive number, optionally followed by a unit such as g, kg, ml or L"
	EmailConstraints    = "Emails should be of the format local-part@domain"
	TypeConstraints     = "Type should only contain alphanumeric characters and spaces, and it should not be blank"
)

// Field keys used in ConstraintError.Field. They match the persisted record keys.
const (
	FieldName        = "name"
	FieldQuantity    = "quantity"
	FieldEmail       = "email"
	FieldDescription = "description"
	FieldExpiryDate  = "expiryDate"
	FieldType        = "type"
	FieldTags        = "tagged"
)

// Name identifies an ingredient. Two ingredients with equal names are the same ingredient.
type Name struct {
	fullName string
}

// IsValidName reports whether raw is a valid ingredient name.
func IsValidName(raw string) bool {
	return satisfies(raw, tagName)
}

// NewName validates raw and wraps it.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, NewConstraintError(FieldName, NameConstraints)
	}

	return Name{fullName: raw}, nil
}

// MustName is like NewName but panics on invalid input.
func MustName(raw string) Name {
	return must(NewName(raw))
}

func (n Name) String() string { return n.fullName }

// IsZero reports whether n was never constructed.
func (n Name) IsZero() bool { return n.fullName == "" }

// Quantity is the amount of an ingredient, e.g. "2L" or "500 g".
type Quantity struct {
	value string
}

// IsValidQuantity reports whether raw is a positive amount with an optional unit.
func IsValidQuantity(raw string) bool {
	return satisfies(raw, tagQuantity)
}

// NewQuantity validates raw and wraps it.
func NewQuantity(raw string) (Quantity, error) {
	if !IsValidQuantity(raw) {
		return Quantity{}, NewConstraintError(FieldQuantity, QuantityConstraints)
	}

	return Quantity{value: raw}, nil
}

// MustQuantity is like NewQuantity but panics on invalid input.
func MustQuantity(raw string) Quantity {
	return must(NewQuantity(raw))
}

func (q Quantity) String() string { return q.value }

// IsZero reports whether q was never constructed.
func (q Quantity) IsZero() bool { return q.value == "" }

// Email is the contact address associated with an ingredient.
type Email struct {
	value string
}

// IsValidEmail reports whether raw is a well-formed email address.
func IsValidEmail(raw string) bool {
	return satisfies(raw, "email")
}

// NewEmail validates raw and wraps it.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, NewConstraintError(FieldEmail, EmailConstraints)
	}

	return Email{value: raw}, nil
}

// MustEmail is like NewEmail but panics on invalid input.
func MustEmail(raw string) Email {
	return must(NewEmail(raw))
}

func (e Email) String() string { return e.value }

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool { return e.value == "" }

// Type is the category of an ingredient, e.g. "Dairy".
type Type struct {
	value string
}

// IsValidType reports whether raw is a valid ingredient type.
func IsValidType(raw string) bool {
	return satisfies(raw, tagType)
}

// NewType validates raw and wraps it.
func NewType(raw string) (Type, error) {
	if !IsValidType(raw) {
		return Type{}, NewConstraintError(FieldType, TypeConstraints)
	}

	return Type{value: raw}, nil
}

// MustType is like NewType but panics on invalid input.
func MustType(raw string) Type {
	return must(NewType(raw))
}

func (t Type) String() string { return t.value }

// IsZero reports whether t was never constructed.
func (t Type) IsZero() bool { return t.value == "" }

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("domain: %v", err))
	}

	return v
}
