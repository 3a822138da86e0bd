package domain

import (
	"slices"
	"time"
)

// entityIngredient is the entity name used in inventory errors.
const entityIngredient = "ingredient"

// MessageDuplicateIngredient is reported when an inventory would hold two
// ingredients with the same identity.
const MessageDuplicateIngredient = "Ingredients list contains duplicate ingredient(s)."

// Inventory is the list of stocked ingredients, unique by name.
// It is not safe for concurrent mutation; callers serialize access.
type Inventory struct {
	items []Ingredient
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// NewInventoryFrom builds an inventory from items, rejecting duplicates.
func NewInventoryFrom(items []Ingredient) (*Inventory, error) {
	inv := NewInventory()
	for _, item := range items {
		if inv.Has(item.Name()) {
			return nil, NewConflictError("", MessageDuplicateIngredient)
		}

		inv.items = append(inv.items, item)
	}

	return inv, nil
}

// Len returns the number of ingredients.
func (inv *Inventory) Len() int { return len(inv.items) }

// List returns a copy of the ingredients in insertion order.
func (inv *Inventory) List() []Ingredient {
	return slices.Clone(inv.items)
}

// Has reports whether an ingredient named name is stocked.
func (inv *Inventory) Has(name Name) bool {
	return inv.indexOf(name) >= 0
}

// Contains reports whether an ingredient with the same identity as base is stocked.
func (inv *Inventory) Contains(base BaseIngredient) bool {
	for _, item := range inv.items {
		stocked := item.Base()
		if base.IsSameIngredient(&stocked) {
			return true
		}
	}

	return false
}

// Get returns the ingredient named name.
func (inv *Inventory) Get(name Name) (Ingredient, error) {
	idx := inv.indexOf(name)
	if idx < 0 {
		return Ingredient{}, NewNotFoundError(entityIngredient, name.String())
	}

	return inv.items[idx], nil
}

// Add stocks item. It fails with a conflict if the same ingredient is present.
func (inv *Inventory) Add(item Ingredient) error {
	if inv.Has(item.Name()) {
		return NewConflictError(entityIngredient, "ingredient "+item.Name().String()+" already exists")
	}

	inv.items = append(inv.items, item)

	return nil
}

// Set replaces the ingredient named target with edited.
// Renaming onto another stocked ingredient is a conflict.
func (inv *Inventory) Set(target Name, edited Ingredient) error {
	idx := inv.indexOf(target)
	if idx < 0 {
		return NewNotFoundError(entityIngredient, target.String())
	}

	if edited.Name() != target && inv.Has(edited.Name()) {
		return NewConflictError(entityIngredient, "ingredient "+edited.Name().String()+" already exists")
	}

	inv.items[idx] = edited

	return nil
}

// Remove deletes the ingredient named name.
func (inv *Inventory) Remove(name Name) error {
	idx := inv.indexOf(name)
	if idx < 0 {
		return NewNotFoundError(entityIngredient, name.String())
	}

	inv.items = slices.Delete(inv.items, idx, idx+1)

	return nil
}

// Expired returns the ingredients whose expiry day is before the day of now.
func (inv *Inventory) Expired(now time.Time) []Ingredient {
	var out []Ingredient
	for _, item := range inv.items {
		if item.ExpiryDate().IsExpired(now) {
			out = append(out, item)
		}
	}

	return out
}

// Clone returns an independent copy of the inventory.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{items: slices.Clone(inv.items)}
}

func (inv *Inventory) indexOf(name Name) int {
	return slices.IndexFunc(inv.items, func(i Ingredient) bool {
		return i.Name() == name
	})
}
