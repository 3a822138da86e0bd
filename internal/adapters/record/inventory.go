package record

import (
	"fmt"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

// JSONSerializableInventory is the serializable form of domain.Inventory.
type JSONSerializableInventory struct {
	Ingredients []JSONAdaptedIngredient `json:"ingredients" yaml:"ingredients"`
}

// FromInventory converts every ingredient of inv into a record.
func FromInventory(inv *domain.Inventory) JSONSerializableInventory {
	items := inv.List()
	out := JSONSerializableInventory{Ingredients: make([]JSONAdaptedIngredient, 0, len(items))}

	for _, item := range items {
		out.Ingredients = append(out.Ingredients, FromIngredient(item))
	}

	return out
}

// ToModel converts the records into an inventory. It fails on the first
// invalid record, or with a conflict if two records name the same ingredient.
func (s JSONSerializableInventory) ToModel() (*domain.Inventory, error) {
	items := make([]domain.Ingredient, 0, len(s.Ingredients))

	for i, r := range s.Ingredients {
		item, err := r.ToModel()
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i, err)
		}

		items = append(items, item)
	}

	return domain.NewInventoryFrom(items)
}
