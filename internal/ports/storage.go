// Package ports declares the interfaces the application core depends on.
// Adapters implement them; the core never imports an adapter directly.
package ports

import (
	"context"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

// InventoryStorage persists the whole fridge inventory as one unit.
type InventoryStorage interface {
	// Read loads the stored inventory. It returns an error wrapping
	// domain.ErrNotFound when nothing has been saved yet, and a
	// domain.ConstraintError or domain.ConflictError when stored data is invalid.
	Read(ctx context.Context) (*domain.Inventory, error)

	// Save replaces the stored inventory with inv.
	Save(ctx context.Context, inv *domain.Inventory) error
}
