// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/fridgy/internal/domain"
	"github.com/jsamuelsen/fridgy/internal/platform/logging"
	"github.com/jsamuelsen/fridgy/internal/ports"
)

// ListFilter narrows List results. The zero value matches every ingredient.
type ListFilter struct {
	// Tag keeps only ingredients carrying this tag when non-zero.
	Tag domain.Tag

	// ExpiredOnly keeps only ingredients past their expiry date.
	ExpiredOnly bool
}

// InventoryService orchestrates fridge inventory use cases.
// It keeps the inventory in memory and writes it through to storage on
// every mutation. A mutation whose save fails leaves the in-memory state unchanged.
type InventoryService struct {
	storage ports.InventoryStorage
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.RWMutex
	inventory *domain.Inventory
}

// InventoryServiceConfig contains the dependencies of the inventory service.
type InventoryServiceConfig struct {
	Storage ports.InventoryStorage
	Logger  *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// NewInventoryService creates a service over an empty inventory; call Load to read storage.
// It panics if no storage is provided.
func NewInventoryService(cfg InventoryServiceConfig) *InventoryService {
	if cfg.Storage == nil {
		panic("app: inventory storage is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &InventoryService{
		storage:   cfg.Storage,
		logger:    logger,
		now:       clock,
		inventory: domain.NewInventory(),
	}
}

// Load replaces the in-memory inventory with the stored one.
// Missing storage starts an empty inventory; invalid stored data is an error.
func (s *InventoryService) Load(ctx context.Context) error {
	inv, err := s.storage.Read(ctx)

	switch {
	case domain.IsNotFound(err):
		s.log(ctx).InfoContext(ctx, "no stored inventory, starting empty")

		inv = domain.NewInventory()
	case err != nil:
		return fmt.Errorf("loading inventory: %w", err)
	}

	s.mu.Lock()
	s.inventory = inv
	s.mu.Unlock()

	s.log(ctx).InfoContext(ctx, "inventory loaded", slog.Int("ingredients", inv.Len()))

	return nil
}

// List returns the ingredients matching filter in inventory order.
func (s *InventoryService) List(ctx context.Context, filter ListFilter) []domain.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.inventory.List()
	if filter.ExpiredOnly {
		items = s.inventory.Expired(s.now())
	}

	if filter.Tag == (domain.Tag{}) {
		return items
	}

	out := make([]domain.Ingredient, 0, len(items))
	for _, item := range items {
		if item.Tags().Contains(filter.Tag) {
			out = append(out, item)
		}
	}

	s.log(ctx).DebugContext(ctx, "filtered inventory",
		slog.String("tag", filter.Tag.Name()),
		slog.Int("matches", len(out)),
	)

	return out
}

// Get returns the ingredient named name.
func (s *InventoryService) Get(_ context.Context, name domain.Name) (domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inventory.Get(name)
}

// Stocks reports whether an ingredient with the identity of base is in the fridge.
// Quantity is not compared.
func (s *InventoryService) Stocks(_ context.Context, base domain.BaseIngredient) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inventory.Contains(base)
}

// Add stocks a new ingredient.
func (s *InventoryService) Add(ctx context.Context, item domain.Ingredient) error {
	err := s.mutate(ctx, func(inv *domain.Inventory) error {
		return inv.Add(item)
	})
	if err != nil {
		return err
	}

	s.log(ctx).InfoContext(ctx, "ingredient added", slog.String("name", item.Name().String()))

	return nil
}

// Update replaces the ingredient named name with edited.
func (s *InventoryService) Update(ctx context.Context, name domain.Name, edited domain.Ingredient) error {
	err := s.mutate(ctx, func(inv *domain.Inventory) error {
		return inv.Set(name, edited)
	})
	if err != nil {
		return err
	}

	s.log(ctx).InfoContext(ctx, "ingredient updated",
		slog.String("name", name.String()),
		slog.String("new_name", edited.Name().String()),
	)

	return nil
}

// Delete removes the ingredient named name.
func (s *InventoryService) Delete(ctx context.Context, name domain.Name) error {
	err := s.mutate(ctx, func(inv *domain.Inventory) error {
		return inv.Remove(name)
	})
	if err != nil {
		return err
	}

	s.log(ctx).InfoContext(ctx, "ingredient deleted", slog.String("name", name.String()))

	return nil
}

// mutate applies change to a copy, saves it, and only then publishes it.
func (s *InventoryService) mutate(ctx context.Context, change func(*domain.Inventory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.inventory.Clone()
	if err := change(next); err != nil {
		return err
	}

	if err := s.storage.Save(ctx, next); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to save inventory", slog.Any("error", err))

		return errors.Join(domain.NewUnavailableError("storage", "inventory could not be saved"), err)
	}

	s.inventory = next

	return nil
}

// log prefers the request-scoped logger and falls back to the service logger.
func (s *InventoryService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
