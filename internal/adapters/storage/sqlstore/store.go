// Package sqlstore keeps the inventory in a SQLite database through gorm.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen/fridgy/internal/adapters/record"
	"github.com/jsamuelsen/fridgy/internal/adapters/storage"
	"github.com/jsamuelsen/fridgy/internal/domain"
	"github.com/jsamuelsen/fridgy/internal/platform/logging"
)

const backend = "sqlite"

// Store implements ports.InventoryStorage and ports.HealthChecker on SQLite.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Open connects to the database at dsn and migrates the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("sqlstore: dsn must not be empty")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&ingredientRow{}, &inventoryMeta{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Read loads all rows in saved order and converts them through the record layer.
func (s *Store) Read(ctx context.Context) (*domain.Inventory, error) {
	inv, err := s.read(ctx)

	return inv, storage.Observe(backend, storage.OpRead, err)
}

func (s *Store) read(ctx context.Context) (*domain.Inventory, error) {
	db := s.db.WithContext(ctx)

	var meta inventoryMeta
	if err := db.First(&meta, metaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("inventory", backend)
		}

		return nil, fmt.Errorf("reading inventory metadata: %w", err)
	}

	var rows []ingredientRow
	if err := db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading ingredients: %w", err)
	}

	doc := record.JSONSerializableInventory{Ingredients: make([]record.JSONAdaptedIngredient, 0, len(rows))}
	for _, row := range rows {
		doc.Ingredients = append(doc.Ingredients, row.toRecord())
	}

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "inventory rows loaded",
		"backend", backend,
		"rows", len(rows),
		"saved_at", meta.SavedAt,
	)

	inv, err := doc.ToModel()
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "stored inventory rejected",
			"backend", backend,
			"error", err,
		)

		return nil, fmt.Errorf("loading inventory: %w", err)
	}

	return inv, nil
}

// Save replaces every stored row with inv inside one transaction.
func (s *Store) Save(ctx context.Context, inv *domain.Inventory) error {
	return storage.Observe(backend, storage.OpSave, s.save(ctx, inv))
}

func (s *Store) save(ctx context.Context, inv *domain.Inventory) error {
	doc := record.FromInventory(inv)

	rows := make([]ingredientRow, 0, len(doc.Ingredients))
	for i, r := range doc.Ingredients {
		rows = append(rows, rowFromRecord(i, r))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ingredientRow{}).Error; err != nil {
			return fmt.Errorf("clearing ingredients: %w", err)
		}

		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("inserting ingredients: %w", err)
			}
		}

		meta := inventoryMeta{ID: metaID, SavedAt: s.now().UTC(), Count: len(rows)}
		if err := tx.Save(&meta).Error; err != nil {
			return fmt.Errorf("writing inventory metadata: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).DebugContext(ctx, "inventory saved",
		"backend", backend,
		"ingredients", len(rows),
	)

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "storage-" + backend }

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	return nil
}
