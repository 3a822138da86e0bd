// Package filestore keeps the inventory in a single JSON or YAML file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/fridgy/internal/adapters/record"
	"github.com/jsamuelsen/fridgy/internal/adapters/storage"
	"github.com/jsamuelsen/fridgy/internal/domain"
	"github.com/jsamuelsen/fridgy/internal/platform/logging"
)

// Store implements ports.InventoryStorage and ports.HealthChecker on one file.
type Store struct {
	path  string
	codec Codec
}

// New creates a store for path using the codec for format.
func New(path, format string) (*Store, error) {
	if path == "" {
		return nil, errors.New("filestore: path must not be empty")
	}

	codec, err := CodecFor(format)
	if err != nil {
		return nil, fmt.Errorf("filestore: %w", err)
	}

	return &Store{path: path, codec: codec}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Read decodes and validates the stored inventory.
func (s *Store) Read(ctx context.Context) (*domain.Inventory, error) {
	inv, err := s.read(ctx)

	return inv, storage.Observe(s.backend(), storage.OpRead, err)
}

func (s *Store) read(ctx context.Context) (*domain.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewNotFoundError("inventory file", s.path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc record.JSONSerializableInventory
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "inventory file decoded",
		"path", s.path,
		"bytes", len(data),
		"records", len(doc.Ingredients),
	)

	inv, err := doc.ToModel()
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "stored inventory rejected",
			"path", s.path,
			"error", err,
		)

		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}

	return inv, nil
}

// Save writes inv to a temp file next to the target and renames it into place.
func (s *Store) Save(ctx context.Context, inv *domain.Inventory) error {
	return storage.Observe(s.backend(), storage.OpSave, s.save(ctx, inv))
}

func (s *Store) save(ctx context.Context, inv *domain.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.Marshal(record.FromInventory(inv))
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	logging.FromContext(ctx).DebugContext(ctx, "inventory saved",
		"path", s.path,
		"ingredients", inv.Len(),
	)

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "storage-" + s.codec.Format() }

// Check verifies the parent directory can be created and accepts new files.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	probe, err := os.CreateTemp(dir, ".fridgy-health-*")
	if err != nil {
		return domain.NewUnavailableError(s.Name(), err.Error())
	}

	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return nil
}

func (s *Store) backend() string { return s.codec.Format() }
