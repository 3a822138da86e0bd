package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

func ingredient(t *testing.T, name, quantity string, tags ...string) domain.Ingredient {
	t.Helper()

	ts := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		ts = append(ts, domain.MustTag(tag))
	}

	item, err := domain.NewIngredient(
		domain.MustName(name),
		domain.MustQuantity(quantity),
		domain.MustEmail("owner@fridge.io"),
		domain.NoDescription(),
		domain.NewTags(ts...),
		domain.MustType("Dairy"),
		domain.MustExpiryDate("2030-06-01"),
	)
	require.NoError(t, err)

	return item
}

func sampleInventory(t *testing.T) *domain.Inventory {
	t.Helper()

	inv, err := domain.NewInventoryFrom([]domain.Ingredient{
		ingredient(t, "Milk", "2L", "cold"),
		ingredient(t, "Cheddar", "200g", "cold", "cheese"),
	})
	require.NoError(t, err)

	return inv
}

func TestNew(t *testing.T) {
	_, err := New("", FormatJSON)
	require.Error(t, err)

	_, err = New("inventory.toml", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"toml"`)

	s, err := New("data/inventory.yaml", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "data/inventory.yaml", s.Path())
	assert.Equal(t, "storage-yaml", s.Name())
}

func TestStore_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "nested", "inventory."+format)

			s, err := New(path, format)
			require.NoError(t, err)

			want := sampleInventory(t)
			require.NoError(t, s.Save(ctx, want))

			got, err := s.Read(ctx)
			require.NoError(t, err)
			require.Equal(t, want.Len(), got.Len())

			for i, item := range want.List() {
				assert.True(t, item.Equal(got.List()[i]), "ingredient %d differs", i)
			}
		})
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "absent.json"), FormatJSON)
	require.NoError(t, err)

	_, err = s.Read(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_ReadRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "missing email",
			content: `{"ingredients":[{"name":"Milk","quantity":"2L","type":"Dairy","expiryDate":"2030-01-01"}]}`,
			check: func(t *testing.T, err error) {
				ce, ok := domain.ConstraintFrom(err)
				require.True(t, ok)
				assert.Equal(t, "Ingredient's Email field is missing!", ce.Message)
			},
		},
		{
			name: "duplicate",
			content: `{"ingredients":[
				{"name":"Milk","quantity":"2L","email":"a@b.com","type":"Dairy","expiryDate":"2030-01-01"},
				{"name":"Milk","quantity":"1L","email":"a@b.com","type":"Dairy","expiryDate":"2030-01-01"}
			]}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsConflict(err))
				assert.Contains(t, err.Error(), domain.MessageDuplicateIngredient)
			},
		},
		{
			name:    "malformed",
			content: `{"ingredients":`,
			check: func(t *testing.T, err error) {
				assert.False(t, domain.IsValidation(err))
				assert.Contains(t, err.Error(), "decoding")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inventory.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			s, err := New(path, FormatJSON)
			require.NoError(t, err)

			_, err = s.Read(context.Background())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestStore_SaveWritesCanonicalJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	s, err := New(path, FormatJSON)
	require.NoError(t, err)

	inv := domain.NewInventory()
	require.NoError(t, inv.Add(ingredient(t, "Milk", "2L", "cold")))
	require.NoError(t, s.Save(context.Background(), inv))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredients":[{
		"name":"Milk","quantity":"2L","email":"owner@fridge.io","description":null,
		"tagged":["cold"],"type":"Dairy","expiryDate":"2030-06-01"
	}]}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_CanceledContext(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "inventory.json"), FormatJSON)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.Save(ctx, domain.NewInventory()), context.Canceled)

	_, err = s.Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStore_Check(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "data", "inventory.json"), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, s.Check(context.Background()))

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	s, err = New(filepath.Join(blocker, "inventory.json"), FormatJSON)
	require.NoError(t, err)

	err = s.Check(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}
