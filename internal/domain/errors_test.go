package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnavailable,
		ErrMissingComponent,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "ingredient",
			id:          "Milk",
			expectedMsg: `ingredient "Milk" not found`,
		},
		{
			name:        "with entity only",
			entity:      "inventory",
			expectedMsg: "inventory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestConflictError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with entity",
			entity:      "ingredient",
			reason:      "already exists",
			expectedMsg: "ingredient conflict: already exists",
		},
		{
			name:        "reason only",
			reason:      MessageDuplicateIngredient,
			expectedMsg: MessageDuplicateIngredient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConflictError(tt.entity, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.True(t, IsConflict(err))
		})
	}
}

func TestConstraintError(t *testing.T) {
	err := NewConstraintError(FieldName, "Ingredient's Name field is missing!")

	assert.Equal(t, "Ingredient's Name field is missing!", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))

	wrapped := fmt.Errorf("reading inventory: %w", err)

	ce, ok := ConstraintFrom(wrapped)
	require.True(t, ok)
	assert.Equal(t, FieldName, ce.Field)
	assert.Equal(t, "Ingredient's Name field is missing!", ce.Message)
}

func TestConstraintFrom_OtherError(t *testing.T) {
	_, ok := ConstraintFrom(NewNotFoundError("ingredient", "x"))
	assert.False(t, ok)

	_, ok = ConstraintFrom(nil)
	assert.False(t, ok)
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("sqlite", "database is locked")
	assert.Equal(t, `service "sqlite" unavailable: database is locked`, err.Error())
	assert.True(t, IsUnavailable(err))

	err = NewUnavailableError("sqlite", "")
	assert.Equal(t, `service "sqlite" unavailable`, err.Error())
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("ingredient", "Milk"), IsNotFound},
		{"conflict", NewConflictError("ingredient", "dup"), IsConflict},
		{"validation", NewConstraintError(FieldType, TypeConstraints), IsValidation},
		{"unavailable", NewUnavailableError("file", "gone"), IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("layer one: %w", fmt.Errorf("layer two: %w", tt.err))
			assert.True(t, tt.check(wrapped))
		})
	}
}
