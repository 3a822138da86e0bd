package sqlstore

import (
	"time"

	"github.com/jsamuelsen/fridgy/internal/adapters/record"
)

// ingredientRow is one stored ingredient. Columns are nullable so that rows
// written by other tools go through the same record validation on read.
type ingredientRow struct {
	ID          uint     `gorm:"primaryKey"`
	Position    int      `gorm:"not null;index"`
	Name        *string  `gorm:"index"`
	Quantity    *string
	Email       *string
	Description *string
	Tags        []string `gorm:"serializer:json"`
	Type        *string
	ExpiryDate  *string
}

func (ingredientRow) TableName() string { return "ingredients" }

// inventoryMeta marks that an inventory has been saved, so an empty
// ingredients table can be told apart from a database never written to.
type inventoryMeta struct {
	ID      uint `gorm:"primaryKey"`
	SavedAt time.Time
	Count   int
}

func (inventoryMeta) TableName() string { return "inventory_meta" }

const metaID = 1

func rowFromRecord(position int, r record.JSONAdaptedIngredient) ingredientRow {
	tags := make([]string, 0, len(r.Tagged))
	for _, t := range r.Tagged {
		tags = append(tags, t.TagName)
	}

	return ingredientRow{
		Position:    position,
		Name:        r.Name,
		Quantity:    r.Quantity,
		Email:       r.Email,
		Description: r.Description,
		Tags:        tags,
		Type:        r.Type,
		ExpiryDate:  r.ExpiryDate,
	}
}

func (row ingredientRow) toRecord() record.JSONAdaptedIngredient {
	tags := make([]record.JSONAdaptedTag, 0, len(row.Tags))
	for _, t := range row.Tags {
		tags = append(tags, record.NewJSONAdaptedTag(t))
	}

	return record.NewJSONAdaptedIngredient(
		row.Name, row.Quantity, row.Email, row.Description,
		tags, row.Type, row.ExpiryDate,
	)
}
