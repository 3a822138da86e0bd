package dto

// ListIngredientsQuery holds the query parameters of GET /api/v1/ingredients.
type ListIngredientsQuery struct {
	PaginationRequest

	Tag     string `form:"tag"     validate:"omitempty,alphanum"`
	Expired bool   `form:"expired"`
}

// StockQuery holds the query parameters of GET /api/v1/ingredients/stock.
type StockQuery struct {
	Name     string `form:"name"     validate:"required,notblank"`
	Quantity string `form:"quantity" validate:"required,notblank"`
}

// StockResponse answers whether the fridge holds the named ingredient.
type StockResponse struct {
	Ingredient string `json:"ingredient"`
	Stocked    bool   `json:"stocked"`
}
