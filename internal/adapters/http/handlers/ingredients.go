package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/fridgy/internal/adapters/http/dto"
	"github.com/jsamuelsen/fridgy/internal/adapters/record"
	"github.com/jsamuelsen/fridgy/internal/app"
	"github.com/jsamuelsen/fridgy/internal/domain"
)

// cursorField names the key ingredient list cursors are built on.
const cursorField = "name"

// InventoryService is the part of app.InventoryService the handlers call.
type InventoryService interface {
	List(ctx context.Context, filter app.ListFilter) []domain.Ingredient
	Get(ctx context.Context, name domain.Name) (domain.Ingredient, error)
	Add(ctx context.Context, item domain.Ingredient) error
	Update(ctx context.Context, name domain.Name, edited domain.Ingredient) error
	Delete(ctx context.Context, name domain.Name) error
	Stocks(ctx context.Context, base domain.BaseIngredient) bool
}

// IngredientHandler serves the ingredient endpoints. Requests and responses
// use the same record shape that storage writes.
type IngredientHandler struct {
	service InventoryService
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(service InventoryService) *IngredientHandler {
	return &IngredientHandler{service: service}
}

// RegisterRoutes registers the ingredient routes on rg.
func (h *IngredientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")

	ingredients.GET("", h.List)
	ingredients.POST("", h.Create)
	ingredients.GET("/stock", h.Stock)
	ingredients.GET("/:name", h.Get)
	ingredients.PUT("/:name", h.Update)
	ingredients.DELETE("/:name", h.Delete)
}

// List handles GET /api/v1/ingredients.
// Query: tag, expired, limit, cursor. Items keep inventory order.
func (h *IngredientHandler) List(c *gin.Context) {
	var q dto.ListIngredientsQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := app.ListFilter{ExpiredOnly: q.Expired}
	if q.Tag != "" {
		tag, err := domain.NewTag(q.Tag)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		filter.Tag = tag
	}

	records := make([]record.JSONAdaptedIngredient, 0)
	for _, item := range h.service.List(c.Request.Context(), filter) {
		records = append(records, record.FromIngredient(item))
	}

	page, err := dto.Paginate(records, &q.PaginationRequest, cursorField, func(r record.JSONAdaptedIngredient) string {
		return *r.Name
	})
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/ingredients/:name.
func (h *IngredientHandler) Get(c *gin.Context) {
	name, ok := nameParam(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record.FromIngredient(item))
}

// Create handles POST /api/v1/ingredients. The body is an ingredient record.
func (h *IngredientHandler) Create(c *gin.Context) {
	item, ok := bindIngredient(c)
	if !ok {
		return
	}

	if err := h.service.Add(c.Request.Context(), item); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+item.Name().String())
	c.JSON(http.StatusCreated, record.FromIngredient(item))
}

// Update handles PUT /api/v1/ingredients/:name. The body replaces the
// ingredient and may rename it.
func (h *IngredientHandler) Update(c *gin.Context) {
	name, ok := nameParam(c)
	if !ok {
		return
	}

	item, ok := bindIngredient(c)
	if !ok {
		return
	}

	if err := h.service.Update(c.Request.Context(), name, item); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record.FromIngredient(item))
}

// Delete handles DELETE /api/v1/ingredients/:name.
func (h *IngredientHandler) Delete(c *gin.Context) {
	name, ok := nameParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), name); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stock handles GET /api/v1/ingredients/stock?name=&quantity=.
// Only the name decides the answer; quantity must still be well formed.
func (h *IngredientHandler) Stock(c *gin.Context) {
	var q dto.StockQuery
	if !bindQuery(c, &q) {
		return
	}

	name, err := domain.NewName(q.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quantity, err := domain.NewQuantity(q.Quantity)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	base, err := domain.NewBaseIngredient(name, quantity)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StockResponse{
		Ingredient: base.String(),
		Stocked:    h.service.Stocks(c.Request.Context(), base),
	})
}

func nameParam(c *gin.Context) (domain.Name, bool) {
	name, err := domain.NewName(c.Param("name"))
	if err != nil {
		dto.HandleError(c, err)
		return domain.Name{}, false
	}

	return name, true
}

func bindQuery(c *gin.Context, v any) bool {
	err := dto.BindQueryAndValidate(c, v)

	switch {
	case err == nil:
		return true
	case errors.Is(err, dto.ErrValidation):
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
	default:
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")
	}

	return false
}

func bindIngredient(c *gin.Context) (domain.Ingredient, bool) {
	var body record.JSONAdaptedIngredient
	if err := dto.BindJSON(c, &body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeTooLarge, "request body too large")
		} else {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be an ingredient record")
		}

		return domain.Ingredient{}, false
	}

	item, err := body.ToModel()
	if err != nil {
		dto.HandleError(c, err)
		return domain.Ingredient{}, false
	}

	return item, true
}
