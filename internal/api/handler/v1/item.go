package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syncbazar/syncbazar-api/internal/api/handler/v1/request"
	"github.com/syncbazar/syncbazar-api/internal/api/handler/v1/response"
	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/service"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

type InventoryService interface {
	AddItem(ctx context.Context, input service.ItemInput, actorID uint) (domain.Item, error)
	UpdateItem(ctx context.Context, id uint, input service.ItemInput, actorID uint) (domain.Item, error)
	DeleteItem(ctx context.Context, id uint, actorID uint) error
	ListItems(ctx context.Context) []domain.Item
	SearchItems(ctx context.Context, query string) []domain.Item
}

type ItemHandler struct {
	svc InventoryService
}

func NewItemHandler(svc InventoryService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List all inventory items
// @Tags         items
// @Produce      json
// @Success      200  {array}   response.Item
// @Failure      401  {object}  response.Err
// @Router       /items [get]
// @Security BearerAuth
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items := h.svc.ListItems(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.NewItems(items))
}

// HandleAddItem godoc
// @Summary      Add a new inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.ItemRequest true "item fields"
// @Success      201      {object}  response.Item
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *ItemHandler) HandleAddItem(ctx *gin.Context) {
	var req request.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), itemInput(req), actorID(ctx))
	if err != nil {
		renderItemErr(ctx, "HandleAddItem", "h.svc.AddItem", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewItem(item))
}

// HandleUpdateItem godoc
// @Summary      Update an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int                 true "item ID"
// @Param        request  body      request.ItemRequest true "item fields"
// @Success      200      {object}  response.Item
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [put]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	id, err := parseID(ctx.Param("itemID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.UpdateItem(ctx.Request.Context(), id, itemInput(req), actorID(ctx))
	if err != nil {
		renderItemErr(ctx, "HandleUpdateItem", "h.svc.UpdateItem", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewItem(item))
}

// HandleDeleteItem godoc
// @Summary      Delete an inventory item
// @Tags         items
// @Produce      json
// @Param        itemID  path      int true "item ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	id, err := parseID(ctx.Param("itemID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), id, actorID(ctx)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: fmt.Sprintf("Deleted item #%d", id)})
}

// HandleSearchItems godoc
// @Summary      Search inventory items
// @Description  Case-insensitive substring match over name, category, SKU and supplier. An empty query returns the full catalog.
// @Tags         items
// @Produce      json
// @Param        q   query     string false "search query"
// @Success      200 {array}   response.Item
// @Failure      401 {object}  response.Err
// @Router       /items/search [get]
// @Security BearerAuth
func (h *ItemHandler) HandleSearchItems(ctx *gin.Context) {
	items := h.svc.SearchItems(ctx.Request.Context(), ctx.Query("q"))

	ctx.JSON(http.StatusOK, response.NewItems(items))
}

// HandleValidateItem godoc
// @Summary      Validate item fields without saving
// @Description  Runs every item field check and reports all failures at once.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.ItemRequest true "item fields"
// @Success      200      {object}  response.ValidationResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Router       /items/validate [post]
// @Security BearerAuth
func (h *ItemHandler) HandleValidateItem(ctx *gin.Context) {
	var req request.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	errs := validation.ItemAll(req.Name, req.Quantity, req.Price)

	ctx.JSON(http.StatusOK, response.NewValidationResult(errs))
}

// HandleNetworkSearch godoc
// @Summary      Search items across the store network
// @Description  Matching items are labeled with their stored location as the store name.
// @Tags         search
// @Produce      json
// @Param        q   query     string false "search query"
// @Success      200 {array}   response.NetworkSearchResult
// @Failure      401 {object}  response.Err
// @Router       /search [get]
// @Security BearerAuth
func (h *ItemHandler) HandleNetworkSearch(ctx *gin.Context) {
	items := h.svc.SearchItems(ctx.Request.Context(), ctx.Query("q"))

	ctx.JSON(http.StatusOK, response.NewNetworkSearchResults(items))
}

func itemInput(req request.ItemRequest) service.ItemInput {
	return service.ItemInput{
		Name:         req.Name,
		Category:     req.Category,
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		Price:        req.Price,
		Location:     req.Location,
		Supplier:     req.Supplier,
	}
}

func renderItemErr(ctx *gin.Context, handler, call string, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		response.RenderErr(ctx, response.ErrBadRequest(fieldErr))
		return
	}
	if errors.Is(err, service.ErrItemSKUExists) {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemSKUExists))
		return
	}
	if errors.Is(err, service.ErrItemNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))
		return
	}

	err = fmt.Errorf("v1.%v -> %v -> %w", handler, call, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", raw)
	}

	return uint(id), nil
}
