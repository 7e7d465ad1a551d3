package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syncbazar/syncbazar-api/internal/api/handler/v1/request"
	"github.com/syncbazar/syncbazar-api/internal/api/handler/v1/response"
	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/service"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

type ShopService interface {
	AddShop(ctx context.Context, input service.ShopInput, actorID uint) (domain.Shop, error)
	UpdateShop(ctx context.Context, id uint, input service.ShopInput, actorID uint) (domain.Shop, error)
	DeleteShop(ctx context.Context, id uint, actorID uint) error
	ListShops(ctx context.Context) []domain.Shop
	SearchShops(ctx context.Context, query string) []domain.Shop
}

type ShopHandler struct {
	svc ShopService
}

func NewShopHandler(svc ShopService) *ShopHandler {
	return &ShopHandler{
		svc: svc,
	}
}

// HandleListShops godoc
// @Summary      List all shops
// @Tags         shops
// @Produce      json
// @Success      200  {array}   domain.Shop
// @Failure      401  {object}  response.Err
// @Router       /shops [get]
// @Security BearerAuth
func (h *ShopHandler) HandleListShops(ctx *gin.Context) {
	shops := h.svc.ListShops(ctx.Request.Context())

	ctx.JSON(http.StatusOK, shops)
}

// HandleAddShop godoc
// @Summary      Register a new shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        request  body      request.ShopRequest true "shop fields"
// @Success      201      {object}  domain.Shop
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /shops [post]
// @Security BearerAuth
func (h *ShopHandler) HandleAddShop(ctx *gin.Context) {
	var req request.ShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	shop, err := h.svc.AddShop(ctx.Request.Context(), shopInput(req), actorID(ctx))
	if err != nil {
		renderShopErr(ctx, "HandleAddShop", "h.svc.AddShop", err)
		return
	}

	ctx.JSON(http.StatusCreated, shop)
}

// HandleUpdateShop godoc
// @Summary      Update a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        shopID   path      int                 true "shop ID"
// @Param        request  body      request.ShopRequest true "shop fields"
// @Success      200      {object}  domain.Shop
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /shops/{shopID} [put]
// @Security BearerAuth
func (h *ShopHandler) HandleUpdateShop(ctx *gin.Context) {
	id, err := parseID(ctx.Param("shopID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ShopRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	shop, err := h.svc.UpdateShop(ctx.Request.Context(), id, shopInput(req), actorID(ctx))
	if err != nil {
		renderShopErr(ctx, "HandleUpdateShop", "h.svc.UpdateShop", err)
		return
	}

	ctx.JSON(http.StatusOK, shop)
}

// HandleDeleteShop godoc
// @Summary      Delete a shop
// @Tags         shops
// @Produce      json
// @Param        shopID  path      int true "shop ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /shops/{shopID} [delete]
// @Security BearerAuth
func (h *ShopHandler) HandleDeleteShop(ctx *gin.Context) {
	id, err := parseID(ctx.Param("shopID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteShop(ctx.Request.Context(), id, actorID(ctx)); err != nil {
		renderShopErr(ctx, "HandleDeleteShop", "h.svc.DeleteShop", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: fmt.Sprintf("Deleted shop #%d", id)})
}

// HandleSearchShops godoc
// @Summary      Search shops
// @Description  Case-insensitive substring match over name, location and manager name. An empty query returns every shop.
// @Tags         shops
// @Produce      json
// @Param        q   query     string false "search query"
// @Success      200 {array}   domain.Shop
// @Failure      401 {object}  response.Err
// @Router       /shops/search [get]
// @Security BearerAuth
func (h *ShopHandler) HandleSearchShops(ctx *gin.Context) {
	shops := h.svc.SearchShops(ctx.Request.Context(), ctx.Query("q"))

	ctx.JSON(http.StatusOK, shops)
}

func shopInput(req request.ShopRequest) service.ShopInput {
	return service.ShopInput{
		Name:        req.Name,
		Location:    req.Location,
		ManagerName: req.ManagerName,
		Phone:       req.Phone,
		Email:       req.Email,
		Status:      req.Status,
	}
}

func renderShopErr(ctx *gin.Context, handler, call string, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		response.RenderErr(ctx, response.ErrBadRequest(fieldErr))
		return
	}
	if errors.Is(err, service.ErrShopNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrShopNotFound))
		return
	}

	err = fmt.Errorf("v1.%v -> %v -> %w", handler, call, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
