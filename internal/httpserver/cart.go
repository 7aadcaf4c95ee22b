package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ekarimov/restoran/internal/cart"
	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/pricing"
	"github.com/ekarimov/restoran/internal/service"
	"github.com/ekarimov/restoran/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func cartResponse(c *cart.Cart) transport.CartResponse {
	return transport.CartResponse{
		Items:        c.Lines(),
		TotalItems:   c.TotalItems(),
		TotalPrice:   pricing.Round2(c.TotalPrice()),
		TotalSavings: pricing.Round2(c.TotalSavings()),
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	crt, err := h.Svc.GetCart(ctx, cartSession(c))
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "reason", "cannot load cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load cart")
	}

	return c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == 0 {
		l.Warn("add_item_failed", "status", 400, "reason", "product_id required")
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	crt, err := h.Svc.AddItem(ctx, cartSession(c), req.ProductID)
	if err != nil {
		l.Error("add_item_failed", "status", 500, "reason", "cannot update cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart")
	}

	return c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *CartHTTP) IncreaseQuantity(c echo.Context) error {
	return h.lineTransition(c, "cart.increase_quantity", h.Svc.IncreaseQuantity)
}

func (h *CartHTTP) DecreaseQuantity(c echo.Context) error {
	return h.lineTransition(c, "cart.decrease_quantity", h.Svc.DecreaseQuantity)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	return h.lineTransition(c, "cart.remove_item", h.Svc.RemoveItem)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	if err := h.Svc.ClearCart(ctx, cartSession(c)); err != nil {
		l.Error("clear_cart_failed", "status", 500, "reason", "cannot clear cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	return c.JSON(http.StatusOK, cartResponse(cart.New(nil)))
}

// lineTransition shares the id parsing and error mapping of the per-line
// cart operations. Unknown products are no-ops inside the state machine,
// so the happy path is the only path.
func (h *CartHTTP) lineTransition(c echo.Context, name string, fn func(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error)) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", name)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("cart_transition_failed", "status", 400, "reason", "id is not a positive integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}

	crt, err := fn(ctx, cartSession(c), uint(id))
	if err != nil {
		l.Error("cart_transition_failed", "status", 500, "reason", "cannot update cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart")
	}

	return c.JSON(http.StatusOK, cartResponse(crt))
}
