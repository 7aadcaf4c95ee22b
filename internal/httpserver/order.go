package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/service"
	"github.com/ekarimov/restoran/internal/transport"
	"github.com/ekarimov/restoran/internal/util"
)

type OrderHTTP struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

// PlaceOrder is the public checkout endpoint. Stock shortages come back as
// a 409 with per-product detail so the UI can tell the customer exactly
// which dish ran out; the cart stays intact for a retry.
func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Checkout.PlaceOrder(ctx, cartSession(c), req)
	if err != nil {
		var stockErr *service.StockError
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("place_order_failed", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &stockErr):
			l.Warn("place_order_failed", "status", 409, "reason", "insufficient stock", "error", err)
			return c.JSON(http.StatusConflict, echo.Map{
				"error":     "insufficient stock",
				"shortages": stockErr.Shortages,
			})
		default:
			l.Error("place_order_failed", "status", 500, "reason", "cannot place order", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot place order")
		}
	}

	l.Info("place_order_success", "orderID", order.ID, "total", order.TotalAmount)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	order, err := h.Orders.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_failed", "status", 404, "reason", "order not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		l.Error("get_order_failed", "status", 500, "reason", "cannot get order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get order")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	status := c.QueryParam("status")

	offset, limit := util.Calculate(page, size)

	total, orders, err := h.Orders.ListOrders(ctx, status, offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("list_orders_failed", "status", 400, "reason", "invalid status filter", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("list_orders_failed", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": orders,
		"meta": map[string]any{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Checkout.SetOrderStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_status_failed", "status", 400, "reason", "unknown status", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_status_failed", "status", 404, "reason", "order not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		default:
			l.Error("update_status_failed", "status", 500, "reason", "cannot update status", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update status")
		}
	}

	l.Info("update_status_success", "orderID", order.ID, "new_status", order.Status)
	return c.JSON(http.StatusOK, order)
}
