package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/transport"
)

func checkoutBody() transport.CheckoutRequest {
	return transport.CheckoutRequest{
		CustomerName:  "Aibek",
		CustomerPhone: "+996700000001",
		PlaceNumber:   "12",
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	t.Parallel()

	e, r := newTestEnv(t)
	plov := seedTestProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20), Discount: 10, Stock: 10})
	seedTestCart(t, r, "sess-1", plov, 2)

	rec := doJSON(e, http.MethodPost, "/orders", checkoutBody(), sessionCookie("sess-1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order models.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(36)), "total %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(18)))
	assert.True(t, order.Items[0].OriginalPrice.Equal(decimal.NewFromInt(20)))

	got, err := r.GetProduct(context.Background(), plov.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(8), got.Stock)
}

func TestPlaceOrder_ValidationBadRequest(t *testing.T) {
	t.Parallel()

	e, r := newTestEnv(t)
	plov := seedTestProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20), Stock: 10})
	seedTestCart(t, r, "sess-1", plov, 2)

	body := checkoutBody()
	body.CustomerPhone = ""

	rec := doJSON(e, http.MethodPost, "/orders", body, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestPlaceOrder_StockConflict(t *testing.T) {
	t.Parallel()

	e, r := newTestEnv(t)
	plov := seedTestProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20), Stock: 1})
	seedTestCart(t, r, "sess-1", plov, 3)

	rec := doJSON(e, http.MethodPost, "/orders", checkoutBody(), sessionCookie("sess-1"))
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	var resp struct {
		Error     string `json:"error"`
		Shortages []struct {
			ProductID uint   `json:"product_id"`
			Title     string `json:"title"`
			Requested uint   `json:"requested"`
			Available uint   `json:"available"`
		} `json:"shortages"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "insufficient stock", resp.Error)
	require.Len(t, resp.Shortages, 1)
	assert.Equal(t, plov.ID, resp.Shortages[0].ProductID)
	assert.Equal(t, uint(3), resp.Shortages[0].Requested)
	assert.Equal(t, uint(1), resp.Shortages[0].Available)

	// cart survives for a retry
	lines, err := r.LoadCart(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestOrderRoutes_RequireAdmin(t *testing.T) {
	t.Parallel()

	e, _ := newTestEnv(t)

	rec := doJSON(e, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/orders", nil, &http.Cookie{Name: "accessToken", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/orders", nil, adminCookie(t))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestListOrders_StatusFilter(t *testing.T) {
	t.Parallel()

	e, r := newTestEnv(t)
	plov := seedTestProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20), Stock: 10})
	seedTestCart(t, r, "sess-1", plov, 1)

	rec := doJSON(e, http.MethodPost, "/orders", checkoutBody(), sessionCookie("sess-1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/orders?status=pending", nil, adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data []models.Order `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(1), resp.Meta.Total)
	require.Len(t, resp.Data, 1)

	rec = doJSON(e, http.MethodGet, "/orders?status=shipped", nil, adminCookie(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	e, r := newTestEnv(t)
	plov := seedTestProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20), Stock: 10})
	seedTestCart(t, r, "sess-1", plov, 1)

	rec := doJSON(e, http.MethodPost, "/orders", checkoutBody(), sessionCookie("sess-1"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.Order
	decodeBody(t, rec, &order)

	rec = doJSON(e, http.MethodPatch, "/orders/"+order.ID+"/status",
		transport.UpdateOrderStatusRequest{Status: models.OrderStatusCompleted}, adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Order
	decodeBody(t, rec, &updated)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)

	rec = doJSON(e, http.MethodPatch, "/orders/"+order.ID+"/status",
		transport.UpdateOrderStatusRequest{Status: "shipped"}, adminCookie(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/orders/ORD-missing/status",
		transport.UpdateOrderStatusRequest{Status: models.OrderStatusCompleted}, adminCookie(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	e, _ := newTestEnv(t)

	rec := doJSON(e, http.MethodGet, "/orders/ORD-missing", nil, adminCookie(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
