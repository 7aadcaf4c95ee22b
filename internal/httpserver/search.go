package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/search"
	"github.com/ekarimov/restoran/internal/util"
)

type SearchHTTP struct {
	Index *search.Index
}

func (h *SearchHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.products")

	if h.Index == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search unavailable")
	}

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_failed", "status", 400, "reason", "q required")
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, products, err := h.Index.Search(ctx, q, from, limit)
	if err != nil {
		l.Error("search_failed", "status", 500, "reason", "search error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search error")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
