package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/ekarimov/restoran/internal/middleware/auth"
)

type Deps struct {
	Catalog   *CatalogHTTP
	Cart      *CartHTTP
	Orders    *OrderHTTP
	Admins    *AdminHTTP
	Search    *SearchHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := authmw.New(d.JWTSecret)

	products := e.Group("/menu/products")
	products.GET("/search", d.Search.SearchProducts)
	products.GET("", d.Catalog.GetProducts)
	products.GET("/:id", d.Catalog.GetProduct)

	adminProducts := products.Group("", auth.RequireAdmin)
	adminProducts.POST("", d.Catalog.CreateProduct)
	adminProducts.PATCH("/:id", d.Catalog.PatchProduct)
	adminProducts.DELETE("/:id", d.Catalog.DeleteProduct)

	crt := e.Group("/cart")
	crt.GET("", d.Cart.GetCart)
	crt.POST("/items", d.Cart.AddItem)
	crt.POST("/items/:id/increase", d.Cart.IncreaseQuantity)
	crt.POST("/items/:id/decrease", d.Cart.DecreaseQuantity)
	crt.DELETE("/items/:id", d.Cart.RemoveItem)
	crt.DELETE("", d.Cart.ClearCart)

	e.POST("/orders", d.Orders.PlaceOrder)

	adminOrders := e.Group("/orders", auth.RequireAdmin)
	adminOrders.GET("", d.Orders.ListOrders)
	adminOrders.GET("/:id", d.Orders.GetOrder)
	adminOrders.PATCH("/:id/status", d.Orders.UpdateOrderStatus)

	e.POST("/auth/login", d.Admins.Login)
	e.POST("/auth/logout", d.Admins.Logout)

	admins := e.Group("/admins", auth.RequireAdmin)
	admins.GET("", d.Admins.ListAdmins)
	admins.GET("/:id", d.Admins.GetAdmin)
	admins.POST("", d.Admins.CreateAdmin)
	admins.PATCH("/:id", d.Admins.PatchAdmin)
	admins.DELETE("/:id", d.Admins.DeleteAdmin)
}
