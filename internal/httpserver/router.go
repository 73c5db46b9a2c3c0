package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeromade/storefront/internal/service/account"
)

type Deps struct {
	AccountSvc     *account.Service
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
	OrderHandler   *OrderHandler
	SearchHandler  *SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "zeromade-api"})
	})

	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/:id", d.ProductHandler.GetProduct)
	api.GET("/categories", d.ProductHandler.GetCategories)

	authed := Authenticate(d.AccountSvc)
	api.POST("/products", d.ProductHandler.CreateProduct, authed, RequireAdmin)
	api.DELETE("/products/:id", d.ProductHandler.DeleteProduct, authed, RequireAdmin)
	api.POST("/products/:id/reviews", d.ProductHandler.AddReview, authed)

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)

	api.POST("/orders", d.OrderHandler.PlaceOrder)
	api.GET("/orders", d.OrderHandler.ListOrders)
	api.GET("/orders/:id", d.OrderHandler.GetOrder)

	if d.SearchHandler != nil && d.SearchHandler.Client != nil {
		api.GET("/search", d.SearchHandler.Search)
	}
}
