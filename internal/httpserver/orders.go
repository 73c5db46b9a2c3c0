package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeromade/storefront/internal/service/orders"
)

type OrderHandler struct {
	Svc *orders.Service
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req orders.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	order, err := h.Svc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.Svc.Order(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	list, err := h.Svc.Orders(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
