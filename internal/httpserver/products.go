package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeromade/storefront/internal/service/catalog"
)

type ProductHandler struct {
	Svc *catalog.Service
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Svc.Products(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.Svc.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	categories, err := h.Svc.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req catalog.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	product, err := h.Svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.Svc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}

func (h *ProductHandler) AddReview(c echo.Context) error {
	var req catalog.ReviewInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	claims := claimsFrom(c)
	reviewer := catalog.Reviewer{}
	if claims != nil {
		// The original API records the reviewer's email as the display name.
		reviewer = catalog.Reviewer{ID: claims.Subject, Name: claims.Email}
	}

	review, err := h.Svc.AddReview(c.Request().Context(), c.Param("id"), req, reviewer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}
