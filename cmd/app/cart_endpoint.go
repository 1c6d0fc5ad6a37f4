package main

import (
	"errors"
	"net/http"

	"github.com/YOBOUEARNAUD/e-commerce/internal/middleware"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
	"github.com/YOBOUEARNAUD/e-commerce/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID string `json:"productId"`
	// pointer so an omitted quantity (defaults to 1) is distinguishable from
	// an explicit 0, which is rejected downstream
	Qty *int `json:"quantity"`
}

type updateCartRequest struct {
	Qty int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService, tokens *middleware.TokenManager) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware(tokens))

	// GET cart
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": cart})
	})

	// ADD item
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		qty := 1
		if req.Qty != nil {
			qty = *req.Qty
		}
		if err := cs.Add(c.Request().Context(), claims.UserID, req.ProductID, qty); err != nil {
			return cartError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"message": "added"}})
	})

	// UPDATE quantity (set, not additive; 0 removes)
	p.PUT("/:productid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		if err := cs.UpdateQuantity(c.Request().Context(), claims.UserID, c.Param("productid"), req.Qty); err != nil {
			return cartError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"message": "updated"}})
	})

	// REMOVE item
	p.DELETE("/:productid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := cs.Remove(c.Request().Context(), claims.UserID, c.Param("productid")); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"message": "removed"}})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), claims.UserID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"message": "cleared"}})
	})
}

func cartError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "product not found"})
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
}
