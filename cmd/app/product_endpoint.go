package main

import (
	"errors"
	"net/http"

	"github.com/YOBOUEARNAUD/e-commerce/internal/middleware"
	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
	"github.com/YOBOUEARNAUD/e-commerce/internal/services"

	"github.com/labstack/echo/v4"
)

func registerProductRoutes(g *echo.Group, ps *services.ProductService, authSvc *services.AuthService, tokens *middleware.TokenManager) {
	p := g.Group("/products")

	// LIST products, optionally filtered
	p.GET("", func(c echo.Context) error {
		products, err := ps.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("keyword"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": products})
	})

	// GET one product
	p.GET("/:id", func(c echo.Context) error {
		product, err := ps.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": product})
	})

	// admin-only writes
	admin := g.Group("/products")
	admin.Use(middleware.JWTMiddleware(tokens), middleware.AdminOnly(authSvc))

	admin.POST("", func(c echo.Context) error {
		product := new(model.Product)
		if err := c.Bind(product); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		if err := ps.Create(c.Request().Context(), product); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": product})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		product := new(model.Product)
		if err := c.Bind(product); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		product.ID = c.Param("id")
		if err := ps.Update(c.Request().Context(), product); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "product not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": product})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		if err := ps.Delete(c.Request().Context(), c.Param("id")); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{}})
	})
}
