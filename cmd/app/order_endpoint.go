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

type createOrderRequest struct {
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   model.PaymentMethod   `json:"paymentMethod"`
	Notes           string                `json:"notes"`
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// requestUser loads the stored user behind the verified token. The token only
// carries the id; role and email always come from here.
func requestUser(c echo.Context, authSvc *services.AuthService) (*model.User, error) {
	claims := middleware.GetClaims(c)
	return authSvc.Me(c.Request().Context(), claims.UserID)
}

func registerOrderRoutes(g *echo.Group, svc *services.OrderService, authSvc *services.AuthService, tokens *middleware.TokenManager) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware(tokens))

	// CREATE order from the stored cart
	p.POST("", func(c echo.Context) error {
		req := new(createOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := requestUser(c, authSvc)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
		}

		order, err := svc.Create(c.Request().Context(), user, services.CreateRequest{
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
		})
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": order})
	})

	// LIST own orders (admins see everything)
	p.GET("", func(c echo.Context) error {
		user, err := requestUser(c, authSvc)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
		}
		var orders []model.Order
		if user.Role == model.RoleAdmin {
			orders, err = svc.ListAll(c.Request().Context())
		} else {
			orders, err = svc.List(c.Request().Context(), user.ID)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": orders})
	})

	// GET one order
	p.GET("/:id", func(c echo.Context) error {
		user, err := requestUser(c, authSvc)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
		}
		order, err := svc.GetByID(c.Request().Context(), user.ID, user.Role, c.Param("id"))
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": order})
	})

	// CANCEL own order
	p.PUT("/:id/cancel", func(c echo.Context) error {
		user, err := requestUser(c, authSvc)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
		}
		order, err := svc.Cancel(c.Request().Context(), user.ID, user.Role, c.Param("id"))
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": order})
	})

	// admin-only lifecycle operations
	admin := g.Group("/orders")
	admin.Use(middleware.JWTMiddleware(tokens), middleware.AdminOnly(authSvc))

	admin.PUT("/:id/status", func(c echo.Context) error {
		req := new(updateStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}
		order, err := svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": order})
	})

	admin.PUT("/:id/confirm", func(c echo.Context) error {
		order, err := svc.Confirm(c.Request().Context(), c.Param("id"))
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": order})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{}})
	})
}

func orderError(c echo.Context, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": vErr.Errors})
	case errors.Is(err, repository.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "order not found"})
	case errors.Is(err, services.ErrNotOrderOwner):
		return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidPayment):
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
}
