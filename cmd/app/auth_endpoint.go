package main

import (
	"errors"
	"net/http"

	"github.com/YOBOUEARNAUD/e-commerce/internal/middleware"
	"github.com/YOBOUEARNAUD/e-commerce/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateDetailsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func registerHandler(authSvc *services.AuthService, tokens *middleware.TokenManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := authSvc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}

		token, err := tokens.GenerateToken(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "could not create token"})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"token":   token,
			"user":    user.Public(),
		})
	}
}

func loginHandler(authSvc *services.AuthService, tokens *middleware.TokenManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}

		token, err := tokens.GenerateToken(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"token":   token,
			"user":    user.Public(),
		})
	}
}

// logoutHandler is advisory: tokens are stateless, the client discards its
// copy. Kept so existing clients calling GET /auth/logout keep working.
func logoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{}})
	}
}

func meHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		user, err := authSvc.Me(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "user not found"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user.Public()})
	}
}

func updateDetailsHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateDetailsRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid request"})
		}

		user, err := authSvc.UpdateDetails(c.Request().Context(), claims.UserID, req.Username, req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user.Public()})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, tokens *middleware.TokenManager) {
	auth := g.Group("/auth")

	// public
	auth.POST("/register", registerHandler(authSvc, tokens))
	auth.POST("/login", loginHandler(authSvc, tokens))
	auth.GET("/logout", logoutHandler())

	// authenticated
	protected := auth.Group("")
	protected.Use(middleware.JWTMiddleware(tokens))
	protected.GET("/me", meHandler(authSvc))
	protected.PUT("/updatedetails", updateDetailsHandler(authSvc))
}
