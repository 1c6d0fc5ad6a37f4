package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrInvalidToken covers every verification failure; callers cannot tell a
// bad signature from an expired token.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the complete token payload: the user id plus the registered
// claims, nothing else. Email and role live in the database and are resolved
// per request, so demoting a user takes effect on tokens already issued.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies the signed credentials attached to
// protected requests. Constructed once in main and handed to whatever needs
// it; there is no package-level secret.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

// GenerateToken creates a signed token bound to exactly one user id with the
// configured expiry.
func (tm *TokenManager) GenerateToken(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "e-commerce-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tm.secret)
}

// Parse verifies signature and expiry and returns the bound claims. Any
// failure yields ErrInvalidToken; translating that to a transport status is
// the middleware's job.
func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// JWTMiddleware returns an Echo middleware that validates the bearer token
// and sets the claims on the request context. The Authorization header is the
// only accepted transport.
func JWTMiddleware(tm *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
			}
			claims, err := tm.Parse(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "not authorized to access this route"})
			}
			// attach claims to context
			c.Set("auth_claims", claims)
			return next(c)
		}
	}
}

// GetClaims extracts claims set by JWTMiddleware.
func GetClaims(c echo.Context) *Claims {
	v := c.Get("auth_claims")
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}

// RoleResolver reports the role currently stored for a user id.
type RoleResolver interface {
	RoleOf(ctx context.Context, userID string) (string, error)
}

// AdminOnly requires the stored role to be admin at request time. The role
// is looked up fresh rather than trusted from the token.
func AdminOnly(roles RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "admin role required"})
			}
			role, err := roles.RoleOf(c.Request().Context(), claims.UserID)
			if err != nil || role != "admin" {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "admin role required"})
			}
			return next(c)
		}
	}
}
