package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/seportal/uniportal/internal/models"
)

// principalKey is where the middleware stores the verified Principal in the
// echo context.
const principalKey = "principal"

// Principal is the verified caller identity. The service layer trusts Role
// for admin gating and UserID/StudentID for ownership checks. Tokens are
// issued elsewhere; this service only verifies them.
type Principal struct {
	UserID    uint
	StudentID string
	Name      string
	Role      string
	Year      int
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

type Claims struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Year      int    `json:"year"`
	jwt.RegisteredClaims
}

// Middleware verifies the bearer token and attaches the Principal to the
// request context.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			userID, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			role := claims.Role
			if role == "" {
				role = models.RoleStudent
			}

			WithPrincipal(c, Principal{
				UserID:    uint(userID),
				StudentID: claims.StudentID,
				Name:      claims.Name,
				Role:      role,
				Year:      claims.Year,
			})
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin principals. Must run after Middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentPrincipal(c).IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// WithPrincipal attaches a verified Principal to the request context.
func WithPrincipal(c echo.Context, p Principal) {
	c.Set(principalKey, p)
}

func CurrentPrincipal(c echo.Context) Principal {
	p, _ := c.Get(principalKey).(Principal)
	return p
}
