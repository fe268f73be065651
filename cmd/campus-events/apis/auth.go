package apis

import (
	"errors"
	"net/http"
	"strings"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"

	identityKey = "identity"
)

// Claims are issued by the identity provider; sub carries the user id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware accepts HS256 bearer tokens signed with secret and
// stores the caller's identity on the context.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, msg := parseBearer(c, secret)
			if msg != "" {
				return c.JSON(
					http.StatusUnauthorized,
					model.BaseResponse{
						Message: msg,
					},
				)
			}

			c.Set(identityKey, who)
			return next(c)
		}
	}
}

// NewOptionalAuthMiddleware lets anonymous requests through. A request that
// does carry an Authorization header must present a valid token.
func NewOptionalAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	required := NewAuthMiddleware(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withIdentity := required(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			return withIdentity(c)
		}
	}
}

// parseBearer returns a non-empty message when the request is not
// authenticated.
func parseBearer(c echo.Context, secret []byte) (model.Identity, string) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return model.Identity{}, "missing bearer token"
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || claims.Subject == "" {
		return model.Identity{}, "invalid token"
	}

	return model.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, ""
}

// RequireRole must run after the auth middleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, ok := identityFrom(c)
			if ok {
				for _, r := range roles {
					if who.Role == r {
						return next(c)
					}
				}
			}
			return c.JSON(
				http.StatusForbidden,
				model.BaseResponse{
					Message: "forbidden",
				},
			)
		}
	}
}

func isModerator(who model.Identity) bool {
	return who.Role == RoleModerator || who.Role == RoleAdmin
}

func identityFrom(c echo.Context) (model.Identity, bool) {
	who, ok := c.Get(identityKey).(model.Identity)
	return who, ok
}
