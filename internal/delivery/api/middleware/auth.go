package middleware

import (
	"strings"

	"cakes/internal/delivery/api/response"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	"cakes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// ErrNotAccessToken is returned when a valid token of another type is presented.
var ErrNotAccessToken = errors.New("not an access token")

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Identify validates an access token and returns who it belongs to.
func (m *AuthMiddleware) Identify(tokenString string) (uuid.UUID, entity.Roles, error) {
	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "failed to validate token")
	}
	if claims.Type != service.TokenTypeAccess {
		return uuid.Nil, nil, errors.WithStack(ErrNotAccessToken)
	}

	return claims.UserID, entity.RolesFromStrings(claims.Roles), nil
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, roles, err := m.Identify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetIdentity(c, userID, roles)
		deliverycontext.AttachUser(c, userID)

		return next(c)
	}
}

// RequireRoles lets the request through when the caller holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if held.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: insufficient role")
		}
	}
}

// SetIdentity stores the authenticated caller on the context.
func SetIdentity(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRoles, roles)
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
