package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IdentityMiddleware resolves the acting user from the X-User-Id header.
// Authentication happens upstream; this service only trusts the header.
type IdentityMiddleware struct {
	logger *slog.Logger
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		logger: logger,
	}
}

// Identify attaches the user to the request when the header carries a valid id.
// Anonymous requests pass through.
func (m *IdentityMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, ok := parseUserID(c); ok {
			m.attach(c, userID)
		}

		return next(c)
	}
}

// RequireUser rejects requests without a valid user id with 401.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := parseUserID(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "A signed-in user is required")
		}

		m.attach(c, userID)

		return next(c)
	}
}

func (m *IdentityMiddleware) attach(c echo.Context, userID uuid.UUID) {
	deliverycontext.SetUserID(c, userID)
	deliverycontext.AddLogAttrs(c, m.logger, slog.String("user_id", userID.String()))
}

func parseUserID(c echo.Context) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXUserID))
	if raw == "" {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetUserID returns the user attached by Identify or RequireUser.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
