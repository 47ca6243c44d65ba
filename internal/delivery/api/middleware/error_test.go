package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "application error",
			err:        errors.Wrap(domainerrors.ErrStoreNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "STORE_NOT_FOUND",
		},
		{
			name:        "page out of range carries the last page",
			err:         errors.WithStack(&domainerrors.PageOutOfRangeError{Requested: 9, Last: 3}),
			wantStatus:  http.StatusNotFound,
			wantCode:    "PAGE_OUT_OF_RANGE",
			wantDetails: "last page is 3",
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error hides internals",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("syntax error"), "failed to create store"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
	}

	m := NewErrorMiddleware(slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
			assert.NotContains(t, rec.Body.String(), "syntax error")
		})
	}
}

func TestIdentityMiddleware_RequireUser(t *testing.T) {
	m := NewIdentityMiddleware(slog.Default())

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "not-a-uuid", wantStatus: http.StatusUnauthorized},
		{name: "nil uuid", header: "00000000-0000-0000-0000-000000000000", wantStatus: http.StatusUnauthorized},
		{name: "valid user", header: "5b0f8c3e-7d3c-4c1e-9a57-2f6f0c9d1a11", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/stores", nil)
			if tt.header != "" {
				req.Header.Set("X-User-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.RequireUser(func(c echo.Context) error {
				userID, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, tt.header, userID.String())

				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestIdentityMiddleware_IdentifyAllowsAnonymous(t *testing.T) {
	m := NewIdentityMiddleware(slog.Default())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := m.Identify(func(c echo.Context) error {
		called = true
		_, ok := GetUserID(c)
		assert.False(t, ok)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}
