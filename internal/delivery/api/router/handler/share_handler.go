package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Store pages keep their slug, so a rendered code stays valid for a while
const qrMaxAge = time.Hour

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ShareCode service.ShareCodeService
	Logger    *slog.Logger
}

// ShareHandler serves printable QR codes for store pages and resolves scanned ones
type ShareHandler struct {
	catalogUC usecase.CatalogUsecase
	shareCode service.ShareCodeService
	logger    *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		catalogUC: params.CatalogUC,
		shareCode: params.ShareCode,
		logger:    params.Logger,
	}
}

// StoreQR returns a PNG QR code linking to the store page
func (h *ShareHandler) StoreQR(c echo.Context) error {
	detail, err := h.catalogUC.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shareCode.StoreQR(detail.Store.Slug)
	if err != nil {
		return errors.Wrap(err, "failed to render store QR code")
	}

	return response.Image(c, "image/png", png, qrMaxAge)
}

// ResolveQR turns the payload of a scanned store code back into the store page
func (h *ShareHandler) ResolveQR(c echo.Context) error {
	storeSlug, err := h.shareCode.ParseStoreQR(c.QueryParam("code"))
	if err != nil {
		h.logger.Debug("Rejected share code", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_SHARE_CODE", "The code does not link to a store page")
	}

	detail, err := h.catalogUC.GetStoreBySlug(c.Request().Context(), storeSlug)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreDetailResponse(detail))
}
