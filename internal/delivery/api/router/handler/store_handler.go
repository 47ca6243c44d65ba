package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	apivalidator "storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// StoreHandler holds dependencies for catalog handlers
type StoreHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListStores handles the paginated listing. The page comes from the path or the "page" query parameter.
func (h *StoreHandler) ListStores(c echo.Context) error {
	page := 1
	var err error
	if c.Param("page") != "" {
		err = echo.PathParamsBinder(c).Int("page", &page).BindError()
	} else {
		err = echo.QueryParamsBinder(c).Int("page", &page).BindError()
	}
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGE", "Page must be a number")
	}

	result, err := h.catalogUC.ListStores(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStorePageResponse(result))
}

// CreateStore handles store creation by the acting user
func (h *StoreHandler) CreateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "A signed-in user is required")
	}

	var req usecase.CreateStoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", apivalidator.Details(err))
	}

	store, err := h.catalogUC.CreateStore(c.Request().Context(), &req, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newStoreResponse(store))
}

// GetStore handles retrieving a store by id
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID format")
	}

	store, err := h.catalogUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store))
}

// EditStore returns the store for its owner to edit
func (h *StoreHandler) EditStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "A signed-in user is required")
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID format")
	}

	store, err := h.catalogUC.GetStoreForEdit(c.Request().Context(), storeID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store))
}

// UpdateStore handles partial updates by the store's owner
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "A signed-in user is required")
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID format")
	}

	var req usecase.UpdateStoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", apivalidator.Details(err))
	}

	store, err := h.catalogUC.UpdateStore(c.Request().Context(), storeID, &req, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store))
}

// GetStoreBySlug handles the store page with its reviews
func (h *StoreHandler) GetStoreBySlug(c echo.Context) error {
	detail, err := h.catalogUC.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreDetailResponse(detail))
}

// ListByTag handles the tag page. Without a tag every tagged store is listed.
func (h *StoreHandler) ListByTag(c echo.Context) error {
	listing, err := h.catalogUC.ListByTag(c.Request().Context(), c.Param("tag"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTagListingResponse(listing))
}

// SearchStores handles full-text search over names and descriptions
func (h *StoreHandler) SearchStores(c echo.Context) error {
	results, err := h.catalogUC.SearchStores(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newScoredStoreResponses(results))
}

// NearbyStores handles the proximity search. "radius" is optional and in meters.
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	var lng, lat, radius float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lng", &lng).
		MustFloat64("lat", &lat).
		Float64("radius", &radius).
		BindError(); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_COORDINATES", "lng and lat are required numbers", err.Error())
	}

	ctx := c.Request().Context()

	var (
		results []entity.NearbyStore
		err     error
	)
	if strings.TrimSpace(c.QueryParam("radius")) != "" {
		results, err = h.catalogUC.NearbyStoresWithin(ctx, lng, lat, radius)
	} else {
		results, err = h.catalogUC.NearbyStores(ctx, lng, lat)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNearbyStoreResponses(results))
}

// TopStores handles the ranking by average review rating
func (h *StoreHandler) TopStores(c echo.Context) error {
	results, err := h.catalogUC.TopStores(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRatedStoreResponses(results))
}
