// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/slug"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/sync/errgroup"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	reviewRepo repository.ReviewRepository
	publisher  service.EventPublisher
	catalog    *config.CatalogConfig
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	reviewRepo repository.ReviewRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	// If Catalog is not configured, fall back to the built-in defaults
	if cfg.Catalog == nil {
		cfg.Catalog = config.DefaultCatalogConfig()
	}

	return &catalogService{
		txManager:  txManager,
		storeRepo:  storeRepo,
		reviewRepo: reviewRepo,
		publisher:  publisher,
		catalog:    cfg.Catalog,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns one page of stores, newest first.
func (srv *catalogService) ListStores(ctx context.Context, page int) (*usecase.StorePage, error) {
	if page < 1 {
		page = 1
	}
	limit := srv.catalog.PageSize
	if page-1 > math.MaxInt/limit {
		return nil, srv.pageOutOfRange(ctx, page, limit)
	}
	skip := (page - 1) * limit

	srv.log(ctx).Debug("Listing stores", slog.Int("page", page), slog.Int("limit", limit))

	var (
		stores []*entity.Store
		count  int64
		g      errgroup.Group
	)
	g.Go(func() error {
		var err error
		stores, err = srv.storeRepo.FindPage(ctx, skip, limit)

		return errors.Wrap(err, "failed to find stores page")
	})
	g.Go(func() error {
		var err error
		count, err = srv.storeRepo.Count(ctx)

		return errors.Wrap(err, "failed to count stores")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := pageCount(count, limit)
	if len(stores) == 0 && skip > 0 {
		return nil, errors.WithStack(&domainerrors.PageOutOfRangeError{Requested: page, Last: pages})
	}

	return &usecase.StorePage{
		Stores: stores,
		Page:   page,
		Pages:  pages,
		Count:  count,
	}, nil
}

// pageOutOfRange reports a page whose offset cannot even be computed
func (srv *catalogService) pageOutOfRange(ctx context.Context, page, limit int) error {
	count, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count stores")
	}

	return errors.WithStack(&domainerrors.PageOutOfRangeError{Requested: page, Last: pageCount(count, limit)})
}

func pageCount(count int64, limit int) int {
	return int(math.Ceil(float64(count) / float64(limit)))
}

// ListByTag returns the tag facets along with the stores carrying tag.
// An empty tag lists every store that has at least one tag.
func (srv *catalogService) ListByTag(ctx context.Context, tag string) (*usecase.TagListing, error) {
	tag = strings.TrimSpace(tag)

	var (
		tags   []entity.TagCount
		stores []*entity.Store
		g      errgroup.Group
	)
	g.Go(func() error {
		var err error
		tags, err = srv.storeRepo.ListTags(ctx)

		return errors.Wrap(err, "failed to list tags")
	})
	g.Go(func() error {
		var err error
		stores, err = srv.storeRepo.FindByTag(ctx, tag)

		return errors.Wrap(err, "failed to find stores by tag")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &usecase.TagListing{
		Tag:    tag,
		Tags:   tags,
		Stores: stores,
	}, nil
}

// SearchStores ranks stores by full-text relevance. A blank query yields no results.
func (srv *catalogService) SearchStores(ctx context.Context, query string) ([]entity.ScoredStore, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.ScoredStore{}, nil
	}

	results, err := srv.storeRepo.TextSearch(ctx, query, srv.catalog.SearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	slices.SortStableFunc(results, func(a, b entity.ScoredStore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return results, nil
}

// NearbyStores finds stores within the default radius of a point.
func (srv *catalogService) NearbyStores(ctx context.Context, lng, lat float64) ([]entity.NearbyStore, error) {
	return srv.NearbyStoresWithin(ctx, lng, lat, srv.catalog.NearMaxDistance)
}

// NearbyStoresWithin finds stores within radiusMeters of a point, nearest first.
// The radius is capped at the configured ceiling.
func (srv *catalogService) NearbyStoresWithin(ctx context.Context, lng, lat, radiusMeters float64) ([]entity.NearbyStore, error) {
	if err := validateCoordinates(lng, lat); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("radius must be positive"))
	}
	radiusMeters = min(radiusMeters, srv.catalog.NearRadiusCeiling)

	origin := orb.Point{lng, lat}
	stores, err := srv.storeRepo.NearPoint(ctx, origin, radiusMeters, srv.catalog.NearLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores near point")
	}

	nearby := make([]entity.NearbyStore, 0, len(stores))
	for _, store := range stores {
		nearby = append(nearby, entity.NearbyStore{
			Store:          store,
			DistanceMeters: geo.Distance(origin, store.Location.Point),
		})
	}

	return nearby, nil
}

// TopStores ranks stores by average review rating.
func (srv *catalogService) TopStores(ctx context.Context) ([]*entity.RatedStore, error) {
	stores, err := srv.reviewRepo.TopStores(ctx, srv.catalog.TopMinReviews, srv.catalog.TopLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute top stores")
	}

	return stores, nil
}

// GetStore retrieves a store by id.
func (srv *catalogService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translateStoreError(err, "failed to find store by ID")
	}

	return store, nil
}

// GetStoreBySlug retrieves a store and its reviews.
func (srv *catalogService) GetStoreBySlug(ctx context.Context, storeSlug string) (*usecase.StoreDetail, error) {
	// No stored slug can match a malformed one
	if !slug.Valid(storeSlug) {
		return nil, errors.Wrapf(domainerrors.ErrStoreNotFound, "malformed slug %q", storeSlug)
	}

	store, err := srv.storeRepo.FindBySlug(ctx, storeSlug)
	if err != nil {
		return nil, translateStoreError(err, "failed to find store by slug")
	}

	reviews, err := srv.reviewRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store reviews")
	}

	return &usecase.StoreDetail{
		Store:   store,
		Reviews: reviews,
	}, nil
}

// GetStoreForEdit retrieves a store only if actingUserID owns it.
func (srv *catalogService) GetStoreForEdit(ctx context.Context, storeID, actingUserID uuid.UUID) (*entity.Store, error) {
	store, err := srv.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := srv.ConfirmOwner(store, actingUserID); err != nil {
		return nil, err
	}

	return store, nil
}

// ConfirmOwner fails unless actingUserID authored store.
func (srv *catalogService) ConfirmOwner(store *entity.Store, actingUserID uuid.UUID) error {
	if !store.IsOwnedBy(actingUserID) {
		return errors.WithStack(domainerrors.ErrNotStoreOwner)
	}

	return nil
}

// CreateStore validates the input, derives a unique slug and persists the store.
func (srv *catalogService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput, authorID uuid.UUID) (*entity.Store, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("store input is required"))
	}
	if authorID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("author is required"))
	}

	normalizeCreateInput(input)
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	store := &entity.Store{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
		Location: entity.Location{
			Point:   input.Location.Point(),
			Address: input.Location.Address,
		},
		Photo:     input.Photo,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	srv.log(ctx).Info("Creating store", slog.String("name", store.Name), slog.Any("author_id", authorID))

	err := srv.saveWithSlug(ctx, store, true, func(repo repository.StoreRepository) error {
		return repo.Create(ctx, store)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Debug("Store created", slog.Any("store_id", store.ID), slog.String("slug", store.Slug))

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:    service.EventStoreCreated,
		StoreID: store.ID.String(),
		Slug:    store.Slug,
		UserID:  authorID.String(),
	})

	return store, nil
}

// UpdateStore applies the input to a store owned by actingUserID. The slug is
// regenerated only when the name changes.
func (srv *catalogService) UpdateStore(ctx context.Context, storeID uuid.UUID, input *usecase.UpdateStoreInput, actingUserID uuid.UUID) (*entity.Store, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("store input is required"))
	}
	if input.Location != nil {
		if err := srv.validateLocation(input.Location); err != nil {
			return nil, err
		}
	}

	store, err := srv.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := srv.ConfirmOwner(store, actingUserID); err != nil {
		return nil, err
	}

	nameChanged := applyStoreUpdates(store, input)
	if err := srv.validateInput(storeToInput(store)); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating store", slog.Any("store_id", store.ID), slog.Bool("name_changed", nameChanged))

	err = srv.saveWithSlug(ctx, store, nameChanged, func(repo repository.StoreRepository) error {
		return repo.Update(ctx, store)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:    service.EventStoreUpdated,
		StoreID: store.ID.String(),
		Slug:    store.Slug,
		UserID:  actingUserID.String(),
	})

	return store, nil
}

// saveWithSlug runs write in a transaction, deriving the slug first when
// regenerate is set. A slug conflict is retried exactly once with a suffix
// chosen from the slugs actually taken.
func (srv *catalogService) saveWithSlug(ctx context.Context, store *entity.Store, regenerate bool, write func(repository.StoreRepository) error) error {
	attempt := func(retry bool) error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			storeRepo := repoFactory.StoreRepo()

			if regenerate {
				storeSlug, err := srv.deriveSlug(ctx, storeRepo, store, retry)
				if err != nil {
					return err
				}
				store.Slug = storeSlug
			}

			if err := write(storeRepo); err != nil {
				if errors.Is(err, repository.ErrSlugTaken) {
					return errors.Wrapf(domainerrors.ErrSlugConflict, "slug %q already taken", store.Slug)
				}
				if errors.Is(err, repository.ErrStoreNotFound) {
					return errors.Wrap(domainerrors.ErrStoreNotFound, "store disappeared during save")
				}

				return errors.Wrap(err, "failed to save store")
			}

			return nil
		})
	}

	err := attempt(false)
	if err == nil || !regenerate || !errors.Is(err, domainerrors.ErrSlugConflict) {
		return err
	}

	srv.log(ctx).Warn("Slug conflict, retrying once", slog.Any("store_id", store.ID), slog.String("slug", store.Slug))

	return attempt(true)
}

func (srv *catalogService) deriveSlug(ctx context.Context, storeRepo repository.StoreRepository, store *entity.Store, retry bool) (string, error) {
	if !retry {
		return slug.Generate(ctx, store.Name, func(ctx context.Context, pattern string) (int64, error) {
			return storeRepo.CountSlugs(ctx, pattern, store.ID)
		})
	}

	base := slug.Slugify(store.Name)
	taken, err := storeRepo.ListSlugs(ctx, slug.Pattern(base), store.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to list existing slugs")
	}
	if len(taken) == 0 {
		return base, nil
	}

	return slug.Next(base, taken), nil
}

func (srv *catalogService) validateInput(input *usecase.CreateStoreInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validationDetails(err)))
	}

	return srv.validateLocation(input.Location)
}

// validateLocation rejects a location with an omitted or out of range coordinate
func (srv *catalogService) validateLocation(location *usecase.LocationInput) error {
	if err := srv.validate.Struct(location); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validationDetails(err)))
	}

	return validateCoordinates(*location.Longitude, *location.Latitude)
}

// applyStoreUpdates applies the update input to a store and reports whether the name changed.
func applyStoreUpdates(store *entity.Store, input *usecase.UpdateStoreInput) bool {
	nameChanged := false
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		nameChanged = name != store.Name
		store.Name = name
	}
	if input.Description != nil {
		store.Description = strings.TrimSpace(*input.Description)
	}
	if input.Tags != nil {
		store.Tags = normalizeTags(*input.Tags)
	}
	if input.Location != nil {
		store.Location = entity.Location{
			Point:   input.Location.Point(),
			Address: strings.TrimSpace(input.Location.Address),
		}
	}
	if input.Photo != nil {
		store.Photo = strings.TrimSpace(*input.Photo)
	}
	store.UpdatedAt = time.Now()

	return nameChanged
}

func storeToInput(store *entity.Store) *usecase.CreateStoreInput {
	lng, lat := store.Location.Lng(), store.Location.Lat()

	return &usecase.CreateStoreInput{
		Name:        store.Name,
		Description: store.Description,
		Tags:        store.Tags,
		Location: &usecase.LocationInput{
			Longitude: &lng,
			Latitude:  &lat,
			Address:   store.Location.Address,
		},
		Photo: store.Photo,
	}
}

func normalizeCreateInput(input *usecase.CreateStoreInput) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Tags = normalizeTags(input.Tags)
	input.Photo = strings.TrimSpace(input.Photo)
	if input.Location != nil {
		input.Location.Address = strings.TrimSpace(input.Location.Address)
	}
}

// normalizeTags trims tags and drops blank ones. Order and duplicates are kept.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			normalized = append(normalized, tag)
		}
	}

	return normalized
}

func validateCoordinates(lng, lat float64) error {
	if math.IsNaN(lng) || math.IsNaN(lat) || lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("coordinates out of range: lng=%v lat=%v", lng, lat),
		))
	}

	return nil
}

func validationDetails(err error) string {
	fieldErrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldErr.Namespace(), fieldErr.Tag()))
	}

	return strings.Join(details, "; ")
}

func translateStoreError(err error, message string) error {
	if errors.Is(err, repository.ErrStoreNotFound) {
		return errors.Wrap(domainerrors.ErrStoreNotFound, message)
	}

	return errors.Wrap(err, message)
}
