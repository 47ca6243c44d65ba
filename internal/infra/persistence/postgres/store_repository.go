package postgres

import (
	"context"
	"strings"
	"unicode"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Columns returned by the proximity query, enough to draw a map marker
var nearProjection = []string{"id", "slug", "name", "description", "longitude", "latitude", "address"}

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of a store. AuthorID and CreatedAt are never touched.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select("name", "slug", "description", "tags", "longitude", "latitude", "address", "photo", "updated_at").
		Updates(storeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// FindByID retrieves a store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindBySlug retrieves a store by its slug.
func (repo *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	return toStoreDomain(&storeM), nil
}

// FindByIDs retrieves every store whose id is in ids. Unknown ids are skipped.
func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by IDs")
	}

	return toStoreDomains(storeModels), nil
}

// FindPage returns stores newest first, skipping the first skip stores.
func (repo *storeRepository) FindPage(ctx context.Context, skip, limit int) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores page")
	}

	return toStoreDomains(storeModels), nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// FindByTag returns the stores carrying tag. An empty tag matches every store with at least one tag.
func (repo *storeRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	query := repo.db.WithContext(ctx)
	if tag == "" {
		query = query.Where("jsonb_array_length(tags) > 0")
	} else {
		query = query.Where("tags @> jsonb_build_array(?::text)", tag)
	}

	if err := query.
		Order("created_at DESC, id DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by tag")
	}

	return toStoreDomains(storeModels), nil
}

// ListTags counts how many stores carry each tag, most used first.
func (repo *storeRepository) ListTags(ctx context.Context) ([]entity.TagCount, error) {
	var rows []tagCountRow

	query := `
		SELECT tag, COUNT(*) AS count
		FROM stores, jsonb_array_elements_text(stores.tags) AS tag
		GROUP BY tag
		ORDER BY count DESC, tag ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]entity.TagCount, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, entity.TagCount{Tag: row.Tag, Count: row.Count})
	}

	return tags, nil
}

// TextSearch ranks stores whose name or description matches any term of query.
// Names weigh more than descriptions.
func (repo *storeRepository) TextSearch(ctx context.Context, query string, limit int) ([]entity.ScoredStore, error) {
	tsQuery := toTSQuery(query)
	if tsQuery == "" {
		return []entity.ScoredStore{}, nil
	}

	var rows []scoredStoreRow

	// Use the weighted, GIN-indexed 'search' column generated from name and description
	sql := `
		SELECT s.*, ts_rank(s.search, q) AS score
		FROM stores s, to_tsquery('english', ?) q
		WHERE s.search @@ q
		ORDER BY score DESC, s.created_at ASC, s.id ASC
		LIMIT ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(sql, tsQuery, limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	results := make([]entity.ScoredStore, 0, len(rows))
	for i := range rows {
		results = append(results, entity.ScoredStore{
			Store: toStoreDomain(&rows[i].StoreModel),
			Score: rows[i].Score,
		})
	}

	return results, nil
}

// NearPoint returns stores within maxDistanceMeters of point, nearest first.
// Only the fields needed to render a map marker are loaded.
func (repo *storeRepository) NearPoint(ctx context.Context, point orb.Point, maxDistanceMeters float64, limit int) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	// Use PostGIS ST_DWithin on the GIST-indexed geography column, then the KNN operator for ordering
	if err := repo.db.WithContext(ctx).
		Select(nearProjection).
		Where("ST_DWithin(location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)", point.Lon(), point.Lat(), maxDistanceMeters).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:  "location <-> ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography",
				Vars: []any{point.Lon(), point.Lat()},
			},
		}).
		Limit(limit).
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores near point")
	}

	return toStoreDomains(storeModels), nil
}

// CountSlugs counts stores other than excludeID whose slug matches pattern, ignoring case.
// It reads from the primary so a slug written a moment ago is seen.
func (repo *storeRepository) CountSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.slugQuery(ctx, pattern, excludeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count slugs")
	}

	return count, nil
}

// ListSlugs returns the slugs of stores other than excludeID matching pattern, ignoring case.
func (repo *storeRepository) ListSlugs(ctx context.Context, pattern string, excludeID uuid.UUID) ([]string, error) {
	var slugs []string

	if err := repo.slugQuery(ctx, pattern, excludeID).
		Order("slug ASC").
		Pluck("slug", &slugs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list slugs")
	}

	return slugs, nil
}

func (repo *storeRepository) slugQuery(ctx context.Context, pattern string, excludeID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.StoreModel{}).
		Where("slug ~* ?", pattern).
		Where("id <> ?", excludeID)
}

// toTSQuery turns free text into an OR query over its alphanumeric terms,
// so punctuation typed by users never reaches the tsquery parser.
func toTSQuery(query string) string {
	terms := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	return strings.Join(terms, " | ")
}

type tagCountRow struct {
	Tag   string
	Count int
}

type scoredStoreRow struct {
	model.StoreModel `gorm:"embedded"`
	Score            float64
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	tags := []string(data.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Tags:        tags,
		Location: entity.Location{
			Point:   orb.Point{data.Longitude, data.Latitude},
			Address: data.Address,
		},
		Photo:     data.Photo,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toStoreDomains(storeModels []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.StoreModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Tags:        datatypes.JSONSlice[string](tags),
		Longitude:   data.Location.Lng(),
		Latitude:    data.Location.Lat(),
		Address:     data.Location.Address,
		Photo:       data.Photo,
		AuthorID:    data.AuthorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
