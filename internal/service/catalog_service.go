package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"brandhub/api/internal/config"
	"brandhub/api/internal/ids"
	"brandhub/api/internal/models"
	"brandhub/api/internal/repository"
)

var (
	ErrBrandExists       = errors.New("brand name already in use")
	ErrInvalidBulkAction = errors.New("invalid bulk action")
	ErrInvalidSortOrder  = errors.New("sort order must be zero or positive")
)

// ValidationError marks a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	telegramPattern = regexp.MustCompile(`^https://t\.me/.+`)
	whatsappPattern = regexp.MustCompile(`^https://wa\.me/.+`)
	websitePattern  = regexp.MustCompile(`^https?://.+`)
)

// BrandStore is the catalog persistence surface. *repository.BrandRepository
// satisfies it.
type BrandStore interface {
	Create(ctx context.Context, brand models.Brand) error
	Update(ctx context.Context, brand models.Brand) error
	GetByID(ctx context.Context, id string) (models.Brand, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q repository.BrandQuery) ([]models.Brand, error)
	Count(ctx context.Context, q repository.BrandQuery) (int, error)
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) error
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
	BulkSetActive(ctx context.Context, brandIDs []string, active bool) (int64, error)
	BulkDelete(ctx context.Context, brandIDs []string) (int64, error)
	BulkUpdateSortOrders(ctx context.Context, updates []repository.SortOrderUpdate) (int64, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	CountByStatus(ctx context.Context) (total int, active int, err error)
	Recent(ctx context.Context, limit int) ([]models.Brand, error)
}

// AdminCounter is the slice of the account store the dashboard needs.
type AdminCounter interface {
	CountActive(ctx context.Context) (int, error)
}

const categoryStatsKey = "catalog:stats:categories"

type CatalogService struct {
	brands BrandStore
	admins AdminCounter
	cache  *redis.Client
	cfg    *config.AppConfig
	log    zerolog.Logger
}

func NewCatalogService(brands BrandStore, admins AdminCounter, cache *redis.Client, cfg *config.AppConfig, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		brands: brands,
		admins: admins,
		cache:  cache,
		cfg:    cfg,
		log:    log,
	}
}

type BrandPage struct {
	Items      []models.Brand
	Pagination models.Pagination
}

func (s *CatalogService) List(ctx context.Context, filter repository.BrandFilter) (BrandPage, error) {
	q := filter.Build()

	items, err := s.brands.List(ctx, q)
	if err != nil {
		return BrandPage{}, err
	}
	total, err := s.brands.Count(ctx, q)
	if err != nil {
		return BrandPage{}, err
	}

	return BrandPage{
		Items:      items,
		Pagination: models.NewPagination(q.Page, q.PerPage, total),
	}, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (models.Brand, error) {
	return s.brands.GetByID(ctx, id)
}

// BrandInput is the whitelisted field set for creating or replacing a brand.
// Anything else in a request body never reaches storage.
type BrandInput struct {
	Name             string
	Description      string
	ShortDescription string
	Logo             string
	LogoType         models.LogoType
	Telegram         string
	WhatsApp         string
	Website          string
	Category         models.BrandCategory
	IsActive         *bool
	SortOrder        int
	Tags             []string
}

func (in *BrandInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.Logo = strings.TrimSpace(in.Logo)
	in.Telegram = strings.TrimSpace(in.Telegram)
	in.WhatsApp = strings.TrimSpace(in.WhatsApp)
	in.Website = strings.TrimSpace(in.Website)
	if in.Logo == "" {
		in.Logo = "fas fa-tag"
	}
	if in.LogoType == "" {
		in.LogoType = models.LogoTypeIcon
	}
	if in.Category == "" {
		in.Category = models.CategoryClothing
	}
}

func (in BrandInput) validate() error {
	if !in.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	if !in.LogoType.Valid() {
		return &ValidationError{Field: "logoType", Message: "must be icon or image"}
	}
	if in.Telegram != "" && !telegramPattern.MatchString(in.Telegram) {
		return &ValidationError{Field: "telegram", Message: "must be a https://t.me/ link"}
	}
	if in.WhatsApp != "" && !whatsappPattern.MatchString(in.WhatsApp) {
		return &ValidationError{Field: "whatsapp", Message: "must be a https://wa.me/ link"}
	}
	if in.Website != "" && !websitePattern.MatchString(in.Website) {
		return &ValidationError{Field: "website", Message: "must be an http(s) URL"}
	}
	if in.SortOrder < 0 {
		return &ValidationError{Field: "sortOrder", Message: "must be zero or positive"}
	}
	return nil
}

// Create rejects duplicate names before any write so the caller gets a
// conflict message rather than a bare constraint violation.
func (s *CatalogService) Create(ctx context.Context, input BrandInput) (models.Brand, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return models.Brand{}, err
	}

	if exists, err := s.brands.ExistsByName(ctx, input.Name, ""); err != nil {
		return models.Brand{}, err
	} else if exists {
		return models.Brand{}, ErrBrandExists
	}

	brand := models.Brand{
		ID:               ids.New(),
		Name:             input.Name,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Logo:             input.Logo,
		LogoType:         input.LogoType,
		Telegram:         input.Telegram,
		WhatsApp:         input.WhatsApp,
		Website:          input.Website,
		Category:         input.Category,
		IsActive:         input.IsActive == nil || *input.IsActive,
		SortOrder:        input.SortOrder,
		Tags:             input.Tags,
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		return models.Brand{}, err
	}

	s.invalidateStats(ctx)
	return brand, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, input BrandInput) (models.Brand, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return models.Brand{}, err
	}

	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, err
	}

	if exists, err := s.brands.ExistsByName(ctx, input.Name, id); err != nil {
		return models.Brand{}, err
	} else if exists {
		return models.Brand{}, ErrBrandExists
	}

	brand.Name = input.Name
	brand.Description = input.Description
	brand.ShortDescription = input.ShortDescription
	brand.Logo = input.Logo
	brand.LogoType = input.LogoType
	brand.Telegram = input.Telegram
	brand.WhatsApp = input.WhatsApp
	brand.Website = input.Website
	brand.Category = input.Category
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	brand.SortOrder = input.SortOrder
	brand.Tags = input.Tags

	if err := s.brands.Update(ctx, brand); err != nil {
		return models.Brand{}, err
	}

	s.invalidateStats(ctx)
	return brand, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *CatalogService) ToggleStatus(ctx context.Context, id string) (models.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, err
	}

	brand.IsActive = !brand.IsActive
	if err := s.brands.SetActive(ctx, brand.ID, brand.IsActive); err != nil {
		return models.Brand{}, err
	}

	s.invalidateStats(ctx)
	return brand, nil
}

func (s *CatalogService) UpdateSortOrder(ctx context.Context, id string, sortOrder int) (models.Brand, error) {
	if sortOrder < 0 {
		return models.Brand{}, ErrInvalidSortOrder
	}

	if err := s.brands.UpdateSortOrder(ctx, id, sortOrder); err != nil {
		return models.Brand{}, err
	}
	return s.brands.GetByID(ctx, id)
}

type BulkAction string

const (
	BulkActionActivate   BulkAction = "activate"
	BulkActionDeactivate BulkAction = "deactivate"
	BulkActionDelete     BulkAction = "delete"
)

// BulkAction applies one set-based store operation to the listed brands and
// returns the number of rows that single statement touched (a matched row
// counts even when its value did not change).
func (s *CatalogService) BulkAction(ctx context.Context, action BulkAction, brandIDs []string) (int64, error) {
	if len(brandIDs) == 0 {
		return 0, ErrInvalidBulkAction
	}

	var (
		affected int64
		err      error
	)
	switch action {
	case BulkActionActivate:
		affected, err = s.brands.BulkSetActive(ctx, brandIDs, true)
	case BulkActionDeactivate:
		affected, err = s.brands.BulkSetActive(ctx, brandIDs, false)
	case BulkActionDelete:
		affected, err = s.brands.BulkDelete(ctx, brandIDs)
	default:
		return 0, ErrInvalidBulkAction
	}
	if err != nil {
		return 0, err
	}

	s.invalidateStats(ctx)
	return affected, nil
}

func (s *CatalogService) UpdateSortOrders(ctx context.Context, updates []repository.SortOrderUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	for _, update := range updates {
		if update.SortOrder < 0 {
			return 0, ErrInvalidSortOrder
		}
	}
	return s.brands.BulkUpdateSortOrders(ctx, updates)
}

// CategoryStats serves from the redis cache when possible; the scheduler and
// every catalog write keep the cache fresh.
func (s *CatalogService) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, categoryStatsKey).Bytes(); err == nil {
			var stats []models.CategoryStat
			if json.Unmarshal(raw, &stats) == nil {
				return stats, nil
			}
		}
	}
	return s.RefreshCategoryStats(ctx)
}

func (s *CatalogService) RefreshCategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats, err := s.brands.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		raw, err := json.Marshal(stats)
		if err == nil {
			if err := s.cache.Set(ctx, categoryStatsKey, raw, s.cfg.Catalog.StatsCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("cache category stats failed")
			}
		}
	}
	return stats, nil
}

func (s *CatalogService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, categoryStatsKey).Err(); err != nil {
		s.log.Warn().Err(err).Msg("invalidate category stats failed")
	}
}

type DashboardStats struct {
	TotalBrands    int
	ActiveBrands   int
	InactiveBrands int
	Categories     []models.CategoryStat
	RecentBrands   []models.Brand
	ActiveAdmins   int
}

func (s *CatalogService) Dashboard(ctx context.Context) (DashboardStats, error) {
	total, active, err := s.brands.CountByStatus(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	categories, err := s.CategoryStats(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	recent, err := s.brands.Recent(ctx, 5)
	if err != nil {
		return DashboardStats{}, err
	}

	activeAdmins, err := s.admins.CountActive(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalBrands:    total,
		ActiveBrands:   active,
		InactiveBrands: total - active,
		Categories:     categories,
		RecentBrands:   recent,
		ActiveAdmins:   activeAdmins,
	}, nil
}
