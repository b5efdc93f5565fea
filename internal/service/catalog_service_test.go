package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"brandhub/api/internal/config"
	"brandhub/api/internal/models"
	"brandhub/api/internal/repository"
)

type fakeBrandStore struct {
	brands map[string]models.Brand

	createCalls int
	listQueries []repository.BrandQuery
	total       int

	bulkActiveIDs   []string
	bulkActiveValue bool
	bulkAffected    int64
	bulkDeleteIDs   []string
	sortUpdates     []repository.SortOrderUpdate

	stats []models.CategoryStat
}

func newFakeBrandStore(brands ...models.Brand) *fakeBrandStore {
	store := &fakeBrandStore{brands: make(map[string]models.Brand)}
	for _, brand := range brands {
		store.brands[brand.ID] = brand
	}
	return store
}

func (s *fakeBrandStore) Create(_ context.Context, brand models.Brand) error {
	s.createCalls++
	s.brands[brand.ID] = brand
	return nil
}

func (s *fakeBrandStore) Update(_ context.Context, brand models.Brand) error {
	s.brands[brand.ID] = brand
	return nil
}

func (s *fakeBrandStore) GetByID(_ context.Context, id string) (models.Brand, error) {
	brand, ok := s.brands[id]
	if !ok {
		return models.Brand{}, repository.ErrBrandNotFound
	}
	return brand, nil
}

func (s *fakeBrandStore) Delete(_ context.Context, id string) error {
	if _, ok := s.brands[id]; !ok {
		return repository.ErrBrandNotFound
	}
	delete(s.brands, id)
	return nil
}

func (s *fakeBrandStore) List(_ context.Context, q repository.BrandQuery) ([]models.Brand, error) {
	s.listQueries = append(s.listQueries, q)
	out := make([]models.Brand, 0, len(s.brands))
	for _, brand := range s.brands {
		out = append(out, brand)
	}
	return out, nil
}

func (s *fakeBrandStore) Count(_ context.Context, _ repository.BrandQuery) (int, error) {
	return s.total, nil
}

func (s *fakeBrandStore) ExistsByName(_ context.Context, name string, excludeID string) (bool, error) {
	for _, brand := range s.brands {
		if brand.Name == name && brand.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBrandStore) SetActive(_ context.Context, id string, active bool) error {
	brand := s.brands[id]
	brand.IsActive = active
	s.brands[id] = brand
	return nil
}

func (s *fakeBrandStore) UpdateSortOrder(_ context.Context, id string, sortOrder int) error {
	brand := s.brands[id]
	brand.SortOrder = sortOrder
	s.brands[id] = brand
	return nil
}

func (s *fakeBrandStore) BulkSetActive(_ context.Context, brandIDs []string, active bool) (int64, error) {
	s.bulkActiveIDs = brandIDs
	s.bulkActiveValue = active
	return s.bulkAffected, nil
}

func (s *fakeBrandStore) BulkDelete(_ context.Context, brandIDs []string) (int64, error) {
	s.bulkDeleteIDs = brandIDs
	return s.bulkAffected, nil
}

func (s *fakeBrandStore) BulkUpdateSortOrders(_ context.Context, updates []repository.SortOrderUpdate) (int64, error) {
	s.sortUpdates = updates
	return int64(len(updates)), nil
}

func (s *fakeBrandStore) CategoryStats(_ context.Context) ([]models.CategoryStat, error) {
	return s.stats, nil
}

func (s *fakeBrandStore) CountByStatus(_ context.Context) (int, int, error) {
	total, active := 0, 0
	for _, brand := range s.brands {
		total++
		if brand.IsActive {
			active++
		}
	}
	return total, active, nil
}

func (s *fakeBrandStore) Recent(_ context.Context, limit int) ([]models.Brand, error) {
	out := make([]models.Brand, 0, limit)
	for _, brand := range s.brands {
		if len(out) == limit {
			break
		}
		out = append(out, brand)
	}
	return out, nil
}

type fakeAdminCounter struct{ active int }

func (c fakeAdminCounter) CountActive(context.Context) (int, error) { return c.active, nil }

func newCatalogService(store *fakeBrandStore) *CatalogService {
	return NewCatalogService(store, fakeAdminCounter{active: 2}, nil, &config.AppConfig{}, zerolog.Nop())
}

func TestCatalogCreate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore()
	svc := newCatalogService(store)

	brand, err := svc.Create(context.Background(), BrandInput{Name: "  Mavi  "})
	require.NoError(t, err)
	require.Equal(t, "Mavi", brand.Name)
	require.Equal(t, "fas fa-tag", brand.Logo)
	require.Equal(t, models.LogoTypeIcon, brand.LogoType)
	require.Equal(t, models.CategoryClothing, brand.Category)
	require.True(t, brand.IsActive)
	require.NotEmpty(t, brand.ID)
	require.Equal(t, 1, store.createCalls)
}

func TestCatalogCreate_DuplicateNameRejectedBeforeWrite(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore(models.Brand{ID: "b1", Name: "Mavi"})
	svc := newCatalogService(store)

	_, err := svc.Create(context.Background(), BrandInput{Name: "Mavi"})
	require.ErrorIs(t, err, ErrBrandExists)
	require.Zero(t, store.createCalls)
}

func TestCatalogCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(newFakeBrandStore())

	tests := []struct {
		name  string
		input BrandInput
		field string
	}{
		{"unknown category", BrandInput{Name: "X", Category: "electronics"}, "category"},
		{"bad logo type", BrandInput{Name: "X", LogoType: "svg"}, "logoType"},
		{"bad telegram link", BrandInput{Name: "X", Telegram: "https://example.com/x"}, "telegram"},
		{"bad whatsapp link", BrandInput{Name: "X", WhatsApp: "https://t.me/x"}, "whatsapp"},
		{"bad website", BrandInput{Name: "X", Website: "ftp://example.com"}, "website"},
		{"negative sort order", BrandInput{Name: "X", SortOrder: -1}, "sortOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCatalogUpdate_AllowsKeepingOwnName(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore(models.Brand{ID: "b1", Name: "Mavi", IsActive: true})
	svc := newCatalogService(store)

	brand, err := svc.Update(context.Background(), "b1", BrandInput{Name: "Mavi", Category: models.CategoryShoes})
	require.NoError(t, err)
	require.Equal(t, models.CategoryShoes, brand.Category)
	require.True(t, brand.IsActive)
}

func TestCatalogUpdate_RejectsNameOfAnotherBrand(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore(
		models.Brand{ID: "b1", Name: "Mavi"},
		models.Brand{ID: "b2", Name: "Koton"},
	)
	svc := newCatalogService(store)

	_, err := svc.Update(context.Background(), "b2", BrandInput{Name: "Mavi"})
	require.ErrorIs(t, err, ErrBrandExists)
}

func TestCatalogList_PaginationSummary(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore()
	store.total = 45
	svc := newCatalogService(store)

	page, err := svc.List(context.Background(), repository.BrandFilter{Page: 2, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, 2, page.Pagination.CurrentPage)
	require.Equal(t, 3, page.Pagination.TotalPages)
	require.Equal(t, 45, page.Pagination.TotalItems)
	require.True(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrev)

	require.Len(t, store.listQueries, 1)
	require.Equal(t, 20, store.listQueries[0].Offset)
}

func TestCatalogList_EmptyResult(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore()
	svc := newCatalogService(store)

	page, err := svc.List(context.Background(), repository.BrandFilter{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Zero(t, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.False(t, page.Pagination.HasPrev)
}

func TestBulkAction(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore()
	store.bulkAffected = 2
	svc := newCatalogService(store)

	affected, err := svc.BulkAction(context.Background(), BulkActionActivate, []string{"b1", "b2"})
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)
	require.Equal(t, []string{"b1", "b2"}, store.bulkActiveIDs)
	require.True(t, store.bulkActiveValue)

	_, err = svc.BulkAction(context.Background(), BulkActionDelete, []string{"b1"})
	require.NoError(t, err)
	require.Equal(t, []string{"b1"}, store.bulkDeleteIDs)
}

func TestBulkAction_Invalid(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(newFakeBrandStore())

	_, err := svc.BulkAction(context.Background(), BulkActionActivate, nil)
	require.ErrorIs(t, err, ErrInvalidBulkAction)

	_, err = svc.BulkAction(context.Background(), "archive", []string{"b1"})
	require.ErrorIs(t, err, ErrInvalidBulkAction)
}

func TestUpdateSortOrders(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore()
	svc := newCatalogService(store)

	affected, err := svc.UpdateSortOrders(context.Background(), []repository.SortOrderUpdate{
		{ID: "b1", SortOrder: 1},
		{ID: "b2", SortOrder: 2},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)
	require.Len(t, store.sortUpdates, 2)

	_, err = svc.UpdateSortOrders(context.Background(), []repository.SortOrderUpdate{{ID: "b1", SortOrder: -3}})
	require.ErrorIs(t, err, ErrInvalidSortOrder)

	affected, err = svc.UpdateSortOrders(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestUpdateSortOrder_RejectsNegative(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(newFakeBrandStore())

	_, err := svc.UpdateSortOrder(context.Background(), "b1", -1)
	require.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	store := newFakeBrandStore(
		models.Brand{ID: "b1", Name: "Mavi", IsActive: true},
		models.Brand{ID: "b2", Name: "Koton", IsActive: false},
	)
	store.stats = []models.CategoryStat{{Category: models.CategoryClothing, Count: 2, Active: 1}}
	svc := newCatalogService(store)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalBrands)
	require.Equal(t, 1, stats.ActiveBrands)
	require.Equal(t, 1, stats.InactiveBrands)
	require.Equal(t, 2, stats.ActiveAdmins)
	require.Len(t, stats.Categories, 1)
	require.Len(t, stats.RecentBrands, 2)
}
