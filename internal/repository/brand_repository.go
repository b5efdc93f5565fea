package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brandhub/api/internal/models"
)

var ErrBrandNotFound = errors.New("brand not found")

const brandColumns = `id, name, description, short_description, logo, logo_type,
	telegram, whatsapp, website, category, is_active, sort_order, tags,
	created_at, updated_at`

type BrandRepository struct {
	pool *pgxpool.Pool
}

func NewBrandRepository(pool *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{pool: pool}
}

func (r *BrandRepository) Create(ctx context.Context, brand models.Brand) error {
	const query = `
		INSERT INTO brands (
			id, name, description, short_description, logo, logo_type,
			telegram, whatsapp, website, category, is_active, sort_order, tags,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13,
			NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.ShortDescription,
		brand.Logo,
		brand.LogoType,
		brand.Telegram,
		brand.WhatsApp,
		brand.Website,
		brand.Category,
		brand.IsActive,
		brand.SortOrder,
		brand.Tags,
	)
	return err
}

func (r *BrandRepository) Update(ctx context.Context, brand models.Brand) error {
	const query = `
		UPDATE brands
		SET name = $2,
		    description = $3,
		    short_description = $4,
		    logo = $5,
		    logo_type = $6,
		    telegram = $7,
		    whatsapp = $8,
		    website = $9,
		    category = $10,
		    is_active = $11,
		    sort_order = $12,
		    tags = $13,
		    updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.ShortDescription,
		brand.Logo,
		brand.LogoType,
		brand.Telegram,
		brand.WhatsApp,
		brand.Website,
		brand.Category,
		brand.IsActive,
		brand.SortOrder,
		brand.Tags,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	brand, err := scanBrand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Brand{}, ErrBrandNotFound
		}
		return models.Brand{}, err
	}
	return brand, nil
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM brands WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepository) List(ctx context.Context, q BrandQuery) ([]models.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		brandColumns, q.Where, q.OrderBy, len(q.Args)+1, len(q.Args)+2)
	args := append(append([]any{}, q.Args...), q.PerPage, q.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func (r *BrandRepository) Count(ctx context.Context, q BrandQuery) (int, error) {
	query := `SELECT COUNT(*) FROM brands ` + q.Where

	var count int
	if err := r.pool.QueryRow(ctx, query, q.Args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName backs the user-facing duplicate-name check. excludeID skips
// the brand being edited.
func (r *BrandRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM brands WHERE lower(name) = lower($1) AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BrandRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE brands SET is_active = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	const query = `UPDATE brands SET sort_order = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, sortOrder)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

// BulkSetActive flips the active flag for every listed id in one statement
// and reports the number of rows the statement touched.
func (r *BrandRepository) BulkSetActive(ctx context.Context, brandIDs []string, active bool) (int64, error) {
	const query = `UPDATE brands SET is_active = $2, updated_at = NOW() WHERE id = ANY($1)`
	cmd, err := r.pool.Exec(ctx, query, brandIDs, active)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *BrandRepository) BulkDelete(ctx context.Context, brandIDs []string) (int64, error) {
	const query = `DELETE FROM brands WHERE id = ANY($1)`
	cmd, err := r.pool.Exec(ctx, query, brandIDs)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

type SortOrderUpdate struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}

// BulkUpdateSortOrders applies a batch of sort-key changes as one set-based
// update.
func (r *BrandRepository) BulkUpdateSortOrders(ctx context.Context, updates []SortOrderUpdate) (int64, error) {
	brandIDs := make([]string, 0, len(updates))
	sortOrders := make([]int32, 0, len(updates))
	for _, update := range updates {
		brandIDs = append(brandIDs, update.ID)
		sortOrders = append(sortOrders, int32(update.SortOrder))
	}

	const query = `
		UPDATE brands AS b
		SET sort_order = u.sort_order, updated_at = NOW()
		FROM (SELECT unnest($1::text[]) AS id, unnest($2::int[]) AS sort_order) AS u
		WHERE b.id = u.id
	`
	cmd, err := r.pool.Exec(ctx, query, brandIDs, sortOrders)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *BrandRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	const query = `
		SELECT category,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE is_active)
		FROM brands
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var stat models.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Count, &stat.Active); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *BrandRepository) CountByStatus(ctx context.Context) (total int, active int, err error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM brands`
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *BrandRepository) Recent(ctx context.Context, limit int) ([]models.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands ORDER BY created_at DESC LIMIT $1`, brandColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func scanBrand(row pgx.Row) (models.Brand, error) {
	var brand models.Brand
	err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Description,
		&brand.ShortDescription,
		&brand.Logo,
		&brand.LogoType,
		&brand.Telegram,
		&brand.WhatsApp,
		&brand.Website,
		&brand.Category,
		&brand.IsActive,
		&brand.SortOrder,
		&brand.Tags,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	return brand, err
}
