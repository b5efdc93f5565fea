package repository

import (
	"fmt"
	"strings"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// brandSortFields whitelists caller-supplied sort keys against column names.
var brandSortFields = map[string]string{
	"name":      "name",
	"category":  "category",
	"isActive":  "is_active",
	"sortOrder": "sort_order",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// BrandFilter is the caller-facing listing parameter set. IsActive is a
// tri-state: nil means no filter at all.
type BrandFilter struct {
	Search    string
	Category  string
	IsActive  *bool
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// BrandQuery is the store-level translation of a BrandFilter: a WHERE clause
// with positional args, a whitelisted ORDER BY, and a normalized window.
type BrandQuery struct {
	Where   string
	Args    []any
	OrderBy string
	Page    int
	PerPage int
	Offset  int
}

// Build is pure: identical filters yield identical queries.
func (f BrandFilter) Build() BrandQuery {
	var conds []string
	var args []any

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + search + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))",
			n, n, n))
	}

	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	column, ok := brandSortFields[f.SortBy]
	if !ok {
		column = "sort_order"
	}
	direction := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		direction = "DESC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.Limit
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	return BrandQuery{
		Where:   where,
		Args:    args,
		OrderBy: column + " " + direction,
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}
