package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrandFilter_Build_Defaults(t *testing.T) {
	t.Parallel()

	q := BrandFilter{}.Build()

	require.Empty(t, q.Where)
	require.Empty(t, q.Args)
	require.Equal(t, "sort_order ASC", q.OrderBy)
	require.Equal(t, 1, q.Page)
	require.Equal(t, DefaultPageSize, q.PerPage)
	require.Zero(t, q.Offset)
}

func TestBrandFilter_Build_Idempotent(t *testing.T) {
	t.Parallel()

	active := true
	filter := BrandFilter{
		Search:    "denim",
		Category:  "giyim",
		IsActive:  &active,
		SortBy:    "name",
		SortOrder: "desc",
		Page:      3,
		Limit:     25,
	}

	require.Equal(t, filter.Build(), filter.Build())
}

func TestBrandFilter_Build_AllConditions(t *testing.T) {
	t.Parallel()

	active := false
	q := BrandFilter{Search: " denim ", Category: "giyim", IsActive: &active}.Build()

	require.Contains(t, q.Where, "name ILIKE $1")
	require.Contains(t, q.Where, "description ILIKE $1")
	require.Contains(t, q.Where, "unnest(tags)")
	require.Contains(t, q.Where, "category = $2")
	require.Contains(t, q.Where, "is_active = $3")
	require.Equal(t, []any{"%denim%", "giyim", false}, q.Args)
}

func TestBrandFilter_Build_AbsentActiveFilterAddsNoCondition(t *testing.T) {
	t.Parallel()

	q := BrandFilter{Category: "aksesuar"}.Build()

	require.NotContains(t, q.Where, "is_active")
	require.Equal(t, []any{"aksesuar"}, q.Args)
}

func TestBrandFilter_Build_Window(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"explicit window", 3, 10, 3, 10, 20},
		{"zero page normalized", 0, 10, 1, 10, 0},
		{"negative limit falls back", 1, -5, 1, DefaultPageSize, 0},
		{"limit capped", 1, 500, 1, MaxPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BrandFilter{Page: tt.page, Limit: tt.limit}.Build()
			require.Equal(t, tt.wantPage, q.Page)
			require.Equal(t, tt.wantPerPage, q.PerPage)
			require.Equal(t, tt.wantOffset, q.Offset)
		})
	}
}

func TestBrandFilter_Build_SortWhitelist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"known field desc", "createdAt", "desc", "created_at DESC"},
		{"known field default direction", "name", "", "name ASC"},
		{"direction is case-insensitive", "name", "DESC", "name DESC"},
		{"unknown field falls back", "password_hash; DROP TABLE brands", "desc", "sort_order DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BrandFilter{SortBy: tt.sortBy, SortOrder: tt.sortOrder}.Build()
			require.Equal(t, tt.want, q.OrderBy)
		})
	}
}
