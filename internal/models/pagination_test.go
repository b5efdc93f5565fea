package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    int
		perPage int
		total   int
		want    Pagination
	}{
		{
			name: "first of many", page: 1, perPage: 20, total: 45,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 45, ItemsPerPage: 20, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, perPage: 20, total: 45,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 45, ItemsPerPage: 20, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, perPage: 20, total: 45,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 45, ItemsPerPage: 20, HasNext: false, HasPrev: true},
		},
		{
			name: "exact division", page: 1, perPage: 10, total: 30,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 30, ItemsPerPage: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "empty result on page one", page: 1, perPage: 20, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 20, HasNext: false, HasPrev: false},
		},
		{
			name: "empty result on a high page", page: 7, perPage: 20, total: 0,
			want: Pagination{CurrentPage: 7, TotalPages: 0, TotalItems: 0, ItemsPerPage: 20, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}
