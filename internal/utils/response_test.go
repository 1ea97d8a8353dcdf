package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		totalItems    int64
		currentPage   int
		pageSize      int
		expectedPages int
	}{
		{name: "exact multiple", totalItems: 20, currentPage: 1, pageSize: 10, expectedPages: 2},
		{name: "partial last page", totalItems: 25, currentPage: 2, pageSize: 10, expectedPages: 3},
		{name: "single item", totalItems: 1, currentPage: 1, pageSize: 10, expectedPages: 1},
		{name: "no items", totalItems: 0, currentPage: 1, pageSize: 10, expectedPages: 0},
		{name: "one short of a full page", totalItems: 9, currentPage: 1, pageSize: 10, expectedPages: 1},
		{name: "one past a full page", totalItems: 11, currentPage: 1, pageSize: 10, expectedPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pagination := NewPagination(tt.totalItems, tt.currentPage, tt.pageSize)

			assert.Equal(t, tt.totalItems, pagination.TotalItems)
			assert.Equal(t, tt.currentPage, pagination.CurrentPage)
			assert.Equal(t, tt.expectedPages, pagination.TotalPages)
		})
	}
}
