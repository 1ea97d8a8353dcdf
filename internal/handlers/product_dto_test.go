package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateProductRequest_Validate(t *testing.T) {
	languages := []string{"en"}
	empty := []string{}

	tests := []struct {
		name     string
		request  CreateProductRequest
		expected []string
	}{
		{
			name: "valid request",
			request: CreateProductRequest{
				Name:        strPtr("หูฟังไร้สาย"),
				Description: strPtr("หูฟังคุณภาพสูง"),
				Language:    &languages,
			},
			expected: nil,
		},
		{
			name:    "everything missing",
			request: CreateProductRequest{},
			expected: []string{
				"name should not be empty",
				"name must be a string",
				"description should not be empty",
				"description must be a string",
				"language should not be empty",
				"language must be an array",
			},
		},
		{
			name: "empty strings fail only the non-empty rule",
			request: CreateProductRequest{
				Name:        strPtr(""),
				Description: strPtr(""),
				Language:    &languages,
			},
			expected: []string{
				"name should not be empty",
				"description should not be empty",
			},
		},
		{
			name: "empty language array",
			request: CreateProductRequest{
				Name:        strPtr("สินค้า"),
				Description: strPtr("รายละเอียด"),
				Language:    &empty,
			},
			expected: []string{
				"language should not be empty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.Validate())
		})
	}
}
