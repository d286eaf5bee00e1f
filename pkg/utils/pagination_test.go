package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"bigger size", 3, 25, 50},
		{"page below one", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateOffset(tt.page, tt.size))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"exact division", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"empty", 0, 10, 0},
		{"zero size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.size))
		})
	}
}
