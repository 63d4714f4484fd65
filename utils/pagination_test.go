package utils

import "testing"

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{42, 12, 4},
		{100, 12, 9},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}
