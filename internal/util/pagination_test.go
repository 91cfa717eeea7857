package util

import "testing"

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   uint
		want       int
	}{
		{"empty always has one page", 0, 20, 1},
		{"exact multiple", 40, 20, 2},
		{"remainder adds a page", 41, 20, 3},
		{"zero page size falls back to default", 21, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotalPage(tt.totalItems, tt.pageSize); got != tt.want {
				t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestNormalizePageQuery(t *testing.T) {
	page, pageSize := NormalizePageQuery(0, 0)
	if page != 1 || pageSize != 20 {
		t.Errorf("NormalizePageQuery(0, 0) = (%d, %d), want (1, 20)", page, pageSize)
	}

	page, pageSize = NormalizePageQuery(3, 1000)
	if page != 3 || pageSize != 100 {
		t.Errorf("NormalizePageQuery(3, 1000) = (%d, %d), want (3, 100)", page, pageSize)
	}
}
