package admin

import "testing"

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative_page", -3, 10, 1, 10},
		{"oversized_page_size", 2, 500, 2, 100},
		{"in_range", 3, 50, 3, 50},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := normalizePagination(tt.page, tt.pageSize)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Fatalf("normalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.pageSize, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}
