package controllers

import "testing"

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults pass through", 1, 10, 1, 10},
		{"zero limit falls back", 1, 0, 1, 10},
		{"negative limit falls back", 3, -5, 3, 10},
		{"zero page falls back", 0, 25, 1, 25},
		{"negative page falls back", -2, 25, 1, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := clampPagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("clampPagination(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
			// The page-count expression must be safe for any clamped limit
			total := 42
			if pages := (total + limit - 1) / limit; pages < 1 {
				t.Errorf("pages = %d for limit %d", pages, limit)
			}
		})
	}
}
