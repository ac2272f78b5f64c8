package helper

import "testing"

func TestBuildPaginationFromOffset(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		offset, limit int
		wantPage      int
		wantPages     int
		wantNext      bool
		wantPrev      bool
	}{
		{"first page", 45, 0, 20, 1, 3, true, false},
		{"middle page", 45, 20, 20, 2, 3, true, true},
		{"last page", 45, 40, 20, 3, 3, false, true},
		{"empty result still one page", 0, 0, 20, 1, 1, false, false},
		{"zero limit falls back to default", 5, 0, 0, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromOffset(tt.total, tt.offset, tt.limit)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantNext)
			}
			if p.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantPrev)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
