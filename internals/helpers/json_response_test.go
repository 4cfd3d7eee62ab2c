package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	tests := []struct {
		name       string
		uri        string
		defPer     int
		maxPer     int
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"defaults", "/", 20, 100, 1, 20, 0},
		{"page dan per_page valid", "/?page=3&per_page=10", 20, 100, 3, 10, 20},
		{"alias limit", "/?limit=15", 20, 100, 1, 15, 0},
		{"per_page menang atas limit", "/?per_page=5&limit=50", 20, 100, 1, 5, 0},
		{"page nol dinormalisasi", "/?page=0", 20, 100, 1, 20, 0},
		{"page negatif dinormalisasi", "/?page=-2", 20, 100, 1, 20, 0},
		{"per_page nol fallback default", "/?per_page=0", 20, 100, 1, 20, 0},
		{"per_page bukan angka fallback", "/?per_page=abc", 20, 100, 1, 20, 0},
		{"per_page dibatasi max", "/?per_page=500", 20, 100, 1, 100, 0},
		{"max nol tanpa batas", "/?per_page=500", 20, 0, 1, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fctx := &fasthttp.RequestCtx{}
			fctx.Request.SetRequestURI(tt.uri)
			c := app.AcquireCtx(fctx)
			defer app.ReleaseCtx(c)

			p := ResolvePaging(c, tt.defPer, tt.maxPer)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.PerPage != tt.wantPer {
				t.Errorf("PerPage = %d, want %d", p.PerPage, tt.wantPer)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", p.Offset, tt.wantOffset)
			}
			if p.Limit != p.PerPage {
				t.Errorf("Limit = %d, want sama dengan PerPage %d", p.Limit, p.PerPage)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"lebih satu item", 21, 1, 20, 2, true, false},
		{"halaman tengah", 100, 3, 20, 5, true, true},
		{"halaman terakhir", 100, 5, 20, 5, false, true},
		{"page nol dinormalisasi", 50, 0, 20, 3, true, false},
		{"perPage nol fallback 20", 50, 1, 0, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
