package paging

import (
	"math"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Page
	}{
		{"defaults", "/api/users", Page{Page: 1, Limit: 10}},
		{"explicit", "/api/users?page=2&limit=10", Page{Page: 2, Limit: 10}},
		{"non-numeric", "/api/users?page=abc&limit=x", Page{Page: 1, Limit: 10}},
		{"zero and negative", "/api/users?page=0&limit=-5", Page{Page: 1, Limit: 10}},
		{"limit capped", "/api/users?limit=5000", Page{Page: 1, Limit: MaxLimit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(httptest.NewRequest("GET", tt.target, nil))
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	if got := (Page{Page: 3, Limit: 10}).Skip(); got != 20 {
		t.Errorf("Skip = %d, want 20", got)
	}
	if got := (Page{Page: 1, Limit: 25}).Skip(); got != 0 {
		t.Errorf("Skip = %d, want 0", got)
	}
}

func TestSkip_HugePageSaturates(t *testing.T) {
	pg := Parse(httptest.NewRequest("GET", "/api/sessions?page=922337203685477580&limit=100", nil))
	if got := pg.Skip(); got != math.MaxInt64 {
		t.Errorf("Skip = %d, want %d", got, int64(math.MaxInt64))
	}
	if got := (Page{Page: math.MaxInt, Limit: MaxLimit}).Skip(); got < 0 {
		t.Errorf("Skip overflowed to %d", got)
	}
}

func TestOf_PagesIsCeiling(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{15, 10, 2},
		{21, 10, 3},
	}
	for _, tt := range tests {
		got := Page{Page: 1, Limit: tt.limit}.Of(tt.total)
		if got.Pages != tt.want {
			t.Errorf("Of(%d) with limit %d: pages = %d, want %d", tt.total, tt.limit, got.Pages, tt.want)
		}
		if got.Total != tt.total || got.Limit != tt.limit {
			t.Errorf("Of(%d) = %+v", tt.total, got)
		}
	}
}

func TestFindOptions(t *testing.T) {
	opts := Page{Page: 2, Limit: 10}.FindOptions("created_at")
	if opts.Skip == nil || *opts.Skip != 10 {
		t.Errorf("skip = %v, want 10", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 10 {
		t.Errorf("limit = %v, want 10", opts.Limit)
	}
	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 2 || sort[0].Key != "created_at" || sort[0].Value != -1 {
		t.Errorf("sort = %#v", opts.Sort)
	}
}
