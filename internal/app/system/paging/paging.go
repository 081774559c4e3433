// internal/app/system/paging/paging.go
package paging

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size when ?limit is absent or invalid.
const DefaultLimit = 10

// MaxLimit caps ?limit so a single request cannot pull a whole collection.
const MaxLimit = 100

// Page is a 1-based page number and page size parsed from a request.
type Page struct {
	Page  int
	Limit int
}

// Parse reads ?page (default 1) and ?limit (default DefaultLimit).
// Missing, non-numeric or non-positive values fall back to the default.
func Parse(r *http.Request) Page {
	p := Page{
		Page:  positiveInt(query.Get(r, "page"), 1),
		Limit: positiveInt(query.Get(r, "limit"), DefaultLimit),
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func positiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Skip returns the number of documents before this page. Pages too far
// out to count saturate at math.MaxInt64, which matches nothing.
func (p Page) Skip() int64 {
	before, limit := int64(p.Page-1), int64(p.Limit)
	if before <= 0 || limit <= 0 {
		return 0
	}
	if before > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return before * limit
}

// FindOptions returns find options for this page sorted by sortField
// descending, with _id descending as a tie-breaker.
func (p Page) FindOptions(sortField string) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

// Pagination is the pagination block of a list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

// Of builds the pagination block for total matching documents.
func (p Page) Of(total int64) Pagination {
	limit := int64(p.Limit)
	if limit < 1 {
		limit = DefaultLimit
	}
	return Pagination{
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: (total + limit - 1) / limit,
	}
}
