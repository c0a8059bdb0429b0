package models

import (
	"math"
	"regexp"
	"strings"
)

// Listing defaults.
const (
	DefaultPage      = 1
	DefaultLimit     = 12
	MaxLimit         = 100
	DefaultSortField = "name"
)

// SortDirection is +1 for ascending and -1 for descending, matching the
// document store's native sort values.
type SortDirection int

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

// SortSpec is a parsed sort parameter.
type SortSpec struct {
	Field     string
	Direction SortDirection
}

var sortFieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ParseSort turns a "field" or "-field" parameter into a SortSpec.
// A leading '-' selects descending order; no other prefix is recognised.
// Empty or non-identifier field names fall back to DefaultSortField so that
// operator syntax never reaches the store.
func ParseSort(raw string) SortSpec {
	spec := SortSpec{Field: strings.TrimSpace(raw), Direction: Ascending}
	if rest, ok := strings.CutPrefix(spec.Field, "-"); ok {
		spec.Field = rest
		spec.Direction = Descending
	}
	if !sortFieldPattern.MatchString(spec.Field) {
		spec.Field = DefaultSortField
	}
	return spec
}

// String renders the spec back into its parameter form.
func (s SortSpec) String() string {
	if s.Direction == Descending {
		return "-" + s.Field
	}
	return s.Field
}

// PlantFilter selects plants for listing. Both conditions are
// case-insensitive literal substring matches; set conditions are ANDed.
type PlantFilter struct {
	// Search matches the name OR any category.
	Search string
	// Category matches any category.
	Category string
}

// IsEmpty reports whether the filter matches every plant.
func (f PlantFilter) IsEmpty() bool {
	return f.Search == "" && f.Category == ""
}

// Matches evaluates the filter against p in memory.
func (f PlantFilter) Matches(p *Plant) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !containsFold(p.Name.String(), needle) && !anyContainsFold(p.Categories, needle) {
			return false
		}
	}
	if f.Category != "" && !anyContainsFold(p.Categories, strings.ToLower(f.Category)) {
		return false
	}
	return true
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func anyContainsFold(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if containsFold(v, lowerNeedle) {
			return true
		}
	}
	return false
}

// ListQuery is a fully normalised listing request.
type ListQuery struct {
	Filter PlantFilter
	Sort   SortSpec
	Page   int
	Limit  int
}

// NewListQuery clamps limit to [1, MaxLimit] and page to [1, math.MaxInt/limit],
// substituting defaults for non-positive values. The upper page bound keeps
// Offset from overflowing.
func NewListQuery(filter PlantFilter, sort SortSpec, page, limit int) ListQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	if sort.Field == "" {
		sort = SortSpec{Field: DefaultSortField, Direction: Ascending}
	}
	return ListQuery{Filter: filter, Sort: sort, Page: page, Limit: limit}
}

// Offset is the number of matching records to skip.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PlantPage is one page of listing results.
type PlantPage struct {
	Items      []*Plant
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPlantPage assembles a page for q. Items is never nil.
func NewPlantPage(items []*Plant, total int64, q ListQuery) *PlantPage {
	if items == nil {
		items = []*Plant{}
	}
	return &PlantPage{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
	}
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
