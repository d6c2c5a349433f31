package domain

import (
	"math"
	"strconv"
	"strings"
)

// Params is a source of raw query parameters. url.Values satisfies it.
type Params interface {
	Get(key string) string
}

// SortBy orders products by price.
type SortBy string

const (
	SortPriceAsc  SortBy = "price_asc"
	SortPriceDesc SortBy = "price_desc"
)

// SortByCreatedAt orders products by creation time.
type SortByCreatedAt string

const (
	SortCreatedAtAsc  SortByCreatedAt = "created_at_asc"
	SortCreatedAtDesc SortByCreatedAt = "created_at_desc"
)

// FilterSpec is a validated set of optional product listing constraints.
// Zero values mean "not constrained". Values are passed around by copy and
// never modified after ParseFilter returns them.
type FilterSpec struct {
	Category        string
	Term            string
	OnSale          TriBool
	Stock           TriBool
	MinPrice        *float64
	MaxPrice        *float64
	SortBy          SortBy
	SortByCreatedAt SortByCreatedAt
}

// IsEmpty reports whether no attribute is set.
func (f FilterSpec) IsEmpty() bool {
	return f.Category == "" &&
		f.Term == "" &&
		!f.OnSale.IsSet() &&
		!f.Stock.IsSet() &&
		f.MinPrice == nil &&
		f.MaxPrice == nil &&
		f.SortBy == "" &&
		f.SortByCreatedAt == ""
}

// filterInput carries the rule tags checked by the validator.
type filterInput struct {
	Category        string  `query:"category"`
	Term            string  `query:"term" validate:"max=255"`
	MinPrice        float64 `query:"minPrice" validate:"gte=0"`
	MaxPrice        float64 `query:"maxPrice" validate:"gte=0"`
	SortBy          string  `query:"sortBy" validate:"omitempty,oneof=price_asc price_desc"`
	SortByCreatedAt string  `query:"sortByCreatedAt" validate:"omitempty,oneof=created_at_asc created_at_desc"`
}

// ParseFilter builds a FilterSpec from raw query parameters.
// Every violated parameter is reported at once as ValidationErrors.
// Boolean flags never fail: unrecognised input leaves them unset.
func ParseFilter(params Params) (FilterSpec, error) {
	var errs ValidationErrors

	minPrice, ok := parsePrice(params.Get("minPrice"))
	if !ok {
		errs = append(errs, FieldError{Field: "minPrice", Message: "must be a number"})
	}
	maxPrice, ok := parsePrice(params.Get("maxPrice"))
	if !ok {
		errs = append(errs, FieldError{Field: "maxPrice", Message: "must be a number"})
	}

	input := filterInput{
		Category:        params.Get("category"),
		Term:            params.Get("term"),
		MinPrice:        valueOrZero(minPrice),
		MaxPrice:        valueOrZero(maxPrice),
		SortBy:          params.Get("sortBy"),
		SortByCreatedAt: params.Get("sortByCreatedAt"),
	}
	if err := checkStruct(input, errs); err != nil {
		return FilterSpec{}, err
	}

	return FilterSpec{
		Category:        input.Category,
		Term:            input.Term,
		OnSale:          ParseTriBool(params.Get("onSale")),
		Stock:           ParseTriBool(params.Get("stock")),
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		SortBy:          SortBy(input.SortBy),
		SortByCreatedAt: SortByCreatedAt(input.SortByCreatedAt),
	}, nil
}

// ParsePage reads the 1-based page number. Missing or malformed input
// yields the first page, values below one are clamped.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parsePrice returns nil for empty input and false when the input is not a finite number.
func parsePrice(raw string) (*float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
