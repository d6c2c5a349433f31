package domain

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriBool(t *testing.T) {
	tests := []struct {
		raw      string
		expected TriBool
	}{
		{"1", True}, {"true", True}, {"TRUE", True}, {"yes", True}, {" on ", True},
		{"0", False}, {"false", False}, {"No", False}, {"off", False},
		{"", Unset}, {"maybe", Unset}, {"2", Unset}, {"tru", Unset},
	}

	for _, tt := range tests {
		t.Run("parses "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTriBool(tt.raw))
		})
	}
}

func TestTriBool_Tokens(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "null", Unset.String())

	assert.False(t, Unset.IsSet())
	assert.True(t, False.IsSet())
	assert.False(t, False.Bool())
	assert.True(t, TriBoolOf(true).Bool())
	assert.Equal(t, False, TriBoolOf(false))
}

func TestParseFilter_AllFields(t *testing.T) {
	params := url.Values{
		"category":        {"Shoes"},
		"term":            {"red"},
		"onSale":          {"yes"},
		"stock":           {"0"},
		"minPrice":        {"10"},
		"maxPrice":        {"49.5"},
		"sortBy":          {"price_desc"},
		"sortByCreatedAt": {"created_at_asc"},
	}

	spec, err := ParseFilter(params)
	require.NoError(t, err)

	assert.Equal(t, "Shoes", spec.Category)
	assert.Equal(t, "red", spec.Term)
	assert.Equal(t, True, spec.OnSale)
	assert.Equal(t, False, spec.Stock)
	require.NotNil(t, spec.MinPrice)
	assert.Equal(t, 10.0, *spec.MinPrice)
	require.NotNil(t, spec.MaxPrice)
	assert.Equal(t, 49.5, *spec.MaxPrice)
	assert.Equal(t, SortPriceDesc, spec.SortBy)
	assert.Equal(t, SortCreatedAtAsc, spec.SortByCreatedAt)
	assert.False(t, spec.IsEmpty())
}

func TestParseFilter_EmptyParams(t *testing.T) {
	spec, err := ParseFilter(url.Values{})
	require.NoError(t, err)

	assert.True(t, spec.IsEmpty())
	assert.Nil(t, spec.MinPrice)
	assert.Nil(t, spec.MaxPrice)
}

func TestParseFilter_UnparseableBooleansAreUnset(t *testing.T) {
	spec, err := ParseFilter(url.Values{"onSale": {"perhaps"}, "stock": {"lots"}})
	require.NoError(t, err)

	assert.Equal(t, Unset, spec.OnSale)
	assert.Equal(t, Unset, spec.Stock)
	assert.True(t, spec.IsEmpty())
}

func TestParseFilter_ZeroPriceIsSet(t *testing.T) {
	spec, err := ParseFilter(url.Values{"minPrice": {"0"}})
	require.NoError(t, err)

	require.NotNil(t, spec.MinPrice)
	assert.Equal(t, 0.0, *spec.MinPrice)
}

func TestParseFilter_MinGreaterThanMaxIsAccepted(t *testing.T) {
	spec, err := ParseFilter(url.Values{"minPrice": {"50"}, "maxPrice": {"10"}})
	require.NoError(t, err)

	assert.Equal(t, 50.0, *spec.MinPrice)
	assert.Equal(t, 10.0, *spec.MaxPrice)
}

func TestParseFilter_ValidationErrors(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"minPrice": {"-5"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFilter))

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"minPrice: must be ≥ 0"}, verrs.Messages())
	})

	t.Run("non numeric price", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"maxPrice": {"cheap"}})

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, ValidationErrors{{Field: "maxPrice", Message: "must be a number"}}, verrs)
	})

	t.Run("non finite price", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"minPrice": {"NaN"}, "maxPrice": {"Inf"}})

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Len(t, verrs, 2)
	})

	t.Run("unknown sort names allowed values", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"sortBy": {"name"}, "sortByCreatedAt": {"newest"}})

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{
			"sortBy: must be one of: price_asc, price_desc",
			"sortByCreatedAt: must be one of: created_at_asc, created_at_desc",
		}, verrs.Messages())
	})

	t.Run("term too long", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"term": {strings.Repeat("a", 256)}})

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"term: must be at most 255 characters"}, verrs.Messages())
	})

	t.Run("term length counts characters not bytes", func(t *testing.T) {
		_, err := ParseFilter(url.Values{"term": {strings.Repeat("é", 255)}})
		assert.NoError(t, err)
	})

	t.Run("every violation is reported at once", func(t *testing.T) {
		_, err := ParseFilter(url.Values{
			"minPrice": {"-1"},
			"maxPrice": {"abc"},
			"sortBy":   {"x"},
			"onSale":   {"garbage"},
		})

		verrs, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{
			"maxPrice: must be a number",
			"minPrice: must be ≥ 0",
			"sortBy: must be one of: price_asc, price_desc",
		}, verrs.Messages())
		assert.Contains(t, err.Error(), "invalid catalog filter")
	})
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 4, ParsePage("4"))
	assert.Equal(t, 2, ParsePage(" 2 "))
}

func TestParseCategoryFilter(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		f, err := ParseCategoryFilter(url.Values{"name": {"home"}, "mostOnSale": {"true"}, "outOfStock": {"nope"}})
		require.NoError(t, err)

		assert.Equal(t, "home", f.Name)
		assert.Equal(t, Unset, f.MostProducts)
		assert.Equal(t, True, f.MostOnSale)
		assert.Equal(t, Unset, f.OutOfStock)
	})

	t.Run("false flag is kept distinct from unset", func(t *testing.T) {
		f, err := ParseCategoryFilter(url.Values{"mostProducts": {"false"}})
		require.NoError(t, err)
		assert.Equal(t, False, f.MostProducts)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := ParseCategoryFilter(url.Values{"name": {strings.Repeat("n", 300)}})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})
}
