package domain

// CategoryFilter narrows the category listing.
type CategoryFilter struct {
	Name         string
	MostProducts TriBool
	MostOnSale   TriBool
	OutOfStock   TriBool
}

type categoryFilterInput struct {
	Name string `query:"name" validate:"max=255"`
}

// ParseCategoryFilter builds a CategoryFilter from raw query parameters.
func ParseCategoryFilter(params Params) (CategoryFilter, error) {
	input := categoryFilterInput{Name: params.Get("name")}
	if err := checkStruct(input, nil); err != nil {
		return CategoryFilter{}, err
	}

	return CategoryFilter{
		Name:         input.Name,
		MostProducts: ParseTriBool(params.Get("mostProducts")),
		MostOnSale:   ParseTriBool(params.Get("mostOnSale")),
		OutOfStock:   ParseTriBool(params.Get("outOfStock")),
	}, nil
}
