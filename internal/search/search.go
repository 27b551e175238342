// Package search resolves the optional query parameters of the find
// endpoints into a typed query, or the error explaining why they can't be.
package search

import (
	"strings"

	"catalog/internal/apperr"

	"github.com/spf13/cast"
)

// Query parameter names.
const (
	ParamName     = "name"
	ParamMinPrice = "min_price"
	ParamMaxPrice = "max_price"
)

// Error messages reported to clients.
const (
	MsgInvalidCombination = "cannot send name with price"
	MsgMissingParameter   = "parameter cannot be missing"
	MsgEmptyParameter     = "parameter cannot be empty"
	MsgNegativePrice      = "price cannot be less than zero"
)

// Mode is the search strategy a Query uses.
type Mode int

const (
	ByName Mode = iota + 1
	ByPriceMin
	ByPriceMax
	ByPriceRange
)

func (m Mode) String() string {
	switch m {
	case ByName:
		return "name"
	case ByPriceMin:
		return "min_price"
	case ByPriceMax:
		return "max_price"
	case ByPriceRange:
		return "price_range"
	default:
		return "unknown"
	}
}

// Query is a resolved item search. Only the fields its Mode uses are set.
type Query struct {
	Mode Mode
	Name string
	Min  float64
	Max  float64
}

// Params holds the raw search parameters. A nil field was not sent; a
// pointer to "" was sent without a value.
type Params struct {
	Name     *string
	MinPrice *string
	MaxPrice *string
}

// FromQuery picks the recognised parameters out of a query string map.
func FromQuery(values map[string]string) Params {
	var p Params
	if v, ok := values[ParamName]; ok {
		p.Name = &v
	}
	if v, ok := values[ParamMinPrice]; ok {
		p.MinPrice = &v
	}
	if v, ok := values[ParamMaxPrice]; ok {
		p.MaxPrice = &v
	}
	return p
}

func (p Params) hasPrice() bool {
	return p.MinPrice != nil || p.MaxPrice != nil
}

// Resolve decides which item search the parameters ask for.
//
// A name together with any price bound is rejected before the price values
// are looked at. Price bounds that do not parse count as zero.
func Resolve(p Params) (Query, error) {
	switch {
	case p.Name != nil && p.hasPrice():
		return Query{}, apperr.NewInvalidCombination(MsgInvalidCombination)
	case p.hasPrice():
		return resolvePrice(p)
	case p.Name != nil && *p.Name != "":
		return Query{Mode: ByName, Name: *p.Name}, nil
	case p.Name != nil:
		return Query{}, apperr.NewEmptyParameter(MsgEmptyParameter)
	default:
		return Query{}, apperr.NewMissingParameter(MsgMissingParameter)
	}
}

func resolvePrice(p Params) (Query, error) {
	minPrice, maxPrice := priceValue(p.MinPrice), priceValue(p.MaxPrice)
	if minPrice < 0 || maxPrice < 0 {
		return Query{}, apperr.NewNegativeValue(MsgNegativePrice)
	}

	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		return Query{Mode: ByPriceRange, Min: minPrice, Max: maxPrice}, nil
	case p.MinPrice != nil:
		return Query{Mode: ByPriceMin, Min: minPrice}, nil
	default:
		return Query{Mode: ByPriceMax, Max: maxPrice}, nil
	}
}

func priceValue(raw *string) float64 {
	if raw == nil {
		return 0
	}
	return cast.ToFloat64(strings.TrimSpace(*raw))
}

// ResolveMerchantName returns the merchant name fragment to search for, and
// false when the name parameter is missing or empty.
func ResolveMerchantName(values map[string]string) (string, bool) {
	name, ok := values[ParamName]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
