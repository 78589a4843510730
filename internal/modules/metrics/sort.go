package metrics

import (
	"errors"
	"sort"
	"strings"

	"github.com/aristath/folio/internal/domain"
)

// SortField names a sortable column of the holdings table
type SortField string

const (
	SortByTicker              SortField = "ticker"
	SortByQuantity            SortField = "quantity"
	SortByAvgPrice            SortField = "avgPrice"
	SortByCurrentPrice        SortField = "currentPrice"
	SortByTotalValue          SortField = "totalValue"
	SortByUnrealizedPL        SortField = "unrealizedPL"
	SortByUnrealizedPLPercent SortField = "unrealizedPLPercent"
	SortByPortfolioPercent    SortField = "portfolioPercent"
)

// SortDirection is ascending or descending
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ErrUnknownSortField is returned for a field that is not a table column
var ErrUnknownSortField = errors.New("unknown sort field")

// ErrUnknownSortDirection is returned for a direction other than asc/desc
var ErrUnknownSortDirection = errors.New("unknown sort direction")

var numericKeys = map[SortField]func(d domain.DerivedAsset) float64{
	SortByQuantity:            func(d domain.DerivedAsset) float64 { return d.Quantity },
	SortByAvgPrice:            func(d domain.DerivedAsset) float64 { return d.AvgPrice },
	SortByCurrentPrice:        func(d domain.DerivedAsset) float64 { return d.CurrentPrice },
	SortByTotalValue:          func(d domain.DerivedAsset) float64 { return d.TotalValue },
	SortByUnrealizedPL:        func(d domain.DerivedAsset) float64 { return d.UnrealizedPL },
	SortByUnrealizedPLPercent: func(d domain.DerivedAsset) float64 { return d.UnrealizedPLPercent },
	SortByPortfolioPercent:    func(d domain.DerivedAsset) float64 { return d.PortfolioPercent },
}

// ParseSort resolves query values into a sort field and direction.
// Empty values default to total value, descending.
func ParseSort(field, direction string) (SortField, SortDirection, error) {
	f := SortField(field)
	if f == "" {
		f = SortByTotalValue
	}
	if _, ok := numericKeys[f]; !ok && f != SortByTicker {
		return "", "", ErrUnknownSortField
	}

	d := SortDirection(strings.ToLower(direction))
	if d == "" {
		d = Descending
	}
	if d != Ascending && d != Descending {
		return "", "", ErrUnknownSortDirection
	}
	return f, d, nil
}

// Sort returns a sorted copy of derived. The sort is stable, so ties keep insertion order.
func Sort(derived []domain.DerivedAsset, field SortField, direction SortDirection) ([]domain.DerivedAsset, error) {
	var less func(a, b domain.DerivedAsset) bool
	if field == SortByTicker {
		less = func(a, b domain.DerivedAsset) bool { return a.Ticker < b.Ticker }
	} else {
		key, ok := numericKeys[field]
		if !ok {
			return nil, ErrUnknownSortField
		}
		less = func(a, b domain.DerivedAsset) bool { return key(a) < key(b) }
	}

	out := make([]domain.DerivedAsset, len(derived))
	copy(out, derived)

	sort.SliceStable(out, func(i, j int) bool {
		if direction == Ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}
