package model

// DetailStats aggregates line items, optionally scoped to one bill.
// AveragePrice is value-weighted: totalValue / totalQuantity, not
// totalValue / totalItems.
type DetailStats struct {
	TotalItems      int64   `json:"total_items"`
	TotalQuantity   float64 `json:"total_quantity"`
	TotalValue      float64 `json:"total_value"`
	AveragePrice    float64 `json:"average_price"`
	AverageQuantity float64 `json:"average_quantity"`
}

// DetailAmount is the quantity/price pair of one line, the input to
// client-side aggregation.
type DetailAmount struct {
	Quantity float64
	Price    float64
}

// AggregateDetails computes stats over a set of amounts. All aggregates
// are zero for the empty set.
func AggregateDetails(amounts []DetailAmount) DetailStats {
	stats := DetailStats{TotalItems: int64(len(amounts))}
	if stats.TotalItems == 0 {
		return stats
	}

	for _, a := range amounts {
		stats.TotalQuantity += a.Quantity
		stats.TotalValue += a.Quantity * a.Price
	}

	if stats.TotalQuantity > 0 {
		stats.AveragePrice = stats.TotalValue / stats.TotalQuantity
	}
	stats.AverageQuantity = stats.TotalQuantity / float64(stats.TotalItems)

	return stats
}
