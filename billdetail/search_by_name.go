package billdetail

import (
	"context"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

const defaultSearchLimit = 20

// SearchByName matches the denormalized product name case-insensitively
// by substring, most recent first. The empty term matches every record.
func (g *Gateway) SearchByName(ctx context.Context, term string, limit int32) Result[[]model.DetailLine] {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := g.details.SearchDetailsByName(ctx, details.SearchDetailsByNameParams{
		Name:  term,
		Limit: limit,
	})
	if err != nil {
		g.log.Error("failed to search details by name", "error", err, "term", term)
		return fail[[]model.DetailLine](err.Error())
	}

	return ok(convertDBDetails(rows))
}
