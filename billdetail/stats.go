package billdetail

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
)

// Stats aggregates line items, over the whole table or one bill when
// billID is non-nil. The store returns quantity/price pairs and the
// arithmetic happens here.
func (g *Gateway) Stats(ctx context.Context, billID *int64) Result[model.DetailStats] {
	var scope pgtype.Int8
	if billID != nil {
		scope = pgtype.Int8{Int64: *billID, Valid: true}
	}

	rows, err := g.details.GetDetailAmounts(ctx, scope)
	if err != nil {
		g.log.Error("failed to fetch detail amounts", "error", err)
		return fail[model.DetailStats](err.Error())
	}

	amounts := make([]model.DetailAmount, len(rows))
	for i, row := range rows {
		amounts[i] = model.DetailAmount{Quantity: row.Quantity, Price: row.Price}
	}

	return ok(model.AggregateDetails(amounts))
}
