package billdetail

import (
	"context"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
)

// FetchByBill returns every line item of a bill in insertion order.
// A bill with no line items yields an empty slice, not a failure.
func (g *Gateway) FetchByBill(ctx context.Context, billID int64) Result[[]model.DetailLine] {
	rows, err := g.details.GetDetailsByBill(ctx, billID)
	if err != nil {
		g.log.Error("failed to fetch details by bill", "error", err, "bill_id", billID)
		return fail[[]model.DetailLine](err.Error())
	}

	return ok(convertDBDetails(rows))
}
