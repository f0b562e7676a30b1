package billdetail

import (
	"context"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

const defaultProductLimit = 50

// FetchByProduct returns the most recent line items for a product, each
// joined with a read-only projection of its parent bill. Lines whose
// bill was deleted are excluded by the join.
func (g *Gateway) FetchByProduct(ctx context.Context, productID int64, limit int32) Result[[]model.DetailWithBill] {
	if limit <= 0 {
		limit = defaultProductLimit
	}

	rows, err := g.details.GetDetailsByProduct(ctx, details.GetDetailsByProductParams{
		ProductID: productID,
		Limit:     limit,
	})
	if err != nil {
		g.log.Error("failed to fetch details by product", "error", err, "product_id", productID)
		return fail[[]model.DetailWithBill](err.Error())
	}

	items := make([]model.DetailWithBill, len(rows))
	for i, row := range rows {
		items[i] = model.DetailWithBill{
			DetailLine: convertDBDetailToModel(row.DetailsBill),
			Bill: model.BillRef{
				ID:    row.BillID,
				Name:  row.BillName,
				Phone: row.BillPhone.String,
				Time:  row.BillTime.Time,
				State: row.BillState.String,
			},
		}
	}

	return ok(items)
}
