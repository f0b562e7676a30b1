package billdetail

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

// UpdateQuantity patches only the quantity of one line item.
func (g *Gateway) UpdateQuantity(ctx context.Context, detailID int64, quantity float64) Result[model.DetailLine] {
	if detailID <= 0 {
		return fail[model.DetailLine](msgInvalidDetailID)
	}
	if quantity <= 0 {
		return fail[model.DetailLine](msgQuantityPositive)
	}

	row, err := g.details.UpdateDetailQuantity(ctx, details.UpdateDetailQuantityParams{
		ID:        detailID,
		Quantity:  quantity,
		UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail[model.DetailLine](msgDetailNotFound)
		}
		g.log.Error("failed to update detail quantity", "error", err, "id", detailID)
		return fail[model.DetailLine](err.Error())
	}

	return ok(convertDBDetailToModel(row))
}
