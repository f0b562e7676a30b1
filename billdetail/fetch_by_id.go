package billdetail

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
)

// FetchByID returns exactly one line item; a missing id is a failure.
func (g *Gateway) FetchByID(ctx context.Context, detailID int64) Result[model.DetailLine] {
	if detailID <= 0 {
		return fail[model.DetailLine](msgInvalidDetailID)
	}

	row, err := g.details.GetDetail(ctx, detailID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail[model.DetailLine](msgDetailNotFound)
		}
		g.log.Error("failed to fetch detail", "error", err, "id", detailID)
		return fail[model.DetailLine](err.Error())
	}

	return ok(convertDBDetailToModel(row))
}
