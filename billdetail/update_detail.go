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

// UpdateDetailRequest is a partial patch; nil fields keep their stored
// value. Unlike Create, no field-level validation is applied here.
type UpdateDetailRequest struct {
	BillID    *int64   `json:"bill_id,omitempty"`
	TableID   *int64   `json:"table_id,omitempty"`
	ProductID *int64   `json:"product_id,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Image     *string  `json:"image,omitempty"`
}

// Update applies the patch to one line item and stamps updated_at.
func (g *Gateway) Update(ctx context.Context, detailID int64, req *UpdateDetailRequest) Result[model.DetailLine] {
	if detailID <= 0 {
		return fail[model.DetailLine](msgInvalidDetailID)
	}

	row, err := g.details.UpdateDetail(ctx, details.UpdateDetailParams{
		ID:        detailID,
		BillID:    int8OrNull(req.BillID),
		TableID:   int8OrNull(req.TableID),
		ProductID: int8OrNull(req.ProductID),
		Quantity:  float8OrNull(req.Quantity),
		Price:     float8OrNull(req.Price),
		Name:      textOrNull(req.Name),
		Image:     textOrNull(req.Image),
		UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fail[model.DetailLine](msgDetailNotFound)
		}
		g.log.Error("failed to update detail", "error", err, "id", detailID)
		return fail[model.DetailLine](err.Error())
	}

	return ok(convertDBDetailToModel(row))
}
