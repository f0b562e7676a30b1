package billdetail

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

type CreateDetailRequest struct {
	BillID    int64    `json:"bill_id" validate:"required"`
	TableID   int64    `json:"table_id" validate:"required"`
	ProductID int64    `json:"product_id" validate:"required"`
	Quantity  float64  `json:"quantity" validate:"required,gt=0"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Name      string   `json:"name"`
	Image     *string  `json:"image,omitempty"`
}

// Validate implements validation for CreateDetailRequest using
// go-playground/validator.
func (r *CreateDetailRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// Create inserts one line item. Timestamps are stamped here, name
// defaults to the empty string and image stays absent unless supplied.
func (g *Gateway) Create(ctx context.Context, req *CreateDetailRequest) Result[model.DetailLine] {
	if err := req.Validate(); err != nil {
		return fail[model.DetailLine](err.Error())
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	row, err := g.details.CreateDetail(ctx, details.CreateDetailParams{
		BillID:    req.BillID,
		TableID:   req.TableID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     *req.Price,
		Name:      req.Name,
		Image:     textOrNull(req.Image),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			g.log.Error("failed to create detail", "error", err, "constraint", pgErr.ConstraintName, "bill_id", req.BillID)
		} else {
			g.log.Error("failed to create detail", "error", err, "bill_id", req.BillID)
		}
		return fail[model.DetailLine](err.Error())
	}

	return ok(convertDBDetailToModel(row))
}
