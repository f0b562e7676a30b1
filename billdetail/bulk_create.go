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

// BulkDetailInput carries one line of a batch insert. Only the
// referencing ids are validated per item; quantity and price are taken
// as given, unlike the single-item Create path.
type BulkDetailInput struct {
	BillID    int64   `json:"bill_id" validate:"required"`
	TableID   int64   `json:"table_id" validate:"required"`
	ProductID int64   `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
	Image     *string `json:"image,omitempty"`
}

type BulkCreateRequest struct {
	Details []BulkDetailInput `json:"details" validate:"required,min=1,dive"`
}

// Validate checks the whole batch before any insert is attempted.
func (r *BulkCreateRequest) Validate() error {
	if len(r.Details) == 0 {
		return &ValidationError{msg: msgEmptyDetails}
	}
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// BulkCreate inserts all lines in one statement. Every line shares the
// same created_at stamp and the batch either fully persists or not at
// all.
func (g *Gateway) BulkCreate(ctx context.Context, req *BulkCreateRequest) Result[[]model.DetailLine] {
	if err := req.Validate(); err != nil {
		return fail[[]model.DetailLine](err.Error())
	}

	params := details.CreateDetailsParams{
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	for _, d := range req.Details {
		params.BillIDs = append(params.BillIDs, d.BillID)
		params.TableIDs = append(params.TableIDs, d.TableID)
		params.ProductIDs = append(params.ProductIDs, d.ProductID)
		params.Quantities = append(params.Quantities, d.Quantity)
		params.Prices = append(params.Prices, d.Price)
		params.Names = append(params.Names, d.Name)
		params.Images = append(params.Images, d.Image)
	}

	rows, err := g.details.CreateDetails(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			g.log.Error("failed to bulk create details", "error", err, "constraint", pgErr.ConstraintName, "count", len(req.Details))
		} else {
			g.log.Error("failed to bulk create details", "error", err, "count", len(req.Details))
		}
		return fail[[]model.DetailLine](err.Error())
	}

	return ok(convertDBDetails(rows))
}
