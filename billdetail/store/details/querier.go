package details

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the query surface of the details_bill table. The gateway
// depends on this interface so tests can substitute a mock store.
type Querier interface {
	GetDetailsByBill(ctx context.Context, billID int64) ([]DetailsBill, error)
	GetDetail(ctx context.Context, id int64) (DetailsBill, error)
	GetDetailsByProduct(ctx context.Context, arg GetDetailsByProductParams) ([]GetDetailsByProductRow, error)
	GetDetailAmounts(ctx context.Context, billID pgtype.Int8) ([]GetDetailAmountsRow, error)
	SearchDetailsByName(ctx context.Context, arg SearchDetailsByNameParams) ([]DetailsBill, error)
	CreateDetail(ctx context.Context, arg CreateDetailParams) (DetailsBill, error)
	CreateDetails(ctx context.Context, arg CreateDetailsParams) ([]DetailsBill, error)
	UpdateDetail(ctx context.Context, arg UpdateDetailParams) (DetailsBill, error)
	UpdateDetailQuantity(ctx context.Context, arg UpdateDetailQuantityParams) (DetailsBill, error)
	DeleteDetail(ctx context.Context, id int64) error
	DeleteDetailsByBill(ctx context.Context, billID int64) error
}

var _ Querier = (*Queries)(nil)
