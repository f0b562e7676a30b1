package details

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// DetailsBill mirrors one row of the details_bill table.
type DetailsBill struct {
	ID        int64
	BillID    int64
	TableID   int64
	ProductID int64
	Quantity  float64
	Price     float64
	Name      string
	Image     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// GetDetailsByProductRow carries a detail row plus the projected columns
// of its parent bill.
type GetDetailsByProductRow struct {
	DetailsBill
	BillName  string
	BillPhone pgtype.Text
	BillTime  pgtype.Timestamptz
	BillState pgtype.Text
}

// GetDetailAmountsRow is the minimal projection used for aggregation.
type GetDetailAmountsRow struct {
	Quantity float64
	Price    float64
}
