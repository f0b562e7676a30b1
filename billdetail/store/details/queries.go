package details

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const detailColumns = `id, bill_id, table_id, product_id, quantity, price, name, image, created_at, updated_at`

const getDetailsByBill = `
SELECT ` + detailColumns + `
FROM details_bill
WHERE bill_id = $1
ORDER BY created_at ASC
`

func (q *Queries) GetDetailsByBill(ctx context.Context, billID int64) ([]DetailsBill, error) {
	rows, err := q.db.Query(ctx, getDetailsByBill, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DetailsBill
	for rows.Next() {
		var i DetailsBill
		if err := rows.Scan(
			&i.ID,
			&i.BillID,
			&i.TableID,
			&i.ProductID,
			&i.Quantity,
			&i.Price,
			&i.Name,
			&i.Image,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getDetail = `
SELECT ` + detailColumns + `
FROM details_bill
WHERE id = $1
`

func (q *Queries) GetDetail(ctx context.Context, id int64) (DetailsBill, error) {
	row := q.db.QueryRow(ctx, getDetail, id)
	var i DetailsBill
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.TableID,
		&i.ProductID,
		&i.Quantity,
		&i.Price,
		&i.Name,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDetailsByProduct = `
SELECT d.id, d.bill_id, d.table_id, d.product_id, d.quantity, d.price, d.name, d.image, d.created_at, d.updated_at,
       b.name AS bill_name, b.phone AS bill_phone, b.time AS bill_time, b.state AS bill_state
FROM details_bill d
JOIN bills b ON b.id = d.bill_id
WHERE d.product_id = $1
ORDER BY d.created_at DESC
LIMIT $2
`

type GetDetailsByProductParams struct {
	ProductID int64
	Limit     int32
}

func (q *Queries) GetDetailsByProduct(ctx context.Context, arg GetDetailsByProductParams) ([]GetDetailsByProductRow, error) {
	rows, err := q.db.Query(ctx, getDetailsByProduct, arg.ProductID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetDetailsByProductRow
	for rows.Next() {
		var i GetDetailsByProductRow
		if err := rows.Scan(
			&i.ID,
			&i.BillID,
			&i.TableID,
			&i.ProductID,
			&i.Quantity,
			&i.Price,
			&i.Name,
			&i.Image,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.BillName,
			&i.BillPhone,
			&i.BillTime,
			&i.BillState,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getDetailAmounts = `
SELECT quantity, price
FROM details_bill
WHERE $1::bigint IS NULL OR bill_id = $1
`

func (q *Queries) GetDetailAmounts(ctx context.Context, billID pgtype.Int8) ([]GetDetailAmountsRow, error) {
	rows, err := q.db.Query(ctx, getDetailAmounts, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetDetailAmountsRow
	for rows.Next() {
		var i GetDetailAmountsRow
		if err := rows.Scan(&i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const searchDetailsByName = `
SELECT ` + detailColumns + `
FROM details_bill
WHERE name ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
LIMIT $2
`

type SearchDetailsByNameParams struct {
	Name  string
	Limit int32
}

func (q *Queries) SearchDetailsByName(ctx context.Context, arg SearchDetailsByNameParams) ([]DetailsBill, error) {
	rows, err := q.db.Query(ctx, searchDetailsByName, arg.Name, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DetailsBill
	for rows.Next() {
		var i DetailsBill
		if err := rows.Scan(
			&i.ID,
			&i.BillID,
			&i.TableID,
			&i.ProductID,
			&i.Quantity,
			&i.Price,
			&i.Name,
			&i.Image,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createDetail = `
INSERT INTO details_bill (bill_id, table_id, product_id, quantity, price, name, image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + detailColumns + `
`

type CreateDetailParams struct {
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

func (q *Queries) CreateDetail(ctx context.Context, arg CreateDetailParams) (DetailsBill, error) {
	row := q.db.QueryRow(ctx, createDetail,
		arg.BillID,
		arg.TableID,
		arg.ProductID,
		arg.Quantity,
		arg.Price,
		arg.Name,
		arg.Image,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i DetailsBill
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.TableID,
		&i.ProductID,
		&i.Quantity,
		&i.Price,
		&i.Name,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// createDetails inserts the whole batch in one statement so a failing row
// persists nothing.
const createDetails = `
INSERT INTO details_bill (bill_id, table_id, product_id, quantity, price, name, image, created_at, updated_at)
SELECT u.bill_id, u.table_id, u.product_id, u.quantity, u.price, u.name, u.image, $8, $8
FROM unnest($1::bigint[], $2::bigint[], $3::bigint[], $4::float8[], $5::float8[], $6::text[], $7::text[])
     AS u(bill_id, table_id, product_id, quantity, price, name, image)
RETURNING ` + detailColumns + `
`

type CreateDetailsParams struct {
	BillIDs    []int64
	TableIDs   []int64
	ProductIDs []int64
	Quantities []float64
	Prices     []float64
	Names      []string
	Images     []*string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateDetails(ctx context.Context, arg CreateDetailsParams) ([]DetailsBill, error) {
	rows, err := q.db.Query(ctx, createDetails,
		arg.BillIDs,
		arg.TableIDs,
		arg.ProductIDs,
		arg.Quantities,
		arg.Prices,
		arg.Names,
		arg.Images,
		arg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DetailsBill
	for rows.Next() {
		var i DetailsBill
		if err := rows.Scan(
			&i.ID,
			&i.BillID,
			&i.TableID,
			&i.ProductID,
			&i.Quantity,
			&i.Price,
			&i.Name,
			&i.Image,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateDetail = `
UPDATE details_bill
SET bill_id    = COALESCE($2, bill_id),
    table_id   = COALESCE($3, table_id),
    product_id = COALESCE($4, product_id),
    quantity   = COALESCE($5, quantity),
    price      = COALESCE($6, price),
    name       = COALESCE($7, name),
    image      = COALESCE($8, image),
    updated_at = $9
WHERE id = $1
RETURNING ` + detailColumns + `
`

type UpdateDetailParams struct {
	ID        int64
	BillID    pgtype.Int8
	TableID   pgtype.Int8
	ProductID pgtype.Int8
	Quantity  pgtype.Float8
	Price     pgtype.Float8
	Name      pgtype.Text
	Image     pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateDetail(ctx context.Context, arg UpdateDetailParams) (DetailsBill, error) {
	row := q.db.QueryRow(ctx, updateDetail,
		arg.ID,
		arg.BillID,
		arg.TableID,
		arg.ProductID,
		arg.Quantity,
		arg.Price,
		arg.Name,
		arg.Image,
		arg.UpdatedAt,
	)
	var i DetailsBill
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.TableID,
		&i.ProductID,
		&i.Quantity,
		&i.Price,
		&i.Name,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateDetailQuantity = `
UPDATE details_bill
SET quantity = $2, updated_at = $3
WHERE id = $1
RETURNING ` + detailColumns + `
`

type UpdateDetailQuantityParams struct {
	ID        int64
	Quantity  float64
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateDetailQuantity(ctx context.Context, arg UpdateDetailQuantityParams) (DetailsBill, error) {
	row := q.db.QueryRow(ctx, updateDetailQuantity, arg.ID, arg.Quantity, arg.UpdatedAt)
	var i DetailsBill
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.TableID,
		&i.ProductID,
		&i.Quantity,
		&i.Price,
		&i.Name,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteDetail = `
DELETE FROM details_bill
WHERE id = $1
`

func (q *Queries) DeleteDetail(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteDetail, id)
	return err
}

const deleteDetailsByBill = `
DELETE FROM details_bill
WHERE bill_id = $1
`

func (q *Queries) DeleteDetailsByBill(ctx context.Context, billID int64) error {
	_, err := q.db.Exec(ctx, deleteDetailsByBill, billID)
	return err
}
