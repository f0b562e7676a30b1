package model

import (
	"time"
)

// DetailLine is one line item of a bill.
type DetailLine struct {
	ID        int64     `json:"id"`
	BillID    int64     `json:"bill_id"`
	TableID   int64     `json:"table_id"`
	ProductID int64     `json:"product_id"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillRef is the read-only projection of a parent bill joined into
// product-scoped queries. Mutations to the bill are not visible through
// this value without a fresh fetch.
type BillRef struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Time  time.Time `json:"time"`
	State string    `json:"state"`
}

type DetailWithBill struct {
	DetailLine
	Bill BillRef `json:"bill"`
}
