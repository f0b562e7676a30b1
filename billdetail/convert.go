package billdetail

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/model"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

// convertDBDetailToModel converts a database row to the domain model.
func convertDBDetailToModel(row details.DetailsBill) model.DetailLine {
	line := model.DetailLine{
		ID:        row.ID,
		BillID:    row.BillID,
		TableID:   row.TableID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Price:     row.Price,
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	if row.Image.Valid {
		image := row.Image.String
		line.Image = &image
	}

	return line
}

func convertDBDetails(rows []details.DetailsBill) []model.DetailLine {
	lines := make([]model.DetailLine, len(rows))
	for i, row := range rows {
		lines[i] = convertDBDetailToModel(row)
	}
	return lines
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func int8OrNull(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func float8OrNull(v *float64) pgtype.Float8 {
	if v == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *v, Valid: true}
}
