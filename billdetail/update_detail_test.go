package billdetail

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

func TestUpdate(t *testing.T) {
	t.Run("partial_patch_only_sets_supplied_fields", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			UpdateDetail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg details.UpdateDetailParams) (details.DetailsBill, error) {
				assert.Equal(t, int64(4), arg.ID)
				assert.False(t, arg.BillID.Valid)
				assert.False(t, arg.TableID.Valid)
				assert.False(t, arg.ProductID.Valid)
				assert.True(t, arg.Quantity.Valid)
				assert.Equal(t, 3.0, arg.Quantity.Float64)
				assert.True(t, arg.Name.Valid)
				assert.Equal(t, "Pho tai", arg.Name.String)
				assert.False(t, arg.Price.Valid)
				assert.False(t, arg.Image.Valid)
				assert.True(t, arg.UpdatedAt.Valid)

				return details.DetailsBill{
					ID: 4, BillID: 1, TableID: 1, ProductID: 11,
					Quantity: 3, Price: 10, Name: "Pho tai",
					UpdatedAt: arg.UpdatedAt,
				}, nil
			})

		result := gateway.Update(context.Background(), 4, &UpdateDetailRequest{
			Quantity: ptrFloat64(3),
			Name:     ptrString("Pho tai"),
		})

		assert.True(t, result.Success)
		assert.Equal(t, 3.0, result.Data.Quantity)
		assert.Equal(t, "Pho tai", result.Data.Name)
	})

	t.Run("negative_values_pass_through_unvalidated", func(t *testing.T) {
		// Update intentionally skips the Create-time value checks.
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			UpdateDetail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg details.UpdateDetailParams) (details.DetailsBill, error) {
				assert.True(t, arg.Price.Valid)
				assert.Equal(t, -5.0, arg.Price.Float64)
				return details.DetailsBill{ID: 4, Price: -5}, nil
			})

		result := gateway.Update(context.Background(), 4, &UpdateDetailRequest{
			Price: ptrFloat64(-5),
		})

		assert.True(t, result.Success)
	})

	t.Run("invalid_detail_id", func(t *testing.T) {
		gateway, _ := newTestGateway(t)

		result := gateway.Update(context.Background(), 0, &UpdateDetailRequest{})

		assert.False(t, result.Success)
		assert.Equal(t, msgInvalidDetailID, result.Msg)
	})

	t.Run("unknown_id_reports_not_found", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			UpdateDetail(gomock.Any(), gomock.Any()).
			Return(details.DetailsBill{}, pgx.ErrNoRows)

		result := gateway.Update(context.Background(), 999, &UpdateDetailRequest{Name: ptrString("x")})

		assert.False(t, result.Success)
		assert.Equal(t, msgDetailNotFound, result.Msg)
	})

	t.Run("store_error_passed_through", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			UpdateDetail(gomock.Any(), gomock.Any()).
			Return(details.DetailsBill{}, errors.New("deadlock detected"))

		result := gateway.Update(context.Background(), 4, &UpdateDetailRequest{Name: ptrString("x")})

		assert.False(t, result.Success)
		assert.Equal(t, "deadlock detected", result.Msg)
	})
}
