package billdetail

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

func TestStats(t *testing.T) {
	t.Run("aggregates_over_all_bills", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			GetDetailAmounts(gomock.Any(), pgtype.Int8{}).
			Return([]details.GetDetailAmountsRow{
				{Quantity: 2, Price: 10},
				{Quantity: 3, Price: 20},
			}, nil)

		result := gateway.Stats(context.Background(), nil)

		assert.True(t, result.Success)
		assert.Equal(t, int64(2), result.Data.TotalItems)
		assert.Equal(t, 5.0, result.Data.TotalQuantity)
		assert.Equal(t, 80.0, result.Data.TotalValue)
		assert.Equal(t, 16.0, result.Data.AveragePrice)
		assert.Equal(t, 2.5, result.Data.AverageQuantity)
	})

	t.Run("scopes_to_one_bill", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			GetDetailAmounts(gomock.Any(), pgtype.Int8{Int64: 7, Valid: true}).
			Return([]details.GetDetailAmountsRow{{Quantity: 1, Price: 12}}, nil)

		result := gateway.Stats(context.Background(), ptrInt64(7))

		assert.True(t, result.Success)
		assert.Equal(t, int64(1), result.Data.TotalItems)
		assert.Equal(t, 12.0, result.Data.TotalValue)
	})

	t.Run("empty_set_is_all_zeroes", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			GetDetailAmounts(gomock.Any(), pgtype.Int8{}).
			Return(nil, nil)

		result := gateway.Stats(context.Background(), nil)

		assert.True(t, result.Success)
		assert.Equal(t, int64(0), result.Data.TotalItems)
		assert.Equal(t, 0.0, result.Data.TotalQuantity)
		assert.Equal(t, 0.0, result.Data.TotalValue)
		assert.Equal(t, 0.0, result.Data.AveragePrice)
		assert.Equal(t, 0.0, result.Data.AverageQuantity)
	})

	t.Run("store_error_passed_through", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			GetDetailAmounts(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("query canceled"))

		result := gateway.Stats(context.Background(), nil)

		assert.False(t, result.Success)
		assert.Equal(t, "query canceled", result.Msg)
	})
}
