package billdetail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDeleteByBill(t *testing.T) {
	t.Run("deletes_all_lines_of_a_bill", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			DeleteDetailsByBill(gomock.Any(), int64(7)).
			Return(nil)

		status := gateway.DeleteByBill(context.Background(), 7)

		assert.True(t, status.Success)
		assert.Empty(t, status.Msg)
	})

	t.Run("invalid_bill_id", func(t *testing.T) {
		gateway, _ := newTestGateway(t)

		status := gateway.DeleteByBill(context.Background(), 0)

		assert.False(t, status.Success)
		assert.Equal(t, msgInvalidBillID, status.Msg)
	})

	t.Run("store_error_passed_through", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			DeleteDetailsByBill(gomock.Any(), int64(7)).
			Return(errors.New("permission denied"))

		status := gateway.DeleteByBill(context.Background(), 7)

		assert.False(t, status.Success)
		assert.Equal(t, "permission denied", status.Msg)
	})
}
