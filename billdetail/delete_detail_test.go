package billdetail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDelete(t *testing.T) {
	t.Run("successful_delete_carries_no_data", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			DeleteDetail(gomock.Any(), int64(4)).
			Return(nil)

		status := gateway.Delete(context.Background(), 4)

		assert.True(t, status.Success)
		assert.Empty(t, status.Msg)
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		// The store reports success for a missing id; so does the gateway.
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			DeleteDetail(gomock.Any(), int64(999)).
			Return(nil)

		status := gateway.Delete(context.Background(), 999)

		assert.True(t, status.Success)
	})

	t.Run("invalid_detail_id", func(t *testing.T) {
		gateway, _ := newTestGateway(t)

		status := gateway.Delete(context.Background(), -1)

		assert.False(t, status.Success)
		assert.Equal(t, msgInvalidDetailID, status.Msg)
	})

	t.Run("store_error_passed_through", func(t *testing.T) {
		gateway, mockStore := newTestGateway(t)

		mockStore.EXPECT().
			DeleteDetail(gomock.Any(), int64(4)).
			Return(errors.New("connection reset"))

		status := gateway.Delete(context.Background(), 4)

		assert.False(t, status.Success)
		assert.Equal(t, "connection reset", status.Msg)
	})
}
