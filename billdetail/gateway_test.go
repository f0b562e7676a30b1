package billdetail

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/mocks/store/detail_store"
)

// newTestGateway wires the gateway to a mock store. Validation failures
// must never reach the store, so tests for them simply set no
// expectations and let gomock flag any call.
func newTestGateway(t *testing.T) (*Gateway, *detail_store.MockQuerier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := detail_store.NewMockQuerier(ctrl)
	gateway := New(mockStore, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return gateway, mockStore
}

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrString(v string) *string {
	return &v
}
