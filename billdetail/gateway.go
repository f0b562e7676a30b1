package billdetail

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
)

var validate = validator.New()

// Gateway is the data-access surface for bill line items. It validates
// inputs before any store call, wraps every outcome in the result
// envelope and never returns a Go error across its boundary.
//
// The gateway holds no mutable state; concurrent calls are safe but
// uncoordinated, ordering across calls is whatever the store decides.
type Gateway struct {
	details details.Querier
	log     *slog.Logger
}

func New(details details.Querier, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		details: details,
		log:     log,
	}
}
