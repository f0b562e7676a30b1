package billdetail

import (
	"context"
)

// DeleteByBill removes every line item of a bill. The delete is
// physical and unconditional.
func (g *Gateway) DeleteByBill(ctx context.Context, billID int64) Status {
	if billID <= 0 {
		return failStatus(msgInvalidBillID)
	}

	if err := g.details.DeleteDetailsByBill(ctx, billID); err != nil {
		g.log.Error("failed to delete details by bill", "error", err, "bill_id", billID)
		return failStatus(err.Error())
	}

	return okStatus()
}
