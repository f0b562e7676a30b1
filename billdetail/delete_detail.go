package billdetail

import (
	"context"
)

// Delete removes one line item by id. Deleting an id that no longer
// exists still reports success; callers must not rely on an existence
// check.
func (g *Gateway) Delete(ctx context.Context, detailID int64) Status {
	if detailID <= 0 {
		return failStatus(msgInvalidDetailID)
	}

	if err := g.details.DeleteDetail(ctx, detailID); err != nil {
		g.log.Error("failed to delete detail", "error", err, "id", detailID)
		return failStatus(err.Error())
	}

	return okStatus()
}
