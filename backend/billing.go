package backend

import (
	"context"
	"net/http"

	"hairlab-backoffice/models"
)

// CreateBill stores a finished bill.
func (c *Client) CreateBill(ctx context.Context, bill models.BillRecord) (models.BillResult, error) {
	var res models.BillResult
	err := c.doJSON(ctx, http.MethodPost, "/api/billing", nil, bill, &res)
	return res, err
}
