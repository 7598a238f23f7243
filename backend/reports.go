package backend

import (
	"context"
	"net/http"
	"net/url"

	"hairlab-backoffice/models"
)

func (c *Client) ReportSummary(ctx context.Context, query url.Values) (models.ReportSummary, error) {
	summary := models.ReportSummary{}
	err := c.doJSON(ctx, http.MethodGet, "/api/reports/summary", query, nil, &summary)
	return summary, err
}

// Transactions passes paging, sorting and amount filters straight through.
func (c *Client) Transactions(ctx context.Context, query url.Values) (models.TransactionPage, error) {
	var page models.TransactionPage
	err := c.doJSON(ctx, http.MethodGet, "/api/reports/transactions", query, nil, &page)
	return page, err
}

func (c *Client) GenerateReport(ctx context.Context, period string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/reports/generate/"+escape(period), nil, nil, nil)
}

func (c *Client) Dashboard(ctx context.Context, startDate, endDate string) (models.DashboardData, error) {
	var data models.DashboardData
	q := url.Values{"startDate": {startDate}, "endDate": {endDate}}
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard", q, nil, &data); err != nil {
		return data, err
	}
	data.Charts.Normalize()
	return data, nil
}
