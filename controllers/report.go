package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/utils"
)

var reportPeriods = map[string]bool{"daily": true, "weekly": true, "monthly": true, "yearly": true}

var transactionParams = []string{
	"page", "limit", "sortBy", "sortOrder", "startDate", "endDate",
	"paymentMethod", "minAmount", "maxAmount",
}

type ReportController struct {
	client *backend.Client
}

func NewReportController(client *backend.Client) *ReportController {
	return &ReportController{client: client}
}

func passThrough(c *gin.Context, keys ...string) url.Values {
	q := url.Values{}
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func (rc *ReportController) Summary(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	summary, err := rc.client.WithToken(auth.Token).
		ReportSummary(c.Request.Context(), passThrough(c, "startDate", "endDate"))
	if err != nil {
		respondError(c, err, "Failed to fetch report summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) Transactions(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	page, err := rc.client.WithToken(auth.Token).
		Transactions(c.Request.Context(), passThrough(c, transactionParams...))
	if err != nil {
		respondError(c, err, "Failed to fetch transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// Generate asks the backend to build a report for one of the fixed periods.
func (rc *ReportController) Generate(c *gin.Context) {
	period := c.Param("period")
	if !reportPeriods[period] {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report period")
		return
	}
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	if err := rc.client.WithToken(auth.Token).GenerateReport(c.Request.Context(), period); err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report generated successfully", "period": period})
}

func (rc *ReportController) Register(g *gin.RouterGroup) {
	g.GET("/summary", rc.Summary)
	g.GET("/transactions", rc.Transactions)
	g.POST("/generate/:period", rc.Generate)
}
