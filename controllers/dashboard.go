package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/utils"
)

type DashboardController struct {
	client *backend.Client
	now    func() time.Time
}

func NewDashboardController(client *backend.Client) *DashboardController {
	return &DashboardController{client: client, now: time.Now}
}

// Overview resolves the requested range preset and returns the backend's
// metrics and charts for it.
func (dc *DashboardController) Overview(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	preset := c.DefaultQuery("range", utils.RangeLast30Days)
	start, end, err := utils.DateRange(preset, dc.now(), c.Query("startDate"), c.Query("endDate"))
	if errors.Is(err, utils.ErrCustomRange) {
		utils.RespondWithError(c, http.StatusBadRequest, "Please select both start and end dates")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	data, err := dc.client.WithToken(auth.Token).Dashboard(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range":     preset,
		"startDate": start,
		"endDate":   end,
		"data":      data,
	})
}
