// controllers/reminder.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// UpdateReminderTemplateInput defines the expected JSON structure
type UpdateReminderTemplateInput struct {
	Message  *string `json:"message"`
	IsActive *bool   `json:"isActive"`
}

// ReminderRunner sends the daily reminders on demand.
type ReminderRunner interface {
	SendDailyReminders(ctx context.Context) int
}

type ReminderController struct {
	admin  services.ReminderAdmin
	runner ReminderRunner
}

func NewReminderController(admin services.ReminderAdmin, runner ReminderRunner) *ReminderController {
	return &ReminderController{admin: admin, runner: runner}
}

// GetReminderTemplates retrieves all reminder templates
func (rc *ReminderController) GetReminderTemplates(c *gin.Context) {
	templates, err := rc.admin.ListTemplates(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}
	c.JSON(http.StatusOK, nonNil(templates))
}

// UpdateReminderTemplate updates the template for one reminder type
func (rc *ReminderController) UpdateReminderTemplate(c *gin.Context) {
	kind := c.Param("type")
	if kind != models.ReminderBirthday && kind != models.ReminderReceipt {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template type")
		return
	}

	var input UpdateReminderTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Message != nil && *input.Message == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	tpl, err := rc.admin.UpdateTemplate(c.Request.Context(), kind, input.Message, input.IsActive)
	if errors.Is(err, services.ErrTemplateNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// GetReminderLogs lists the most recent outbound messages
func (rc *ReminderController) GetReminderLogs(c *gin.Context) {
	_, limit := utils.PageParams(c, 50)
	logs, err := rc.admin.RecentLogs(c.Request.Context(), limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}
	c.JSON(http.StatusOK, nonNil(logs))
}

// RunReminders triggers the daily birthday run immediately
func (rc *ReminderController) RunReminders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()
	sent := rc.runner.SendDailyReminders(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Reminders processed", "sent": sent})
}

func (rc *ReminderController) Register(g *gin.RouterGroup) {
	g.GET("/templates", rc.GetReminderTemplates)
	g.PUT("/templates/:type", rc.UpdateReminderTemplate)
	g.GET("/logs", rc.GetReminderLogs)
	g.POST("/run", rc.RunReminders)
}
