package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

type AppointmentController struct {
	client *backend.Client
}

func NewAppointmentController(client *backend.Client) *AppointmentController {
	return &AppointmentController{client: client}
}

type BookAppointmentInput struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	ServiceID     string `json:"service"`
	StaffID       string `json:"staff"`
	DateTime      string `json:"dateTime"`
	Notes         string `json:"notes"`
}

// List returns the appointments laid out as calendar events.
func (ac *AppointmentController) List(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	appts, err := ac.client.WithToken(auth.Token).ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}

	events := make([]models.CalendarEvent, 0, len(appts))
	for _, a := range appts {
		events = append(events, a.ToEvent())
	}
	c.JSON(http.StatusOK, events)
}

func (ac *AppointmentController) Create(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	req, fields := input.request()
	if respondInvalid(c, fields) {
		return
	}

	appt, err := ac.client.WithToken(auth.Token).CreateAppointment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully!",
		"appointment": appt,
		"event":       appt.ToEvent(),
	})
}

func (in BookAppointmentInput) request() (models.AppointmentRequest, []utils.FieldError) {
	var errs fieldErrors

	first, last := utils.SplitName(in.CustomerName)
	if first == "" {
		errs.add("customerName", "Customer name is required")
	}
	if !utils.ValidatePhone(in.CustomerPhone) {
		errs.add("customerPhone", "Please enter a valid 10-digit phone number")
	}
	email := strings.TrimSpace(in.CustomerEmail)
	if email != "" && !utils.ValidateEmail(email) {
		errs.add("customerEmail", "Please enter a valid email address")
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		errs.add("service", "Please select a service")
	}
	if strings.TrimSpace(in.StaffID) == "" {
		errs.add("staff", "Please select a staff member")
	}

	at, err := time.Parse(time.RFC3339, strings.TrimSpace(in.DateTime))
	if err != nil {
		errs.add("dateTime", "Please select a valid date and time")
	}

	return models.AppointmentRequest{
		FirstName:   first,
		LastName:    last,
		PhoneNumber: utils.CleanPhone(in.CustomerPhone),
		Email:       email,
		Service:     strings.TrimSpace(in.ServiceID),
		Staff:       strings.TrimSpace(in.StaffID),
		DateTime:    at,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      "confirmed",
	}, errs
}

func (ac *AppointmentController) Register(g *gin.RouterGroup) {
	g.GET("", ac.List)
	g.POST("", ac.Create)
}
