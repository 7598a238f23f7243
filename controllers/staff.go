package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

type StaffController struct {
	*resourceController[models.StaffMember]
}

func NewStaffController(client *backend.Client) *StaffController {
	return &StaffController{&resourceController[models.StaffMember]{
		client:   client,
		resource: (*backend.Client).Staff,
		listing:  services.StaffListing,
		perPage:  5,
		noun:     "staff member",
		validate: validateStaff,
	}}
}

func validateStaff(s *models.StaffMember, _ bool) []utils.FieldError {
	var errs fieldErrors
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)

	if s.FirstName == "" {
		errs.add("firstName", "First name is required")
	}
	if s.LastName == "" {
		errs.add("lastName", "Last name is required")
	}
	if strings.TrimSpace(s.PhoneNumber) == "" {
		errs.add("phoneNumber", "Phone number is required")
	} else if !utils.ValidatePhone(s.PhoneNumber) {
		errs.add("phoneNumber", "Phone number must be 10 digits")
	} else {
		s.PhoneNumber = utils.CleanPhone(s.PhoneNumber)
	}
	if s.Email == "" {
		errs.add("email", "Email is required")
	} else if !utils.ValidateEmail(s.Email) {
		errs.add("email", "Invalid email format")
	}
	if s.Role == "" {
		errs.add("role", "Role is required")
	} else if !validStaffRole(s.Role) {
		errs.add("role", "Unknown role")
	}
	if s.HireDate == "" {
		errs.add("hireDate", "Hire date is required")
	} else if t, ok := parseHireDate(s.HireDate); !ok {
		errs.add("hireDate", "Invalid hire date")
	} else {
		s.HireDate = t.Format(utils.DateLayout)
	}
	if s.Salary <= 0 {
		errs.add("salary", "Please enter a valid salary amount")
	}
	return errs
}

func validStaffRole(role string) bool {
	for _, r := range models.StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

func parseHireDate(s string) (time.Time, bool) {
	for _, layout := range []string{utils.DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type AvailabilityInput struct {
	Availability *bool `json:"availability" binding:"required"`
}

// SetAvailability toggles whether a staff member takes bookings.
func (sc *StaffController) SetAvailability(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client := sc.client.WithToken(auth.Token)
	if err := client.SetStaffAvailability(c.Request.Context(), c.Param("id"), *input.Availability); err != nil {
		respondError(c, err, "Failed to update availability. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "availability": *input.Availability})
}

// Roles lists the specializations a staff member may hold.
func (sc *StaffController) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, models.StaffRoles)
}

func (sc *StaffController) Register(g *gin.RouterGroup) {
	g.GET("/roles", sc.Roles)
	sc.resourceController.Register(g)
	g.PATCH("/:id/availability", sc.SetAvailability)
}
