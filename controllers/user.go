package controllers

import (
	"strings"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// NewUserController manages back-office accounts. New accounts default to the admin role.
func NewUserController(client *backend.Client) *resourceController[models.User] {
	return &resourceController[models.User]{
		client:   client,
		resource: (*backend.Client).Users,
		listing:  services.UserListing,
		perPage:  10,
		noun:     "user",
		validate: validateUser,
	}
}

func validateUser(u *models.User, existing bool) []utils.FieldError {
	var errs fieldErrors
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.TrimSpace(u.Email)
	u.Branch = strings.TrimSpace(u.Branch)
	if u.Role == "" {
		u.Role = models.RoleAdmin
	}

	if u.FirstName == "" {
		errs.add("firstName", "First name is required")
	}
	if u.LastName == "" {
		errs.add("lastName", "Last name is required")
	}
	if u.Email == "" {
		errs.add("email", "Email is required")
	} else if !utils.ValidateEmail(u.Email) {
		errs.add("email", "Please enter a valid email address")
	}
	switch {
	case !existing && u.Password == "":
		errs.add("password", "Password is required")
	case u.Password != "" && len(u.Password) < 6:
		errs.add("password", "Password must be at least 6 characters")
	}
	if u.Branch == "" {
		errs.add("branch", "Branch is required")
	}
	return errs
}
