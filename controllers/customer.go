package controllers

import (
	"strings"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

func NewCustomerController(client *backend.Client) *resourceController[models.Customer] {
	return &resourceController[models.Customer]{
		client:   client,
		resource: (*backend.Client).Customers,
		listing:  services.CustomerListing,
		perPage:  5,
		noun:     "customer",
		validate: validateCustomer,
	}
}

func validateCustomer(c *models.Customer, _ bool) []utils.FieldError {
	var errs fieldErrors
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)

	if c.FirstName == "" {
		errs.add("firstName", "First name is required")
	}
	if c.LastName == "" {
		errs.add("lastName", "Last name is required")
	}
	if strings.TrimSpace(c.PhoneNumber) == "" {
		errs.add("phoneNumber", "Phone number is required")
	} else if !utils.ValidatePhone(c.PhoneNumber) {
		errs.add("phoneNumber", "Phone number must be 10 digits")
	} else {
		c.PhoneNumber = utils.CleanPhone(c.PhoneNumber)
	}
	if c.Email != "" && !utils.ValidateEmail(c.Email) {
		errs.add("email", "Invalid email format")
	}
	return errs
}
