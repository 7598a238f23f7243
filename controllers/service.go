package controllers

import (
	"strings"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// NewServiceController manages the salon's service menu.
func NewServiceController(client *backend.Client) *resourceController[models.ServiceCatalogEntry] {
	return &resourceController[models.ServiceCatalogEntry]{
		client:   client,
		resource: (*backend.Client).Services,
		listing:  services.ServiceListing,
		perPage:  10,
		noun:     "service",
		validate: validateService,
	}
}

func validateService(s *models.ServiceCatalogEntry, _ bool) []utils.FieldError {
	var errs fieldErrors
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		errs.add("serviceName", "Service name is required")
	}
	if s.Price <= 0 {
		errs.add("price", "Please enter a valid price")
	}
	if s.Duration <= 0 {
		errs.add("duration", "Please enter a valid duration")
	}
	return errs
}
