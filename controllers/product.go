package controllers

import (
	"strings"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

func NewProductController(client *backend.Client) *resourceController[models.ProductCatalogEntry] {
	return &resourceController[models.ProductCatalogEntry]{
		client:   client,
		resource: (*backend.Client).Products,
		listing:  services.ProductListing,
		perPage:  10,
		noun:     "product",
		validate: validateProduct,
	}
}

func validateProduct(p *models.ProductCatalogEntry, _ bool) []utils.FieldError {
	var errs fieldErrors
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		errs.add("productName", "Product name is required")
	}
	if p.Price <= 0 {
		errs.add("price", "Please enter a valid price")
	}
	if p.Stock < 0 {
		errs.add("stock", "Stock cannot be negative")
	}
	return errs
}
