package billing

import "hairlab-backoffice/models"

// Catalog resolves ids to priced reference records. It is read-only once built.
type Catalog struct {
	Staff    []models.StaffMember         `json:"staff"`
	Services []models.ServiceCatalogEntry `json:"services"`
	Products []models.ProductCatalogEntry `json:"products"`

	staffByID   map[string]int
	serviceByID map[string]int
	productByID map[string]int
}

func NewCatalog(staff []models.StaffMember, services []models.ServiceCatalogEntry, products []models.ProductCatalogEntry) *Catalog {
	c := &Catalog{
		Staff:       staff,
		Services:    services,
		Products:    products,
		staffByID:   make(map[string]int, len(staff)),
		serviceByID: make(map[string]int, len(services)),
		productByID: make(map[string]int, len(products)),
	}
	for i, s := range staff {
		c.staffByID[s.ID] = i
	}
	for i, s := range services {
		c.serviceByID[s.ID] = i
	}
	for i, p := range products {
		c.productByID[p.ID] = i
	}
	return c
}

func (c *Catalog) Service(id string) (models.ServiceCatalogEntry, bool) {
	if c == nil {
		return models.ServiceCatalogEntry{}, false
	}
	i, ok := c.serviceByID[id]
	if !ok {
		return models.ServiceCatalogEntry{}, false
	}
	return c.Services[i], true
}

func (c *Catalog) Product(id string) (models.ProductCatalogEntry, bool) {
	if c == nil {
		return models.ProductCatalogEntry{}, false
	}
	i, ok := c.productByID[id]
	if !ok {
		return models.ProductCatalogEntry{}, false
	}
	return c.Products[i], true
}

func (c *Catalog) StaffMember(id string) (models.StaffMember, bool) {
	if c == nil {
		return models.StaffMember{}, false
	}
	i, ok := c.staffByID[id]
	if !ok {
		return models.StaffMember{}, false
	}
	return c.Staff[i], true
}
