package backend

import (
	"context"
	"net/http"

	"hairlab-backoffice/models"
)

func (c *Client) Staff() Resource[models.StaffMember] {
	return Resource[models.StaffMember]{client: c, path: "/api/staff"}
}

func (c *Client) Services() Resource[models.ServiceCatalogEntry] {
	return Resource[models.ServiceCatalogEntry]{client: c, path: "/api/services"}
}

func (c *Client) Products() Resource[models.ProductCatalogEntry] {
	return Resource[models.ProductCatalogEntry]{client: c, path: "/api/products"}
}

func (c *Client) Customers() Resource[models.Customer] {
	return Resource[models.Customer]{client: c, path: "/api/customers"}
}

func (c *Client) Users() Resource[models.User] {
	return Resource[models.User]{client: c, path: "/api/users"}
}

// SetStaffAvailability toggles a staff member's availability flag.
func (c *Client) SetStaffAvailability(ctx context.Context, id string, availability bool) error {
	body := map[string]bool{"availability": availability}
	return c.doJSON(ctx, http.MethodPatch, "/api/staff/"+escape(id)+"/availability", nil, body, nil)
}

// FindCustomerByPhone looks a customer up by phone number. A miss is ErrNotFound.
func (c *Client) FindCustomerByPhone(ctx context.Context, phone string) (models.Customer, error) {
	var customer models.Customer
	err := c.doJSON(ctx, http.MethodGet, "/api/customers/phone/"+escape(phone), nil, nil, &customer)
	return customer, err
}
