package billing

import (
	"github.com/shopspring/decimal"

	"hairlab-backoffice/models"
)

type LineKind string

const (
	ServiceLine LineKind = "service"
	ProductLine LineKind = "product"
)

type CustomerInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ServiceForm is the add-service sub-form. It echoes the last rejected input
// and is cleared once a line is added.
type ServiceForm struct {
	ServiceID string          `json:"serviceId"`
	StaffID   string          `json:"serviceStaffId"`
	Discount  decimal.Decimal `json:"serviceDiscount"`
}

type ProductForm struct {
	ProductID       string          `json:"productId"`
	Quantity        int             `json:"productQuantity"`
	DiscountPercent decimal.Decimal `json:"productDiscount"`
}

// Charges carries optional updates to the bill-level amounts.
type Charges struct {
	TaxPercent *decimal.Decimal
	Cashback   *decimal.Decimal
	Tip        *decimal.Decimal
}

// Draft is an in-progress bill. Every mutation re-runs RecomputeTotals, so
// Totals always reflects the current lines and charges. A Draft is not safe
// for concurrent use.
type Draft struct {
	Customer      CustomerInfo      `json:"customer"`
	Services      []ServiceLineItem `json:"services"`
	Products      []ProductLineItem `json:"products"`
	ServiceForm   ServiceForm       `json:"serviceForm"`
	ProductForm   ProductForm       `json:"productForm"`
	TaxPercent    decimal.Decimal   `json:"gstPercentage"`
	Cashback      decimal.Decimal   `json:"cashback"`
	Tip           decimal.Decimal   `json:"tip"`
	PaymentMethod string            `json:"paymentMethod"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
	Totals        BillTotals        `json:"totals"`

	defaultTax decimal.Decimal
	catalog    *Catalog
}

func NewDraft(catalog *Catalog, defaultTaxPercent decimal.Decimal) *Draft {
	d := &Draft{
		defaultTax: defaultTaxPercent,
		catalog:    catalog,
	}
	d.Clear()
	return d
}

func (d *Draft) Catalog() *Catalog {
	return d.catalog
}

// SetCatalog swaps the reference data. Existing lines keep the prices they were added with.
func (d *Draft) SetCatalog(c *Catalog) {
	d.catalog = c
}

func (d *Draft) recompute() {
	d.Totals = RecomputeTotals(d.Services, d.Products, d.TaxPercent, d.Cashback, d.Tip)
}

// AddServiceLine appends a priced service line for the given service and staff member.
func (d *Draft) AddServiceLine(serviceID, staffID string, discount decimal.Decimal) (ServiceLineItem, error) {
	d.ServiceForm = ServiceForm{ServiceID: serviceID, StaffID: staffID, Discount: discount}

	svc, okSvc := d.catalog.Service(serviceID)
	staff, okStaff := d.catalog.StaffMember(staffID)
	if !okSvc || !okStaff {
		return ServiceLineItem{}, invalid("Please select both service and staff")
	}

	line, err := NewServiceLine(svc, staff, discount)
	if err != nil {
		return ServiceLineItem{}, err
	}

	d.Services = append(d.Services, line)
	d.ServiceForm = ServiceForm{}
	d.recompute()
	return line, nil
}

// AddProductLine appends a priced product line.
func (d *Draft) AddProductLine(productID string, quantity int, discountPercent decimal.Decimal) (ProductLineItem, error) {
	d.ProductForm = ProductForm{ProductID: productID, Quantity: quantity, DiscountPercent: discountPercent}

	product, ok := d.catalog.Product(productID)
	if !ok {
		return ProductLineItem{}, invalid("Please select a product")
	}

	line, err := NewProductLine(product, quantity, discountPercent)
	if err != nil {
		return ProductLineItem{}, err
	}

	d.Products = append(d.Products, line)
	d.ProductForm = ProductForm{Quantity: 1}
	d.recompute()
	return line, nil
}

// RemoveLine drops the line at index from the given list. Out of range
// indexes and unknown kinds leave the draft unchanged and report false.
func (d *Draft) RemoveLine(kind LineKind, index int) bool {
	switch kind {
	case ServiceLine:
		if index < 0 || index >= len(d.Services) {
			return false
		}
		d.Services = append(d.Services[:index:index], d.Services[index+1:]...)
	case ProductLine:
		if index < 0 || index >= len(d.Products) {
			return false
		}
		d.Products = append(d.Products[:index:index], d.Products[index+1:]...)
	default:
		return false
	}
	d.recompute()
	return true
}

func (d *Draft) SetCharges(ch Charges) {
	if ch.TaxPercent != nil {
		d.TaxPercent = *ch.TaxPercent
	}
	if ch.Cashback != nil {
		d.Cashback = *ch.Cashback
	}
	if ch.Tip != nil {
		d.Tip = *ch.Tip
	}
	d.recompute()
}

func (d *Draft) SetCustomer(info CustomerInfo) {
	d.Customer = info
}

// FillCustomer copies a known customer's details, keeping the typed phone
// number when the record has none.
func (d *Draft) FillCustomer(c models.Customer) {
	phone := c.PhoneNumber
	if phone == "" {
		phone = d.Customer.PhoneNumber
	}
	d.Customer = CustomerInfo{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: phone,
	}
}

func (d *Draft) SetPayment(method string, amountPaid decimal.Decimal) {
	d.PaymentMethod = method
	d.AmountPaid = amountPaid
}

func (d *Draft) LineCount() int {
	return len(d.Services) + len(d.Products)
}

// Clear resets the draft to an empty bill with the default tax rate.
func (d *Draft) Clear() {
	d.Customer = CustomerInfo{}
	d.Services = []ServiceLineItem{}
	d.Products = []ProductLineItem{}
	d.ServiceForm = ServiceForm{}
	d.ProductForm = ProductForm{Quantity: 1}
	d.TaxPercent = d.defaultTax
	d.Cashback = decimal.Zero
	d.Tip = decimal.Zero
	d.PaymentMethod = ""
	d.AmountPaid = decimal.Zero
	d.recompute()
}

// Snapshot returns a deep copy that can be read without holding the owner's lock.
func (d *Draft) Snapshot() Draft {
	cp := *d
	cp.Services = append([]ServiceLineItem(nil), d.Services...)
	cp.Products = append([]ProductLineItem(nil), d.Products...)
	if cp.Services == nil {
		cp.Services = []ServiceLineItem{}
	}
	if cp.Products == nil {
		cp.Products = []ProductLineItem{}
	}
	return cp
}
