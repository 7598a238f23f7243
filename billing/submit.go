package billing

import (
	"regexp"
	"strings"

	"hairlab-backoffice/models"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// PaymentMethods accepted at the counter.
var PaymentMethods = []string{"cash", "upi", "wallet", "card"}

func validPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// ValidateSubmission checks a draft is complete enough to send. All customer
// identity fields are mandatory.
func ValidateSubmission(d *Draft) error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}

	c := d.Customer
	phone := strings.TrimSpace(c.PhoneNumber)
	email := strings.TrimSpace(c.Email)
	if strings.TrimSpace(c.FirstName) == "" {
		add("firstName", "First name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		add("lastName", "Last name is required")
	}
	if phone == "" {
		add("phoneNumber", "Phone number is required")
	} else if !phonePattern.MatchString(phone) {
		add("phoneNumber", "Phone number must be 10 digits")
	}
	if email == "" {
		add("email", "Email is required")
	} else if !emailPattern.MatchString(email) {
		add("email", "Invalid email format")
	}
	if d.LineCount() == 0 {
		add("items", "Add at least one service or product")
	}
	if d.PaymentMethod == "" {
		add("paymentMethod", "Payment method is required")
	} else if !validPaymentMethod(d.PaymentMethod) {
		add("paymentMethod", "Unknown payment method")
	}
	// A bill fully covered by cashback may be settled with zero.
	if d.AmountPaid.IsNegative() || (d.AmountPaid.IsZero() && d.Totals.FinalTotal.IsPositive()) {
		add("amountPaid", "Amount paid is required")
	}

	if len(fields) > 0 {
		return &ValidationError{
			Message: "Please fill in all required details and add at least one service or product.",
			Fields:  fields,
		}
	}

	if d.AmountPaid.LessThan(d.Totals.FinalTotal) {
		return invalidField("amountPaid", "The amount paid is less than the final total amount.")
	}
	return nil
}

// ToRecord serialises the draft into the backend bill payload.
func ToRecord(d *Draft) models.BillRecord {
	services := make([]models.BillServiceLine, 0, len(d.Services))
	for _, s := range d.Services {
		services = append(services, models.BillServiceLine{
			ServiceID:  s.ServiceID,
			Name:       s.Name,
			StaffID:    s.StaffID,
			StaffName:  s.StaffName,
			Price:      s.UnitPrice.InexactFloat64(),
			Discount:   s.DiscountAmount.InexactFloat64(),
			FinalPrice: s.FinalPrice.InexactFloat64(),
		})
	}

	products := make([]models.BillProductLine, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, models.BillProductLine{
			ProductID:          p.ProductID,
			Name:               p.Name,
			Quantity:           p.Quantity,
			Price:              p.UnitPrice.InexactFloat64(),
			DiscountPercentage: p.DiscountPercent.InexactFloat64(),
			Discount:           p.DiscountAmount.InexactFloat64(),
			FinalPrice:         p.FinalPrice.InexactFloat64(),
		})
	}

	t := d.Totals
	return models.BillRecord{
		FirstName:     strings.TrimSpace(d.Customer.FirstName),
		LastName:      strings.TrimSpace(d.Customer.LastName),
		Email:         strings.TrimSpace(d.Customer.Email),
		PhoneNumber:   strings.TrimSpace(d.Customer.PhoneNumber),
		Services:      services,
		Products:      products,
		Subtotal:      t.Subtotal.InexactFloat64(),
		GST:           t.TaxAmount.InexactFloat64(),
		GSTPercentage: t.TaxPercent.InexactFloat64(),
		Tip:           t.Tip.InexactFloat64(),
		GrandTotal:    t.GrandTotal.InexactFloat64(),
		Cashback:      t.Cashback.InexactFloat64(),
		FinalTotal:    t.FinalTotal.InexactFloat64(),
		PaymentMethod: d.PaymentMethod,
		AmountPaid:    Round2(d.AmountPaid).InexactFloat64(),
	}
}
