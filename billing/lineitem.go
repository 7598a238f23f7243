package billing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"hairlab-backoffice/models"
)

type ServiceLineItem struct {
	ServiceID      string          `json:"serviceId"`
	Name           string          `json:"name"`
	StaffID        string          `json:"staffId"`
	StaffName      string          `json:"staffName"`
	UnitPrice      decimal.Decimal `json:"price"`
	DiscountAmount decimal.Decimal `json:"discount"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`
}

type ProductLineItem struct {
	ProductID       string          `json:"productId"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discountPercentage"`
	DiscountAmount  decimal.Decimal `json:"discount"` // per unit
	FinalPrice      decimal.Decimal `json:"finalPrice"`
}

// NewServiceLine prices a service performed by a staff member. The discount is
// an absolute amount and may not exceed the service price.
func NewServiceLine(svc models.ServiceCatalogEntry, staff models.StaffMember, discount decimal.Decimal) (ServiceLineItem, error) {
	price := Round2(decimal.NewFromFloat(svc.Price))
	discount = Round2(discount)

	if discount.IsNegative() {
		return ServiceLineItem{}, invalidField("serviceDiscount", "Discount cannot be negative")
	}
	if discount.GreaterThan(price) {
		return ServiceLineItem{}, invalidField("serviceDiscount", "Discount cannot exceed the service price")
	}

	return ServiceLineItem{
		ServiceID:      svc.ID,
		Name:           svc.Name,
		StaffID:        staff.ID,
		StaffName:      staff.FullName(),
		UnitPrice:      price,
		DiscountAmount: discount,
		FinalPrice:     nonNegative(price.Sub(discount)),
	}, nil
}

// NewProductLine prices quantity units of a product with a percentage discount.
// Quantities below one count as one and negative percentages as zero.
func NewProductLine(product models.ProductCatalogEntry, quantity int, discountPercent decimal.Decimal) (ProductLineItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	if discountPercent.GreaterThan(hundred) {
		return ProductLineItem{}, invalidField("productDiscount", "Discount percentage cannot exceed 100")
	}
	discountPercent = nonNegative(discountPercent)

	price := Round2(decimal.NewFromFloat(product.Price))
	unitDiscount := Round2(Percent(price, discountPercent))
	final := Round2(nonNegative(price.Sub(unitDiscount)).Mul(decimal.NewFromInt(int64(quantity))))

	return ProductLineItem{
		ProductID:       product.ID,
		Name:            product.Name,
		Quantity:        quantity,
		UnitPrice:       price,
		DiscountPercent: discountPercent,
		DiscountAmount:  unitDiscount,
		FinalPrice:      final,
	}, nil
}

// ParseQuantity reads a quantity form value; anything unparsable or below one is 1.
func ParseQuantity(s string) int {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || q < 1 {
		return 1
	}
	return q
}

// ParseAmount reads a money or percentage form value; blanks and garbage are zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
