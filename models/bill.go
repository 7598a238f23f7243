package models

// BillRecord is the body of POST /api/billing.
type BillRecord struct {
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Email         string            `json:"email"`
	PhoneNumber   string            `json:"phoneNumber"`
	Services      []BillServiceLine `json:"services"`
	Products      []BillProductLine `json:"products"`
	Subtotal      float64           `json:"subtotal"`
	GST           float64           `json:"gst"`
	GSTPercentage float64           `json:"gstPercentage"`
	Tip           float64           `json:"tip"`
	GrandTotal    float64           `json:"grandTotal"`
	Cashback      float64           `json:"cashback"`
	FinalTotal    float64           `json:"finalTotal"`
	PaymentMethod string            `json:"paymentMethod"`
	AmountPaid    float64           `json:"amountPaid"`
}

type BillServiceLine struct {
	ServiceID  string  `json:"serviceId"`
	Name       string  `json:"name"`
	StaffID    string  `json:"staffId"`
	StaffName  string  `json:"staffName"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"finalPrice"`
}

type BillProductLine struct {
	ProductID          string  `json:"productId"`
	Name               string  `json:"name"`
	Quantity           int     `json:"quantity"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Discount           float64 `json:"discount"`
	FinalPrice         float64 `json:"finalPrice"`
}

// BillResult is what the backend answers on a successful bill creation.
type BillResult struct {
	ID      string `json:"_id,omitempty"`
	Message string `json:"message,omitempty"`
}
