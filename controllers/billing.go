package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hairlab-backoffice/billing"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

// BillingController drives the billing screen: one draft per session, built
// up line by line and submitted once complete.
type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(b *services.BillingService) *BillingController {
	return &BillingController{billing: b}
}

type AddServiceInput struct {
	ServiceID string    `json:"serviceId"`
	StaffID   string    `json:"staffId"`
	Discount  FormValue `json:"discount"`
}

type AddProductInput struct {
	ProductID       string    `json:"productId"`
	Quantity        FormValue `json:"quantity"`
	DiscountPercent FormValue `json:"discountPercentage"`
}

type ChargesInput struct {
	TaxPercent *FormValue `json:"gstPercentage"`
	Cashback   *FormValue `json:"cashback"`
	Tip        *FormValue `json:"tip"`
}

type PaymentInput struct {
	PaymentMethod string    `json:"paymentMethod"`
	AmountPaid    FormValue `json:"amountPaid"`
}

type LookupInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func optionalAmount(v *FormValue) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := billing.ParseAmount(string(*v))
	return &d
}

func (bc *BillingController) respondDraft(c *gin.Context, draft billing.Draft, err error) {
	if err != nil {
		respondError(c, err, "Failed to update the bill")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Open loads the catalog and returns the draft for this session.
func (bc *BillingController) Open(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	view, err := bc.billing.Open(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to load billing data. Please try again.")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (bc *BillingController) Get(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	draft, err := bc.billing.Get(auth.SessionID)
	bc.respondDraft(c, draft, err)
}

func (bc *BillingController) AddService(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input AddServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	draft, err := bc.billing.AddService(auth.SessionID, input.ServiceID, input.StaffID, billing.ParseAmount(string(input.Discount)))
	if err != nil {
		respondErrorWithDraft(c, err, draft)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (bc *BillingController) AddProduct(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	draft, err := bc.billing.AddProduct(auth.SessionID, input.ProductID,
		billing.ParseQuantity(string(input.Quantity)),
		billing.ParseAmount(string(input.DiscountPercent)))
	if err != nil {
		respondErrorWithDraft(c, err, draft)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveLine handles DELETE /lines/:kind/:index. A stale index is ignored.
func (bc *BillingController) RemoveLine(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	kind := billing.LineKind(c.Param("kind"))
	if kind != billing.ServiceLine && kind != billing.ProductLine {
		utils.RespondWithError(c, http.StatusBadRequest, "Line kind must be service or product")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid line index")
		return
	}

	draft, err := bc.billing.RemoveLine(auth.SessionID, kind, index)
	bc.respondDraft(c, draft, err)
}

func (bc *BillingController) SetCharges(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input ChargesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	draft, err := bc.billing.SetCharges(auth.SessionID, billing.Charges{
		TaxPercent: optionalAmount(input.TaxPercent),
		Cashback:   optionalAmount(input.Cashback),
		Tip:        optionalAmount(input.Tip),
	})
	bc.respondDraft(c, draft, err)
}

func (bc *BillingController) SetCustomer(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input billing.CustomerInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	draft, err := bc.billing.SetCustomer(auth.SessionID, input)
	bc.respondDraft(c, draft, err)
}

// LookupCustomer fills the customer fields from a known phone number.
func (bc *BillingController) LookupCustomer(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input LookupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	draft, found, err := bc.billing.LookupCustomer(c.Request.Context(), auth, input.PhoneNumber)
	if err != nil {
		respondError(c, err, "Failed to update the bill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "draft": draft})
}

func (bc *BillingController) SetPayment(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	draft, err := bc.billing.SetPayment(auth.SessionID, input.PaymentMethod, billing.ParseAmount(string(input.AmountPaid)))
	bc.respondDraft(c, draft, err)
}

func (bc *BillingController) Clear(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	draft, err := bc.billing.Clear(auth.SessionID)
	bc.respondDraft(c, draft, err)
}

// Submit saves the bill. On success the client is sent to the reports screen.
func (bc *BillingController) Submit(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	res, err := bc.billing.Submit(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, services.SubmitFailedMessage)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// respondErrorWithDraft reports a rejected line together with the draft so
// the form can show what was typed.
func respondErrorWithDraft(c *gin.Context, err error, draft billing.Draft) {
	var verr *billing.ValidationError
	if !errors.As(err, &verr) {
		respondError(c, err, "Failed to update the bill")
		return
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"error":  verr.Message,
		"errors": verr.Fields,
		"draft":  draft,
	})
}

func (bc *BillingController) Register(g *gin.RouterGroup) {
	g.POST("", bc.Open)
	g.GET("", bc.Get)
	g.DELETE("", bc.Clear)
	g.POST("/services", bc.AddService)
	g.POST("/products", bc.AddProduct)
	g.DELETE("/lines/:kind/:index", bc.RemoveLine)
	g.PUT("/charges", bc.SetCharges)
	g.PUT("/customer", bc.SetCustomer)
	g.POST("/customer/lookup", bc.LookupCustomer)
	g.PUT("/payment", bc.SetPayment)
	g.POST("/submit", bc.Submit)
}
