package services

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/billing"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

const (
	SubmitFailedMessage = "Failed to save the bill. Please try again."
	ReportsRedirect     = "/reports"
)

var (
	ErrNoDraft = &utils.AppError{
		Code:    http.StatusNotFound,
		Message: "No bill in progress. Open the billing screen first.",
	}
	ErrSubmitInProgress = &utils.AppError{
		Code:    http.StatusConflict,
		Message: "This bill is already being submitted.",
	}
)

type draftSlot struct {
	mu         sync.Mutex
	draft      *billing.Draft
	submitting bool
}

// BillingService keeps one bill draft per session and submits it to the backend.
type BillingService struct {
	client         *backend.Client
	catalog        *CatalogService
	notifier       *NotificationService
	defaultTax     decimal.Decimal
	notifyReceipts bool

	mu     sync.Mutex
	drafts map[string]*draftSlot
}

func NewBillingService(client *backend.Client, catalog *CatalogService, defaultTaxPercent float64) *BillingService {
	return &BillingService{
		client:     client,
		catalog:    catalog,
		defaultTax: decimal.NewFromFloat(defaultTaxPercent),
		drafts:     make(map[string]*draftSlot),
	}
}

// EnableReceipts sends a receipt message after every saved bill.
func (s *BillingService) EnableReceipts(notifier *NotificationService) {
	s.notifier = notifier
	s.notifyReceipts = notifier != nil
}

// DraftView is a draft together with the reference data the screen needs.
type DraftView struct {
	Draft   billing.Draft    `json:"draft"`
	Catalog *billing.Catalog `json:"catalog"`
}

// Open loads the catalog and returns the session's draft, creating an
// empty one if needed. An existing draft keeps its lines.
func (s *BillingService) Open(ctx context.Context, auth *models.AuthContext) (*DraftView, error) {
	catalog, err := s.catalog.Load(ctx, auth.Token)
	if err != nil {
		return nil, &utils.AppError{
			Code:    backend.Status(err, http.StatusBadGateway),
			Message: backend.Message(err, "Failed to load billing data. Please try again."),
			Err:     err,
		}
	}

	s.mu.Lock()
	slot, ok := s.drafts[auth.SessionID]
	if !ok {
		slot = &draftSlot{draft: billing.NewDraft(catalog, s.defaultTax)}
		s.drafts[auth.SessionID] = slot
	}
	s.mu.Unlock()

	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.draft.SetCatalog(catalog)
	return &DraftView{Draft: slot.draft.Snapshot(), Catalog: catalog}, nil
}

func (s *BillingService) slot(sessionID string) (*draftSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	return slot, nil
}

// update runs fn on the session's draft under its lock. The draft is
// returned even when fn fails so the caller can show the echoed form.
func (s *BillingService) update(sessionID string, fn func(d *billing.Draft) error) (billing.Draft, error) {
	slot, err := s.slot(sessionID)
	if err != nil {
		return billing.Draft{}, err
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.submitting {
		return slot.draft.Snapshot(), ErrSubmitInProgress
	}
	err = fn(slot.draft)
	return slot.draft.Snapshot(), err
}

func (s *BillingService) Get(sessionID string) (billing.Draft, error) {
	return s.update(sessionID, func(*billing.Draft) error { return nil })
}

func (s *BillingService) AddService(sessionID, serviceID, staffID string, discount decimal.Decimal) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		_, err := d.AddServiceLine(serviceID, staffID, discount)
		return err
	})
}

func (s *BillingService) AddProduct(sessionID, productID string, quantity int, discountPercent decimal.Decimal) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		_, err := d.AddProductLine(productID, quantity, discountPercent)
		return err
	})
}

// RemoveLine drops a line. An index that no longer exists is ignored.
func (s *BillingService) RemoveLine(sessionID string, kind billing.LineKind, index int) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		d.RemoveLine(kind, index)
		return nil
	})
}

func (s *BillingService) SetCharges(sessionID string, ch billing.Charges) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		d.SetCharges(ch)
		return nil
	})
}

func (s *BillingService) SetCustomer(sessionID string, info billing.CustomerInfo) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		d.SetCustomer(info)
		return nil
	})
}

func (s *BillingService) SetPayment(sessionID, method string, amountPaid decimal.Decimal) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		d.SetPayment(method, amountPaid)
		return nil
	})
}

// LookupCustomer records the typed phone number and, for a complete number,
// fills the customer fields from the backend. A miss or a failed lookup
// leaves the fields as typed.
func (s *BillingService) LookupCustomer(ctx context.Context, auth *models.AuthContext, phone string) (billing.Draft, bool, error) {
	draft, err := s.update(auth.SessionID, func(d *billing.Draft) error {
		info := d.Customer
		info.PhoneNumber = phone
		d.SetCustomer(info)
		return nil
	})
	if err != nil || !utils.ValidatePhone(phone) || len(phone) != 10 {
		return draft, false, err
	}

	customer, err := s.client.WithToken(auth.Token).FindCustomerByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			log.Warn().Err(err).Str("phone", phone).Msg("Customer lookup failed")
		}
		return draft, false, nil
	}

	found := false
	draft, err = s.update(auth.SessionID, func(d *billing.Draft) error {
		// the phone may have been retyped while the lookup was in flight
		if d.Customer.PhoneNumber != phone {
			return nil
		}
		d.FillCustomer(customer)
		found = true
		return nil
	})
	return draft, found, err
}

func (s *BillingService) Clear(sessionID string) (billing.Draft, error) {
	return s.update(sessionID, func(d *billing.Draft) error {
		d.Clear()
		return nil
	})
}

// Discard forgets the session's draft.
func (s *BillingService) Discard(sessionID string) {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
}

type SubmitResult struct {
	ID       string `json:"id,omitempty"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Submit validates and sends the draft. Validation failures never reach the
// network. On any failure the draft is kept for a retry; on success it is
// cleared. Only one submission per draft may be in flight.
func (s *BillingService) Submit(ctx context.Context, auth *models.AuthContext) (*SubmitResult, error) {
	slot, err := s.slot(auth.SessionID)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	if slot.submitting {
		slot.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if err := billing.ValidateSubmission(slot.draft); err != nil {
		slot.mu.Unlock()
		return nil, err
	}
	record := billing.ToRecord(slot.draft)
	slot.submitting = true
	slot.mu.Unlock()

	res, err := s.client.WithToken(auth.Token).CreateBill(ctx, record)

	slot.mu.Lock()
	slot.submitting = false
	if err != nil {
		slot.mu.Unlock()
		status := backend.Status(err, http.StatusBadGateway)
		if status < 400 {
			status = http.StatusBadGateway
		}
		return nil, &utils.AppError{Code: status, Message: backend.Message(err, SubmitFailedMessage), Err: err}
	}
	slot.draft.Clear()
	slot.mu.Unlock()

	log.Info().
		Str("bill", res.ID).
		Float64("total", record.FinalTotal).
		Str("payment", record.PaymentMethod).
		Msg("Bill saved")

	if s.notifyReceipts {
		s.sendReceipt(ctx, record)
	}

	msg := res.Message
	if msg == "" {
		msg = "Bill saved successfully"
	}
	return &SubmitResult{ID: res.ID, Message: msg, Redirect: ReportsRedirect}, nil
}

func (s *BillingService) sendReceipt(ctx context.Context, rec models.BillRecord) {
	err := s.notifier.Notify(ctx, models.ReminderReceipt, "", rec.PhoneNumber, map[string]string{
		"CustomerName":  rec.FirstName + " " + rec.LastName,
		"Amount":        decimal.NewFromFloat(rec.FinalTotal).StringFixed(2),
		"PaymentMethod": rec.PaymentMethod,
	})
	if err != nil {
		log.Warn().Err(err).Str("phone", rec.PhoneNumber).Msg("Bill saved but receipt was not sent")
	}
}
