package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/billing"
	"hairlab-backoffice/models"
	"hairlab-backoffice/services"
)

func billingRouter(t *testing.T, billHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	routes := map[string]http.HandlerFunc{
		"GET /api/staff":    respond(`[{"_id":"st1","firstName":"Ravi","lastName":"Kumar","role":"Barber","availability":true}]`),
		"GET /api/services": respond(`[{"_id":"sv1","serviceName":"Haircut","price":300,"duration":30}]`),
		"GET /api/products": respond(`[{"_id":"pr1","productName":"Shampoo","price":200,"stock":5}]`),
	}
	if billHandler != nil {
		routes["POST /api/billing"] = billHandler
	}
	client := newBackend(t, routes)
	svc := services.NewBillingService(client, services.NewCatalogService(client), 18)
	return newRouter(func(api *gin.RouterGroup) {
		NewBillingController(svc).Register(api.Group("/billing/draft"))
	})
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestBillingController_DraftRequiresOpen(t *testing.T) {
	r := billingRouter(t, nil)

	w := do(r, http.MethodGet, "/api/billing/draft", managerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillingController_BuildAndSubmit(t *testing.T) {
	var saved models.BillRecord
	r := billingRouter(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer backend-manager", req.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(req.Body).Decode(&saved))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"bill1","message":"Bill created"}`))
	})

	w := do(r, http.MethodPost, "/api/billing/draft", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Draft   billing.Draft   `json:"draft"`
		Catalog billing.Catalog `json:"catalog"`
	}
	decode(t, w, &view)
	assert.Len(t, view.Catalog.Services, 1)

	w = do(r, http.MethodPost, "/api/billing/draft/services", managerToken,
		map[string]interface{}{"serviceId": "sv1", "staffId": "st1", "discount": "50"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var draft billing.Draft
	decode(t, w, &draft)
	require.Len(t, draft.Services, 1)
	assertMoney(t, "250", draft.Totals.Subtotal)
	assertMoney(t, "45", draft.Totals.TaxAmount)
	assertMoney(t, "295", draft.Totals.FinalTotal)

	w = do(r, http.MethodPut, "/api/billing/draft/customer", managerToken, map[string]string{
		"firstName": "Meera", "lastName": "Iyer", "email": "meera@example.com", "phoneNumber": "9876543210",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/billing/draft/payment", managerToken,
		map[string]interface{}{"paymentMethod": "upi", "amountPaid": 295})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/billing/draft/submit", managerToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res services.SubmitResult
	decode(t, w, &res)
	assert.Equal(t, "bill1", res.ID)
	assert.Equal(t, "/reports", res.Redirect)
	assert.Equal(t, 295.0, saved.FinalTotal)
	assert.Equal(t, "upi", saved.PaymentMethod)

	w = do(r, http.MethodGet, "/api/billing/draft", managerToken, nil)
	decode(t, w, &draft)
	assert.Empty(t, draft.Services)
}

func TestBillingController_AddServiceRejectsUnknownIDs(t *testing.T) {
	r := billingRouter(t, nil)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/billing/draft", managerToken, nil).Code)

	w := do(r, http.MethodPost, "/api/billing/draft/services", managerToken,
		map[string]string{"serviceId": "sv1", "staffId": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Error string        `json:"error"`
		Draft billing.Draft `json:"draft"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Please select both service and staff", body.Error)
	assert.Empty(t, body.Draft.Services)
}

func TestBillingController_SubmitValidationNeverCallsBackend(t *testing.T) {
	called := false
	r := billingRouter(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/billing/draft", managerToken, nil).Code)

	w := do(r, http.MethodPost, "/api/billing/draft/submit", managerToken, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, called)
}

func TestBillingController_SubmitFailureKeepsDraft(t *testing.T) {
	r := billingRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	})
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/billing/draft", managerToken, nil).Code)
	do(r, http.MethodPost, "/api/billing/draft/services", managerToken,
		map[string]string{"serviceId": "sv1", "staffId": "st1", "discount": "0"})
	do(r, http.MethodPut, "/api/billing/draft/customer", managerToken, map[string]string{
		"firstName": "Meera", "lastName": "Iyer", "email": "meera@example.com", "phoneNumber": "9876543210",
	})
	do(r, http.MethodPut, "/api/billing/draft/payment", managerToken,
		map[string]interface{}{"paymentMethod": "cash", "amountPaid": "400"})

	w := do(r, http.MethodPost, "/api/billing/draft/submit", managerToken, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, services.SubmitFailedMessage, body["error"])

	w = do(r, http.MethodGet, "/api/billing/draft", managerToken, nil)
	var draft billing.Draft
	decode(t, w, &draft)
	assert.Len(t, draft.Services, 1)
}

func TestBillingController_RemoveLineValidatesPath(t *testing.T) {
	r := billingRouter(t, nil)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/billing/draft", managerToken, nil).Code)

	assert.Equal(t, http.StatusBadRequest,
		do(r, http.MethodDelete, "/api/billing/draft/lines/bundle/0", managerToken, nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(r, http.MethodDelete, "/api/billing/draft/lines/service/x", managerToken, nil).Code)
	assert.Equal(t, http.StatusOK,
		do(r, http.MethodDelete, "/api/billing/draft/lines/service/3", managerToken, nil).Code)
}
