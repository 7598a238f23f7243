package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

const customersJSON = `[
	{"_id":"c1","firstName":"Asha","lastName":"Rao","phoneNumber":"9000000001"},
	{"_id":"c2","firstName":"Vikram","lastName":"Shah","phoneNumber":"9000000002"},
	{"_id":"c3","firstName":"Anil","lastName":"Rao","phoneNumber":"9000000003"},
	{"_id":"c4","firstName":"Zoya","lastName":"Khan","phoneNumber":"9000000004"},
	{"_id":"c5","firstName":"Bela","lastName":"Das","phoneNumber":"9000000005"},
	{"_id":"c6","firstName":"Chetan","lastName":"Rao","phoneNumber":"9000000006"}
]`

func customerRouter(t *testing.T, routes map[string]http.HandlerFunc) *gin.Engine {
	t.Helper()
	client := newBackend(t, routes)
	return newRouter(func(api *gin.RouterGroup) {
		NewCustomerController(client).Register(api.Group("/customers"))
		NewStaffController(client).Register(api.Group("/staff", utils.DenyRoles(models.RoleAdmin)))
	})
}

func TestCustomerList_PagesFiveByDefault(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{"GET /api/customers": respond(customersJSON)})

	w := do(r, http.MethodGet, "/api/customers", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page utils.PaginatedResult[models.Customer]
	decode(t, w, &page)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 6, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestCustomerList_SearchAndSort(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{"GET /api/customers": respond(customersJSON)})

	w := do(r, http.MethodGet, "/api/customers?search=rao&sortBy=firstName&sortOrder=desc", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page utils.PaginatedResult[models.Customer]
	decode(t, w, &page)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Chetan", page.Items[0].FirstName)
	assert.Equal(t, "Asha", page.Items[1].FirstName)
	assert.Equal(t, "Anil", page.Items[2].FirstName)
}

func TestCustomerList_HugePageIsEmpty(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{"GET /api/customers": respond(customersJSON)})

	w := do(r, http.MethodGet, "/api/customers?page=9223372036854775807", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page utils.PaginatedResult[models.Customer]
	decode(t, w, &page)
	assert.Empty(t, page.Items)
	assert.Equal(t, 6, page.Pagination.Total)
}

func TestCustomerList_UnknownSortField(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{"GET /api/customers": respond(customersJSON)})

	w := do(r, http.MethodGet, "/api/customers?sortBy=shoeSize", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerList_RequiresSession(t *testing.T) {
	r := customerRouter(t, nil)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/customers", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/customers", "stale", nil).Code)
}

func TestCustomerCreate_Validation(t *testing.T) {
	r := customerRouter(t, nil)

	w := do(r, http.MethodPost, "/api/customers", adminToken, map[string]string{
		"firstName": "", "lastName": "Rao", "phoneNumber": "12345", "email": "bad",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Errors []utils.FieldError `json:"errors"`
	}
	decode(t, w, &body)
	fields := map[string]string{}
	for _, f := range body.Errors {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "First name is required", fields["firstName"])
	assert.Equal(t, "Phone number must be 10 digits", fields["phoneNumber"])
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestCustomerCreate_SendsCleanedPhone(t *testing.T) {
	var sent models.Customer
	r := customerRouter(t, map[string]http.HandlerFunc{
		"POST /api/customers": func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&sent))
			sent.ID = "c9"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(sent)
		},
	})

	w := do(r, http.MethodPost, "/api/customers", adminToken, map[string]string{
		"firstName": " Asha ", "lastName": "Rao", "phoneNumber": "900-000-0001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "9000000001", sent.PhoneNumber)
	assert.Equal(t, "Asha", sent.FirstName)
}

func TestCustomerGet_NotFoundPassesThrough(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{
		"GET /api/customers/{id}": func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Customer not found"}`))
		},
	})

	w := do(r, http.MethodGet, "/api/customers/nope", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Customer not found")
}

func TestStaff_DeniedToAdmins(t *testing.T) {
	r := customerRouter(t, map[string]http.HandlerFunc{"GET /api/staff": respond(`[]`)})

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/staff", adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/staff", managerToken, nil).Code)
}

func TestStaff_SetAvailability(t *testing.T) {
	var got struct {
		Availability bool `json:"availability"`
	}
	r := customerRouter(t, map[string]http.HandlerFunc{
		"PATCH /api/staff/{id}/availability": func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "st1", req.PathValue("id"))
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			_, _ = w.Write([]byte(`{}`))
		},
	})

	w := do(r, http.MethodPatch, "/api/staff/st1/availability", managerToken, map[string]bool{"availability": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, got.Availability)

	w = do(r, http.MethodPatch, "/api/staff/st1/availability", managerToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaff_Roles(t *testing.T) {
	r := customerRouter(t, nil)

	w := do(r, http.MethodGet, "/api/staff/roles", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roles []string
	decode(t, w, &roles)
	assert.Equal(t, models.StaffRoles, roles)
}
