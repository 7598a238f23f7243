package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/config"
	"hairlab-backoffice/models"
)

const (
	staffJSON    = `[{"_id":"st1","firstName":"Ravi","lastName":"Kumar","role":"Barber","availability":true}]`
	servicesJSON = `[{"_id":"sv1","serviceName":"Haircut","price":300,"duration":30}]`
	productsJSON = `[{"_id":"pr1","productName":"Shampoo","price":200,"stock":5}]`
)

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

// newBackend starts a fake backend serving the catalog. Routes in extra are
// added or replace the catalog defaults.
func newBackend(t *testing.T, extra map[string]http.HandlerFunc) *backend.Client {
	t.Helper()
	routes := map[string]http.HandlerFunc{
		"GET /api/staff":    respond(staffJSON),
		"GET /api/services": respond(servicesJSON),
		"GET /api/products": respond(productsJSON),
	}
	for pattern, h := range extra {
		routes[pattern] = h
	}
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(config.BackendConfig{URL: srv.URL, Timeout: 2 * time.Second})
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

type mockReminderRepo struct {
	mock.Mock
}

func (m *mockReminderRepo) ActiveTemplate(ctx context.Context, kind string) (models.ReminderTemplate, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(models.ReminderTemplate), args.Error(1)
}

func (m *mockReminderRepo) LogMessage(ctx context.Context, entry *models.ReminderLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockReminderRepo) SentSince(ctx context.Context, customerID, kind string, since time.Time) (bool, error) {
	args := m.Called(ctx, customerID, kind, since)
	return args.Bool(0), args.Error(1)
}
