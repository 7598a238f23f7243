package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/config"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

const (
	adminToken   = "admin-session"
	managerToken = "manager-session"
)

var sessionsByToken = map[string]*models.AuthContext{
	adminToken:   {SessionID: "sa", Token: "backend-admin", User: models.User{ID: "u1", Role: models.RoleAdmin}},
	managerToken: {SessionID: "sm", Token: "backend-manager", User: models.User{ID: "u2", Role: "manager"}},
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, token string) (*models.AuthContext, error) {
	if auth, ok := sessionsByToken[token]; ok {
		return auth, nil
	}
	return nil, utils.ErrInvalidSession
}

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

// newBackend starts a fake backend serving routes keyed by ServeMux pattern.
func newBackend(t *testing.T, routes map[string]http.HandlerFunc) *backend.Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(config.BackendConfig{URL: srv.URL, Timeout: 2 * time.Second})
}

// newRouter mounts register under an authenticated /api group.
func newRouter(register func(api *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", utils.AuthMiddleware(stubResolver{}))
	register(api)
	return r
}

func do(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
