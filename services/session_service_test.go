package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

func loginHandler(t *testing.T, backendToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(models.LoginResult{
			Token: backendToken,
			User:  &models.User{ID: "u1", Email: creds.Email, Role: "manager", Password: "hash"},
		})
	}
}

func TestSessionService_LoginResolveLogout(t *testing.T) {
	client := newBackend(t, map[string]http.HandlerFunc{"POST /api/auth/login": loginHandler(t, "opaque")})
	store := NewMemorySessionStore()
	svc := NewSessionService(store, client, "jwt-secret", time.Hour)

	var loggedOut []string
	svc.OnLogout(func(sid string) { loggedOut = append(loggedOut, sid) })

	out, err := svc.Login(context.Background(), models.Credentials{Email: "a@hairlab.in", Password: "secret1"})
	require.NoError(t, err)
	assert.Empty(t, out.User.Password)
	assert.Equal(t, "manager", out.User.Role)

	auth, err := svc.Resolve(context.Background(), out.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "opaque", auth.Token)
	assert.Equal(t, "a@hairlab.in", auth.User.Email)

	require.NoError(t, svc.Logout(context.Background(), auth.SessionID))
	assert.Equal(t, []string{auth.SessionID}, loggedOut)

	_, err = svc.Resolve(context.Background(), out.SessionToken)
	assert.ErrorIs(t, err, ErrSessionEntryNotFound)
}

func TestSessionService_LoginRejected(t *testing.T) {
	client := newBackend(t, map[string]http.HandlerFunc{"POST /api/auth/login": loginHandler(t, "opaque")})
	svc := NewSessionService(NewMemorySessionStore(), client, "jwt-secret", time.Hour)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@hairlab.in", Password: "wrong"})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestSessionService_SessionBoundedByBackendToken(t *testing.T) {
	exp := time.Now().Add(10 * time.Minute)
	backendToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("backend-key"))
	require.NoError(t, err)

	client := newBackend(t, map[string]http.HandlerFunc{"POST /api/auth/login": loginHandler(t, backendToken)})
	svc := NewSessionService(NewMemorySessionStore(), client, "jwt-secret", 24*time.Hour)

	out, err := svc.Login(context.Background(), models.Credentials{Email: "a@hairlab.in", Password: "secret1"})
	require.NoError(t, err)
	assert.WithinDuration(t, exp, out.ExpiresAt, 2*time.Second)
}

func TestSessionService_ResolveRejectsForeignToken(t *testing.T) {
	svc := NewSessionService(NewMemorySessionStore(), newBackend(t, nil), "jwt-secret", time.Hour)
	token, _, err := utils.GenerateSessionToken("other-secret", "sid", "admin", time.Hour)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrInvalidSession)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", SessionKeyToken, "t1", now.Add(time.Minute)))
	require.NoError(t, store.Put(ctx, "s2", SessionKeyToken, "t2", now.Add(time.Hour)))

	v, err := store.Get(ctx, "s1", SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "t1", v)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "s1", SessionKeyToken)
	assert.ErrorIs(t, err, ErrSessionEntryNotFound)

	ids, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids)

	require.NoError(t, store.Put(ctx, "s2", SessionKeyToken, "t3", now.Add(time.Hour)))
	v, err = store.Get(ctx, "s2", SessionKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "t3", v)
}

func TestSessionService_LoginRejectsExpiredBackendToken(t *testing.T) {
	backendToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}).
		SignedString([]byte("backend-key"))
	require.NoError(t, err)

	client := newBackend(t, map[string]http.HandlerFunc{"POST /api/auth/login": loginHandler(t, backendToken)})
	store := NewMemorySessionStore()
	svc := NewSessionService(store, client, "jwt-secret", time.Hour)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "a@hairlab.in", Password: "secret1"})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.Contains(t, appErr.Message, "expired token")
	assert.Empty(t, store.entries)
}

func TestSessionService_PurgeExpiredDiscardsDrafts(t *testing.T) {
	bs := newBillingService(t, nil)
	live := &models.AuthContext{SessionID: "live", Token: "backend-token", User: models.User{Role: "manager"}}
	_, err := bs.Open(context.Background(), live)
	require.NoError(t, err)

	store := NewMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, testAuth.SessionID, SessionKeyToken, "t1", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Put(ctx, testAuth.SessionID, SessionKeyUser, "{}", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Put(ctx, "live", SessionKeyToken, "t2", time.Now().Add(time.Hour)))

	svc := NewSessionService(store, newBackend(t, nil), "jwt-secret", time.Hour)
	var ended []string
	svc.OnLogout(func(sid string) { ended = append(ended, sid) })
	svc.OnLogout(bs.Discard)

	svc.PurgeExpired(ctx)

	assert.Equal(t, []string{testAuth.SessionID}, ended)
	_, err = bs.Get(testAuth.SessionID)
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = bs.Get("live")
	assert.NoError(t, err)
}
