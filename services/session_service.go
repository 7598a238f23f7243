package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

// SessionService signs users in against the backend and keeps their token
// and profile server side, keyed by a session id carried in a signed JWT.
type SessionService struct {
	store  SessionStore
	client *backend.Client
	secret string
	ttl    time.Duration

	// onLogout runs after a session is dropped, e.g. to discard its bill draft.
	onLogout []func(sessionID string)
}

func NewSessionService(store SessionStore, client *backend.Client, secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{store: store, client: client, secret: secret, ttl: ttl}
}

// OnLogout registers fn to run whenever a session ends.
func (s *SessionService) OnLogout(fn func(sessionID string)) {
	s.onLogout = append(s.onLogout, fn)
}

type LoginOutcome struct {
	SessionToken string      `json:"token"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	User         models.User `json:"user"`
	Message      string      `json:"message,omitempty"`
}

// Login forwards credentials to the backend and opens a session on success.
// The session never outlives the backend token it wraps.
func (s *SessionService) Login(ctx context.Context, creds models.Credentials) (*LoginOutcome, error) {
	res, err := s.client.Login(ctx, creds)
	if err != nil {
		status := backend.Status(err, http.StatusBadGateway)
		if status >= 500 {
			status = http.StatusBadGateway
		}
		return nil, &utils.AppError{Code: status, Message: backend.Message(err, "Login failed. Please try again."), Err: err}
	}
	if res.Token == "" || res.User == nil {
		return nil, &utils.AppError{Code: http.StatusBadGateway, Message: "No token received from server"}
	}

	expires := time.Now().Add(s.ttl)
	if exp, ok := utils.TokenExpiry(res.Token); ok && exp.Before(expires) {
		expires = exp
	}
	if !expires.After(time.Now()) {
		return nil, &utils.AppError{Code: http.StatusBadGateway, Message: "Received an expired token from server. Please try again."}
	}

	user := *res.User
	user.Password = ""
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	if err := s.store.Put(ctx, sessionID, SessionKeyToken, res.Token, expires); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, sessionID, SessionKeyUser, string(userJSON), expires); err != nil {
		return nil, err
	}

	token, _, err := utils.GenerateSessionToken(s.secret, sessionID, user.Role, time.Until(expires))
	if err != nil {
		return nil, err
	}

	log.Info().Str("session", sessionID).Str("role", user.Role).Msg("User logged in")
	return &LoginOutcome{SessionToken: token, ExpiresAt: expires, User: user, Message: res.Message}, nil
}

// Resolve implements utils.SessionResolver.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.AuthContext, error) {
	claims, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	backendToken, err := s.store.Get(ctx, claims.SessionID, SessionKeyToken)
	if err != nil {
		return nil, err
	}
	raw, err := s.store.Get(ctx, claims.SessionID, SessionKeyUser)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, errors.Join(utils.ErrInvalidSession, err)
	}
	return &models.AuthContext{SessionID: claims.SessionID, Token: backendToken, User: user}, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	for _, key := range []string{SessionKeyToken, SessionKeyUser} {
		if err := s.store.Delete(ctx, sessionID, key); err != nil {
			return err
		}
	}
	for _, fn := range s.onLogout {
		fn(sessionID)
	}
	log.Info().Str("session", sessionID).Msg("User logged out")
	return nil
}

func (s *SessionService) ForgotPassword(ctx context.Context, email string) (string, error) {
	msg, err := s.client.ForgotPassword(ctx, email)
	if err != nil {
		return "", &utils.AppError{
			Code:    backend.Status(err, http.StatusBadGateway),
			Message: backend.Message(err, "Failed to process request"),
			Err:     err,
		}
	}
	if msg == "" {
		msg = "Password reset link has been sent to your email address."
	}
	return msg, nil
}

// PurgeExpired drops expired session entries and ends their sessions, so
// the OnLogout hooks run for sessions that were never logged out.
func (s *SessionService) PurgeExpired(ctx context.Context) {
	ids, err := s.store.PurgeExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to purge expired sessions")
		return
	}
	for _, id := range ids {
		for _, fn := range s.onLogout {
			fn(id)
		}
	}
	if len(ids) > 0 {
		log.Info().Int("sessions", len(ids)).Msg("Purged expired sessions")
	}
}
