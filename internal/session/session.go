package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

const CookieName = "fabricator_session"

// Session is the signed-in fabricator. ID is the token's jti.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// Manager issues and checks session tokens. Revocation is kept per process.
type Manager struct {
	secret       []byte
	ttl          time.Duration
	passwordHash string
	secure       bool

	// OnInvalidate runs after a session has been revoked.
	OnInvalidate func(sessionID string)

	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewManager(secret []byte, ttl time.Duration, passwordHash string) *Manager {
	return &Manager{
		secret:       secret,
		ttl:          ttl,
		passwordHash: passwordHash,
		revoked:      make(map[string]time.Time),
		now:          time.Now,
	}
}

// SecureCookies marks the session cookie Secure, for deployments behind TLS.
func (m *Manager) SecureCookies(on bool) { m.secure = on }

// ====================== Login ======================

// RequestOTP is the mock "send code" step. No message is actually sent.
func (m *Manager) RequestOTP(email string) error {
	if strings.TrimSpace(email) == "" {
		return appErrors.ErrEmailRequired
	}
	log.Printf("[Session] OTP requested for %s", email)
	return nil
}

// VerifyOTP accepts any six digit code.
func (m *Manager) VerifyOTP(email, otp string) (*Session, string, error) {
	if strings.TrimSpace(email) == "" {
		return nil, "", appErrors.ErrEmailRequired
	}
	if !isSixDigits(otp) {
		return nil, "", appErrors.ErrInvalidOTP
	}
	return m.Issue(email)
}

func (m *Manager) LoginWithPassword(email, password string) (*Session, string, error) {
	if m.passwordHash == "" {
		return nil, "", appErrors.ErrPasswordLoginDisabled
	}
	if strings.TrimSpace(email) == "" {
		return nil, "", appErrors.ErrEmailRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return nil, "", appErrors.ErrInvalidCredentials
	}
	return m.Issue(email)
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ====================== Tokens ======================

func (m *Manager) Issue(email string) (*Session, string, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        s.ID,
		Subject:   s.Email,
		IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign session: %w", err)
	}
	log.Printf("[Session] ✅ session %s started for %s", s.ID, s.Email)
	return s, signed, nil
}

// Parse validates a token and returns its session. Expired, tampered and
// revoked tokens all come back as ErrUnauthorized.
func (m *Manager) Parse(tokenString string) (*Session, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, appErrors.ErrUnauthorized
	}

	m.mu.Lock()
	_, revoked := m.revoked[claims.ID]
	m.mu.Unlock()
	if revoked {
		return nil, appErrors.ErrUnauthorized
	}

	s := &Session{ID: claims.ID, Email: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}

// Invalidate revokes s until its natural expiry.
func (m *Manager) Invalidate(s *Session) {
	if s == nil {
		return
	}
	m.mu.Lock()
	now := m.now()
	for id, exp := range m.revoked {
		if exp.Before(now) {
			delete(m.revoked, id)
		}
	}
	m.revoked[s.ID] = s.ExpiresAt
	m.mu.Unlock()

	log.Printf("[Session] session %s ended", s.ID)
	if m.OnInvalidate != nil {
		m.OnInvalidate(s.ID)
	}
}

// ====================== HTTP ======================

func (m *Manager) SetCookie(w http.ResponseWriter, token string, s *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads and validates the session cookie.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, appErrors.ErrUnauthorized
	}
	return m.Parse(c.Value)
}

// Guard sends anyone without a live session back to the entry route.
func (m *Manager) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.FromRequest(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			err := json.NewEncoder(w).Encode(map[string]string{
				"error":    "unauthorized",
				"redirect": "/",
			})
			if err != nil {
				log.Println("[Session] ⚠️ failed to encode response:", err)
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
