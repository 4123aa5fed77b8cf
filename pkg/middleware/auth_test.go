package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	session *entity.Session
	calls   int
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return nil
}

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s.calls++
	if s.session != nil && s.session.Token.String() == token {
		return s.session, nil
	}
	return nil, nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error {
	return nil
}

func authRequest(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()
	repo := &stubSessionRepo{session: &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     userID,
		Token:      token,
		ExpiresAt:  time.Now().Add(time.Hour),
	}}

	var gotUserID uuid.UUID
	handler := AuthSession(repo, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "Bearer " + uuid.New().String(), http.StatusUnauthorized},
		{"valid session", "Bearer " + token.String(), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authRequest(tt.header))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	assert.Equal(t, userID, gotUserID)
}

func TestAuthSessionMalformedToken(t *testing.T) {
	repo := &stubSessionRepo{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with malformed token")
	})
	handler := AuthSession(repo, zap.NewNop())(next)

	// A bearer string that is not a UUID is an invalid session, not a
	// server error, and never reaches the session store.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authRequest("Bearer not-a-uuid"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, repo.calls)
}
