package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/identity"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/metrics"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/middleware"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

// stubVerifier resolves bearer token strings to canned decoded tokens.
type stubVerifier struct {
	tokens map[string]*auth.Token
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	token, ok := s.tokens[idToken]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return token, nil
}

// memProvider is an in-memory identity.Provider.
type memProvider struct {
	accounts map[string]*models.Account
	nextID   int
}

func (p *memProvider) ListAccounts(_ context.Context, max int) ([]models.Account, error) {
	out := make([]models.Account, 0, len(p.accounts))
	for _, a := range p.accounts {
		out = append(out, *a)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, nil
}

func (p *memProvider) GetAccount(_ context.Context, id string) (*models.Account, error) {
	a, ok := p.accounts[id]
	if !ok {
		return nil, identity.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (p *memProvider) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range p.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, identity.ErrNotFound
}

func (p *memProvider) CreateAccount(_ context.Context, email, _, displayName string) (string, error) {
	for _, a := range p.accounts {
		if a.Email == email {
			return "", identity.ErrEmailExists
		}
	}
	p.nextID++
	id := "new-" + string(rune('0'+p.nextID))
	p.accounts[id] = &models.Account{ID: id, Email: email, DisplayName: displayName}
	return id, nil
}

func (p *memProvider) SetClaims(_ context.Context, id string, claims roles.Claims) error {
	a, ok := p.accounts[id]
	if !ok {
		return identity.ErrNotFound
	}
	a.Claims = claims
	a.Role = roles.FromClaims(claims).String()
	return nil
}

func (p *memProvider) DeleteAccount(_ context.Context, id string) error {
	if _, ok := p.accounts[id]; !ok {
		return identity.ErrNotFound
	}
	delete(p.accounts, id)
	return nil
}

// fakeData serves canned feedback and issue collections.
type fakeData struct {
	feedback []models.FeedbackEntry
	issues   []models.IssueReport
	err      error
}

func (f *fakeData) Feedback(context.Context) ([]models.FeedbackEntry, error) {
	return f.feedback, f.err
}

func (f *fakeData) Issues(context.Context) ([]models.IssueReport, error) {
	return f.issues, f.err
}

// fakeHistory serves canned conversion history.
type fakeHistory struct {
	entries []models.ConversionHistoryEntry
	err     error
}

func (f *fakeHistory) ForAccount(_ context.Context, accountID string) ([]models.ConversionHistoryEntry, error) {
	if accountID == "" {
		return nil, core.ErrInvalidInput
	}
	return f.entries, f.err
}

type testEnv struct {
	router   *gin.Engine
	provider *memProvider
	data     *fakeData
	history  *fakeHistory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := &memProvider{accounts: map[string]*models.Account{
		"u1": {ID: "u1", Email: "user@example.com", Role: "user"},
		"a1": {ID: "a1", Email: "admin@example.com", Claims: roles.Claims{Admin: true}, Role: "admin"},
		"s1": {ID: "s1", Email: "root@example.com", Claims: roles.Claims{Admin: true, SuperAdmin: true}, Role: "superAdmin"},
	}}
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"user-token":  {UID: "u1", Claims: map[string]interface{}{"email": "user@example.com"}},
		"admin-token": {UID: "a1", Claims: map[string]interface{}{"email": "admin@example.com", "admin": true}},
		"super-token": {UID: "s1", Claims: map[string]interface{}{"email": "root@example.com", "admin": true, "superAdmin": true}},
	}}

	env := &testEnv{
		provider: provider,
		data:     &fakeData{},
		history:  &fakeHistory{},
	}

	router := gin.New()
	SetupRoutes(
		router,
		zap.NewNop(),
		middleware.NewAuthMiddleware(verifier),
		core.NewAccountService(provider),
		env.data,
		env.history,
		metrics.NewCollector(),
	)
	env.router = router
	return env
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func apiError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRoutes_GatedEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	gated := []struct{ method, path string }{
		{http.MethodGet, "/api/users"},
		{http.MethodDelete, "/api/users/u1"},
		{http.MethodGet, "/api/admins"},
		{http.MethodPost, "/api/admins"},
		{http.MethodDelete, "/api/admins/a1"},
		{http.MethodGet, "/api/session"},
		{http.MethodGet, "/api/stats"},
	}
	for _, ep := range gated {
		w := env.do(ep.method, ep.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", ep.method, ep.path)
	}
}

func TestRoutes_ListUsers(t *testing.T) {
	env := newTestEnv(t)

	t.Run("plain user is forbidden", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/users", "user-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Requires Admin privileges", apiError(t, w))
	})

	t.Run("admin sees all accounts", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/users", "admin-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var accounts []models.Account
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
		assert.Len(t, accounts, 3)
	})
}

func TestRoutes_ListAdmins(t *testing.T) {
	env := newTestEnv(t)

	t.Run("admin is forbidden", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/admins", "admin-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Requires Super Admin privileges", apiError(t, w))
	})

	t.Run("super admin sees admin subset", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/admins", "super-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var admins []models.Account
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admins))
		require.Len(t, admins, 2)
		for _, a := range admins {
			assert.True(t, a.Claims.Admin)
		}
	})
}

func TestRoutes_DeleteUser(t *testing.T) {
	env := newTestEnv(t)

	t.Run("self deletion forbidden even for super admin", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users/s1", "super-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Cannot delete yourself", apiError(t, w))
	})

	t.Run("super admin target forbidden for admin caller", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users/s1", "admin-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Cannot delete Super Admin", apiError(t, w))
	})

	t.Run("unknown target", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users/ghost", "admin-token", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("regular deletion succeeds", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/users/u1", "admin-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "User deleted successfully", body.Message)
		assert.NotContains(t, env.provider.accounts, "u1")
	})
}

func TestRoutes_CreateAdmin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing fields rejected", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/admins", "super-token",
			map[string]string{"email": "x@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/admins", "super-token", map[string]string{
			"email": "admin@example.com", "password": "secret123", "displayName": "Dup",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("creates account with admin claim only", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/admins", "super-token", map[string]string{
			"email": "second@example.com", "password": "secret123", "displayName": "Second Admin",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var body MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Admin created successfully", body.Message)
		require.NotEmpty(t, body.ID)

		created := env.provider.accounts[body.ID]
		require.NotNil(t, created)
		assert.True(t, created.Claims.Admin)
		assert.False(t, created.Claims.SuperAdmin)
	})
}

func TestRoutes_DataEndpointsArePublic(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	env.data.feedback = []models.FeedbackEntry{
		{ID: "f1", AccountEmail: "user@example.com", Rating: 5, Message: "great", Timestamp: now},
	}
	env.data.issues = []models.IssueReport{
		{ID: "i1", AccountEmail: "user@example.com", Subject: "rates stale", Status: models.IssueStatusOpen, Timestamp: now},
	}

	w := env.do(http.MethodGet, "/api/data/feedback", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feedback []models.FeedbackEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedback))
	assert.Len(t, feedback, 1)

	w = env.do(http.MethodGet, "/api/data/issues", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var issues []models.IssueReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	assert.Len(t, issues, 1)
}

func TestRoutes_DataEndpointFailure(t *testing.T) {
	env := newTestEnv(t)
	env.data.err = errors.New("decode failure")

	w := env.do(http.MethodGet, "/api/data/feedback", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch feedback", apiError(t, w))
}

func TestRoutes_DataStoreUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.data.err = core.ErrStoreUnavailable

	w := env.do(http.MethodGet, "/api/data/issues", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Data store unavailable", apiError(t, w))
}

func TestRoutes_IdentityProviderUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"admin-token": {UID: "a1", Claims: map[string]interface{}{"email": "admin@example.com", "admin": true}},
	}}

	router := gin.New()
	SetupRoutes(
		router,
		zap.NewNop(),
		middleware.NewAuthMiddleware(verifier),
		core.NewAccountService(nil),
		&fakeData{},
		&fakeHistory{},
		metrics.NewCollector(),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Identity provider not initialized", apiError(t, w))
}

func TestRoutes_History(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	env.history.entries = []models.ConversionHistoryEntry{
		{ID: "h1", Amount: 100, BaseCurrency: "USD", TargetCurrency: "EUR", Rate: 0.92, Timestamp: now},
		{ID: "h2", Amount: 50, BaseCurrency: "EUR", TargetCurrency: "PKR", Rate: 312.4, Timestamp: now.Add(-time.Hour)},
	}

	w := env.do(http.MethodGet, "/api/history/u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.ConversionHistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)
}

func TestRoutes_HistoryStoreUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.history.err = core.ErrStoreUnavailable

	w := env.do(http.MethodGet, "/api/history/u1", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Data store unavailable", apiError(t, w))
}

func TestRoutes_Session(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/session", "user-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "u1", session.ID)
	assert.Equal(t, "user@example.com", session.Email)
	assert.Equal(t, "user", session.Role)
}

func TestRoutes_Stats(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/stats", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalAdmins)
}

func TestRoutes_Health(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
