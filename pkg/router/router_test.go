package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/century-shop/pkg/captcha"
	"github.com/tendant/century-shop/pkg/notification"
	"github.com/tendant/century-shop/pkg/ratelimit"
)

// createTestRouter wires the file backend with a mock mail sender
func createTestRouter(t *testing.T) (*chi.Mux, *notification.MockSender) {
	sender := &notification.MockSender{}
	cfg, err := NewConfig(Options{
		PersistenceType: "file",
		DataDir:         t.TempDir(),
		Verifier:        captcha.StaticVerifier{Valid: true},
		Sender:          sender,
		Secret:          "test-secret-key-for-testing-only",
		FrontendURL:     "http://localhost:3000",
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	SetupRoutes(r, cfg)
	return r, sender
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestSetupRoutes tests that all routes are properly mounted
func TestSetupRoutes(t *testing.T) {
	r, _ := createTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "Config endpoint exists",
			method:     http.MethodGet,
			path:       "/century/v1/config",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Config update needs a body",
			method:     http.MethodPut,
			path:       "/century/v1/config",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Verify link endpoint exists",
			method:     http.MethodPost,
			path:       "/century/v1/config/verify",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Verify token endpoint exists",
			method:     http.MethodGet,
			path:       "/century/v1/config/verify",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Bill endpoint exists",
			method:     http.MethodPost,
			path:       "/century/v1/bill",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unprefixed path is not mounted",
			method:     http.MethodGet,
			path:       "/config",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Bill listing is not exposed",
			method:     http.MethodGet,
			path:       "/century/v1/bill",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

var tokenPattern = regexp.MustCompile(`token=([^"&]+)`)

// TestShopFlow drives verification and ordering through the mounted routes
func TestShopFlow(t *testing.T) {
	r, sender := createTestRouter(t)

	// no configuration row yet, so there is no account to send from
	w := do(r, http.MethodPost, "/century/v1/config/verify", `{"email":"a@b.com","captcha":"proof"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(r, http.MethodGet, "/century/v1/config", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))

	var update bytes.Buffer
	require.NoError(t, json.NewEncoder(&update).Encode(map[string]string{
		"id":    cfg["id"].(string),
		"name":  "century",
		"email": "shop@example.com",
	}))
	w = do(r, http.MethodPut, "/century/v1/config", update.String())
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/century/v1/config/verify", `{"email":"a@b.com","captcha":"proof"}`)
	require.Equal(t, http.StatusOK, w.Code)

	msgs := sender.SentTo("a@b.com")
	require.Len(t, msgs, 1)
	m := tokenPattern.FindStringSubmatch(msgs[0].HTML)
	require.Len(t, m, 2)
	token, err := url.QueryUnescape(m[1])
	require.NoError(t, err)

	w = do(r, http.MethodGet, "/century/v1/config/verify?token="+url.QueryEscape(token), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)

	w = do(r, http.MethodPost, "/century/v1/bill", `{
		"name": "Ana", "email": "a@b.com", "address": "Zona 1", "total": 20,
		"products": [{"name": "Widget", "qty": 2, "price": 10}], "billCode": "T-1"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Len(t, sender.SentTo("a@b.com"), 2)
	admin := sender.SentTo("shop@example.com")
	require.Len(t, admin, 1)
	assert.Equal(t, "New order received - Code T-1", admin[0].Subject)
	for _, s := range sender.Sent {
		assert.Equal(t, "shop@example.com", s.From.Address)
	}
}

func TestRateLimitGuardsMailEndpoints(t *testing.T) {
	cfg, err := NewConfig(Options{
		PersistenceType: "file",
		DataDir:         t.TempDir(),
		Verifier:        captcha.StaticVerifier{Valid: true},
		Sender:          &notification.MockSender{},
		Secret:          "test-secret-key-for-testing-only",
		FrontendURL:     "http://localhost:3000",
		RateLimit:       &ratelimit.Config{Capacity: 1},
	})
	require.NoError(t, err)
	r := chi.NewRouter()
	SetupRoutes(r, cfg)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/century/v1/bill", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/century/v1/bill", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/century/v1/config/verify", "").Code)

	// token checks and configuration reads are not limited
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/century/v1/config/verify", "").Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/century/v1/config", "").Code)
	}
}

func TestNewConfigRejectsUnknownBackend(t *testing.T) {
	_, err := NewConfig(Options{
		PersistenceType: "mongodb",
		Verifier:        captcha.StaticVerifier{Valid: true},
		Sender:          &notification.MockSender{},
	})
	assert.Error(t, err)

	_, err = NewConfig(Options{PersistenceType: "file", DataDir: t.TempDir()})
	assert.Error(t, err)
}
