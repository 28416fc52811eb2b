package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/century-shop/pkg/settings"
)

func setupTestRouter(t *testing.T) *chi.Mux {
	repo, err := settings.NewFileRepository(t.TempDir())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/config", NewHandle(settings.NewService(repo)).Routes)
	return r
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetConfigNeverExposesPassword(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "century", body["name"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), `"pass"`)
}

func TestUpdateConfig(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	id := current["id"].(string)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "MissingID", body: UpdateConfigRequest{Name: "x"}, wantStatus: http.StatusBadRequest},
		{name: "MalformedID", body: UpdateConfigRequest{ConfigID: "nope"}, wantStatus: http.StatusBadRequest},
		{name: "UnknownID", body: UpdateConfigRequest{ConfigID: uuid.NewString(), Name: "x"}, wantStatus: http.StatusNotFound},
		{name: "Success", body: UpdateConfigRequest{ConfigID: id, Name: "century store", Email: "shop@example.com"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPut, "/config", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	w = doRequest(r, http.MethodGet, "/config", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, "century store", current["name"])
	assert.Equal(t, "shop@example.com", current["email"])
}

func TestUpdateConfigRejectsBadBody(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/config", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
