package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/century-shop/pkg/bill"
	"github.com/tendant/century-shop/pkg/notification"
)

func setupTestRouter(t *testing.T, accounts notification.AccountSource, sender *notification.MockSender) *chi.Mux {
	repo, err := bill.NewFileRepository(t.TempDir())
	require.NoError(t, err)

	service := bill.NewService(repo, bill.NewNotifier(accounts, sender))
	r := chi.NewRouter()
	r.Route("/bill", NewHandle(service).Routes)
	return r
}

func postBill(t *testing.T, r http.Handler, body []byte) (*httptest.ResponseRecorder, CreateBillResponse) {
	req := httptest.NewRequest(http.MethodPost, "/bill", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp CreateBillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

const orderJSON = `{
	"address": "5a Avenida 10-20, Zona 1",
	"name": "Ana Lopez",
	"email": "c@x.com",
	"phone": "5555-1234",
	"comment": "",
	"metodPayment": "cash",
	"status": "pending",
	"total": 20,
	"products": [{"name": "Widget", "qty": 2, "price": 10}],
	"billCode": "T-1"
}`

var shopAccount = notification.StaticAccount{Account: notification.Account{Address: "shop@example.com", Password: "pw"}}

func TestCreateBill(t *testing.T) {
	sender := &notification.MockSender{}
	r := setupTestRouter(t, shopAccount, sender)

	w, resp := postBill(t, r, []byte(orderJSON))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Sent)
	assert.Equal(t, "T-1", resp.TrackingCode)
	assert.NotEmpty(t, resp.BillID)

	receipts := sender.SentTo("c@x.com")
	require.Len(t, receipts, 1)
	assert.Contains(t, receipts[0].HTML, "Widget")
	assert.Contains(t, receipts[0].HTML, "Q10.00")

	admin := sender.SentTo("shop@example.com")
	require.Len(t, admin, 1)
	assert.Contains(t, admin[0].HTML, "cash")
	assert.Contains(t, admin[0].HTML, "5a Avenida 10-20, Zona 1")
}

func TestCreateBillFailures(t *testing.T) {
	tests := []struct {
		name       string
		accounts   notification.AccountSource
		failFor    map[string]error
		body       string
		wantStatus int
		wantBillID bool
		wantSent   int
	}{
		{
			name:       "MalformedBody",
			body:       `{"products": [`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NoProducts",
			body:       `{"name": "Ana", "email": "c@x.com", "products": []}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "CustomerEmailFails",
			failFor:    map[string]error{"c@x.com": errors.New("mailbox unavailable")},
			body:       orderJSON,
			wantStatus: http.StatusInternalServerError,
			wantBillID: true,
		},
		{
			name:       "NoMailAccount",
			accounts:   notification.StaticAccount{},
			body:       orderJSON,
			wantStatus: http.StatusServiceUnavailable,
			wantBillID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := tt.accounts
			if accounts == nil {
				accounts = shopAccount
			}
			sender := &notification.MockSender{FailFor: tt.failFor}
			r := setupTestRouter(t, accounts, sender)

			w, resp := postBill(t, r, []byte(tt.body))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, resp.Sent)
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, tt.wantBillID, resp.BillID != "")
			assert.Equal(t, tt.wantSent, sender.Count())
		})
	}
}

func TestAdminEmailFailureStillSucceeds(t *testing.T) {
	sender := &notification.MockSender{FailFor: map[string]error{"shop@example.com": errors.New("smtp down")}}
	r := setupTestRouter(t, shopAccount, sender)

	w, resp := postBill(t, r, []byte(orderJSON))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Sent)
	assert.Equal(t, 1, sender.Count())
}
