package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/handler/dto"
	hmocks "github.com/BatlZlat/gornostyle-sub004/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testServices struct {
	holds          *hmocks.MockHoldSvc
	webhooks       *hmocks.MockWebhookSvc
	clients        *hmocks.MockClientSvc
	schedule       *hmocks.MockScheduleSvc
	reconciliation *hmocks.MockReconciliationSvc
	referrals      *hmocks.MockReferralSvc
}

func setupRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()
	s := &testServices{
		holds:          hmocks.NewMockHoldSvc(t),
		webhooks:       hmocks.NewMockWebhookSvc(t),
		clients:        hmocks.NewMockClientSvc(t),
		schedule:       hmocks.NewMockScheduleSvc(t),
		reconciliation: hmocks.NewMockReconciliationSvc(t),
		referrals:      hmocks.NewMockReferralSvc(t),
	}

	h := NewHandler(Services{
		Holds:          s.holds,
		Webhooks:       s.webhooks,
		Clients:        s.clients,
		Schedule:       s.schedule,
		Reconciliation: s.reconciliation,
		Referrals:      s.referrals,
	})

	r := ginext.New("test")
	r.POST("/payments/webhook/:provider", h.PaymentWebhook)
	api := r.Group("/api")
	{
		api.POST("/holds", h.CreateHold)
		api.POST("/wallet/topups", h.CreateTopUp)
		api.POST("/clients", h.CreateClient)
		api.GET("/clients/:id/wallet", h.GetWallet)
		api.GET("/clients/:id/bookings", h.GetClientBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/slots", h.CreateSlot)
		api.GET("/slots", h.ListSlots)
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.ListGroups)
		api.GET("/admin/transactions/stuck", h.ListStuckTransactions)
		api.POST("/admin/transactions/:id/force-booking", h.ForceBooking)
		api.POST("/admin/transactions/:id/cancel", h.CancelTransaction)
		api.POST("/admin/clients/:id/training-completed", h.TrainingCompleted)
	}

	return s, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

// --- Holds ---

func TestHandler_CreateHold_Success(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	slotID := uuid.New().String()
	until := time.Now().Add(5 * time.Minute)

	s.holds.EXPECT().CreateHold(mock.Anything, clientID, mock.MatchedBy(func(i domain.BookingIntent) bool {
		return i.Kind == domain.IntentIndividual && i.SlotID == slotID
	})).Return(&domain.HoldResult{
		TransactionID: uuid.New().String(),
		PaymentURL:    "https://bank.example/pay",
		Status:        domain.TransactionStatusPending,
		HoldUntil:     &until,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/holds", dto.CreateHoldRequest{
		ClientID: clientID,
		Kind:     "individual",
		SlotID:   slotID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HoldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://bank.example/pay", resp.PaymentURL)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.HoldUntil)
}

func TestHandler_CreateHold_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/holds", `{"client_id":"nope","kind":"party"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateHold_Conflict(t *testing.T) {
	s, r := setupRouter(t)

	s.holds.EXPECT().CreateHold(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(r, http.MethodPost, "/api/holds", dto.CreateHoldRequest{
		ClientID:          uuid.New().String(),
		Kind:              "group",
		GroupTrainingID:   uuid.New().String(),
		ParticipantsCount: 3,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateTopUp(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	s.holds.EXPECT().CreateTopUp(mock.Anything, clientID, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.RequireFromString("1500.50"))
	})).Return(&domain.HoldResult{TransactionID: uuid.New().String(), PaymentURL: "https://bank.example/topup", Status: domain.TransactionStatusPending}, nil)

	w := doJSON(r, http.MethodPost, "/api/wallet/topups", `{"client_id":"`+clientID+`","amount":"1500.50"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Webhook ---

func TestHandler_PaymentWebhook(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{name: "applied", err: nil, code: http.StatusOK, status: "ok"},
		{name: "unknown transaction", err: domain.ErrUnknownTransaction, code: http.StatusOK, status: "ignored"},
		{name: "amount mismatch", err: domain.ErrAmountMismatch, code: http.StatusOK, status: "ignored"},
		{name: "ignored event", err: domain.ErrIgnoredEvent, code: http.StatusOK, status: "ignored"},
		{name: "invalid signature", err: domain.ErrInvalidSignature, code: http.StatusUnauthorized},
		{name: "malformed payload", err: domain.ErrMalformedPayload, code: http.StatusBadRequest},
		{name: "unknown provider", err: domain.ErrUnknownProvider, code: http.StatusNotFound},
		{name: "storage failure", err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := setupRouter(t)

			payload := `{"OrderId":"1","Status":"CONFIRMED"}`
			s.webhooks.EXPECT().ProcessWebhook(mock.Anything, "tokenbank", []byte(payload), mock.Anything).Return(tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/payments/webhook/tokenbank", strings.NewReader(payload))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.status != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.status, resp["status"])
			}
		})
	}
}

// --- Clients ---

func TestHandler_CreateClient_Success(t *testing.T) {
	s, r := setupRouter(t)

	referrerID := uuid.New().String()
	s.clients.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterClientInput) bool {
		return in.Name == "Анна" && in.ReferrerID != nil && *in.ReferrerID == referrerID
	})).Return(&domain.Client{ID: uuid.New().String(), Name: "Анна", CreatedAt: time.Now()}, nil)

	w := doJSON(r, http.MethodPost, "/api/clients", dto.CreateClientRequest{Name: "Анна", ReferrerID: &referrerID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Анна", resp.Name)
}

func TestHandler_CreateClient_AlreadyReferred(t *testing.T) {
	s, r := setupRouter(t)

	s.clients.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyReferred)

	w := doJSON(r, http.MethodPost, "/api/clients", dto.CreateClientRequest{Name: "Анна"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetWallet(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	s.clients.EXPECT().GetWallet(mock.Anything, clientID).Return(&domain.Wallet{
		ClientID: clientID,
		Balance:  decimal.NewFromInt(700),
		Entries: []domain.WalletEntry{
			{ID: uuid.New().String(), Type: domain.WalletEntryRefill, Amount: decimal.NewFromInt(1000), BalanceAfter: decimal.NewFromInt(1000)},
			{ID: uuid.New().String(), Type: domain.WalletEntryPayment, Amount: decimal.NewFromInt(-300), BalanceAfter: decimal.NewFromInt(700)},
		},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/clients/"+clientID+"/wallet", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "700.00", resp.Balance)
	assert.Len(t, resp.Entries, 2)
}

func TestHandler_GetWallet_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/clients/not-a-uuid/wallet", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetClientBookings_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	s.clients.EXPECT().ListBookings(mock.Anything, clientID).Return(nil, domain.ErrClientNotFound)

	w := doJSON(r, http.MethodGet, "/api/clients/"+clientID+"/bookings", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	s, r := setupRouter(t)

	bookingID := uuid.New().String()
	s.reconciliation.EXPECT().CancelBooking(mock.Anything, bookingID).Return(&domain.Booking{
		ID:          bookingID,
		BookingType: domain.BookingTypeIndividual,
		Status:      domain.BookingStatusCancelled,
		PriceTotal:  decimal.NewFromInt(2500),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "2500.00", resp.PriceTotal)
}

// --- Schedule ---

func TestHandler_CreateSlot_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/slots", `{"instructor_id":"`+uuid.New().String()+`","date":"10.01.2026","start_time":"10:00","end_time":"11:00","price":"2500"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSlot_Success(t *testing.T) {
	s, r := setupRouter(t)

	instructorID := uuid.New().String()
	s.schedule.EXPECT().CreateSlot(mock.Anything, mock.MatchedBy(func(in domain.CreateSlotInput) bool {
		return in.InstructorID == instructorID && in.Date.Format(time.DateOnly) == "2026-01-10"
	})).Return(&domain.ScheduleSlot{
		ID:           uuid.New().String(),
		InstructorID: instructorID,
		Date:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		Status:       domain.SlotStatusAvailable,
		Price:        decimal.NewFromInt(2500),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/slots", `{"instructor_id":"`+instructorID+`","date":"2026-01-10","start_time":"10:00","end_time":"11:00","price":"2500"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2500.00", resp.Price)
	assert.Equal(t, "available", resp.Status)
}

func TestHandler_ListSlots_Filter(t *testing.T) {
	s, r := setupRouter(t)

	instructorID := uuid.New().String()
	s.schedule.EXPECT().ListSlots(mock.Anything, mock.MatchedBy(func(f domain.SlotFilter) bool {
		return f.InstructorID == instructorID && f.Date != nil && f.Date.Format(time.DateOnly) == "2026-01-10"
	})).Return([]*domain.ScheduleSlot{}, nil)

	w := doJSON(r, http.MethodGet, "/api/slots?date=2026-01-10&instructor_id="+instructorID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListGroups_FreeSeats(t *testing.T) {
	s, r := setupRouter(t)

	s.schedule.EXPECT().ListGroups(mock.Anything, (*time.Time)(nil)).Return([]*domain.GroupTraining{
		{ID: uuid.New().String(), MaxParticipants: 6, CurrentParticipants: 4, SportType: domain.SportSki, Status: domain.GroupStatusOpen},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/groups", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.GroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].FreeSeats)
}

func TestHandler_ListGroups_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/groups?date=tomorrow", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin ---

func TestHandler_ListStuckTransactions(t *testing.T) {
	s, r := setupRouter(t)

	s.reconciliation.EXPECT().ListStuckTransactions(mock.Anything, 48*time.Hour).Return([]*domain.Transaction{
		{ID: uuid.New().String(), Amount: decimal.NewFromInt(2500), Status: domain.TransactionStatusPending},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/transactions/stuck?period=48h", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2500.00", resp[0].Amount)
}

func TestHandler_ListStuckTransactions_InvalidPeriod(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/admin/transactions/stuck?period=week", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ForceBooking(t *testing.T) {
	s, r := setupRouter(t)

	txID := uuid.New().String()
	s.reconciliation.EXPECT().ForceCreateBooking(mock.Anything, domain.ForceBookingInput{
		TransactionID: txID,
		Operator:      "admin",
		Reason:        "bank confirmed",
		Override:      true,
	}).Return(&domain.Booking{ID: uuid.New().String(), TransactionID: &txID, Status: domain.BookingStatusConfirmed}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/transactions/"+txID+"/force-booking", dto.ForceBookingRequest{
		Operator: "admin",
		Reason:   "bank confirmed",
		Override: true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ForceBooking_MissingReason(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/transactions/"+uuid.New().String()+"/force-booking", `{"operator":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelTransaction_NotPending(t *testing.T) {
	s, r := setupRouter(t)

	txID := uuid.New().String()
	s.reconciliation.EXPECT().CancelStuckTransaction(mock.Anything, mock.Anything).Return(nil, domain.ErrTransactionNotPending)

	w := doJSON(r, http.MethodPost, "/api/admin/transactions/"+txID+"/cancel", dto.CancelTransactionRequest{Operator: "admin", Reason: "stuck"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TrainingCompleted(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	s.referrals.EXPECT().OnTrainingCompleted(mock.Anything, clientID).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/admin/clients/"+clientID+"/training-completed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"processed"}`, w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	s, r := setupRouter(t)

	clientID := uuid.New().String()
	s.clients.EXPECT().ListBookings(mock.Anything, clientID).Return(nil, assert.AnError)

	w := doJSON(r, http.MethodGet, "/api/clients/"+clientID+"/bookings", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
