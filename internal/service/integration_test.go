package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/notification"
	"github.com/BatlZlat/gornostyle-sub004/internal/payment"
	"github.com/BatlZlat/gornostyle-sub004/internal/repository"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports/mocks"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var (
	testDBOnce sync.Once
	testDB     *dbpg.DB
	testDBErr  error
)

// integrationDB поднимает схему в базе из TEST_POSTGRES_DSN; без нее тест пропускается.
func integrationDB(t *testing.T) *dbpg.DB {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load("../../.env")

		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			testDBErr = errors.New("TEST_POSTGRES_DSN is not set")
			return
		}

		raw, err := sql.Open("postgres", dsn)
		if err != nil {
			testDBErr = err
			return
		}
		defer raw.Close()

		if err = goose.SetDialect("postgres"); err != nil {
			testDBErr = err
			return
		}
		if err = goose.Up(raw, "../../migrations"); err != nil {
			testDBErr = err
			return
		}

		testDB, testDBErr = dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDB
}

// signedProvider отдает одно и то же уже проверенное уведомление на каждую доставку.
type signedProvider struct {
	n domain.PaymentNotification
}

func (p signedProvider) Name() string {
	return "tokenbank"
}

func (p signedProvider) VerifySignature([]byte, http.Header) error {
	return nil
}

func (p signedProvider) Parse([]byte) (*domain.PaymentNotification, error) {
	n := p.n
	return &n, nil
}

func (p signedProvider) InitPayment(context.Context, domain.InitPaymentParams) (string, error) {
	return "", nil
}

type dbWebhook struct {
	db    *dbpg.DB
	repos Repos
	tx    *repository.TxManager
}

func newDBWebhook(t *testing.T) *dbWebhook {
	db := integrationDB(t)
	return &dbWebhook{
		db: db,
		repos: Repos{
			Clients:      repository.NewClientRepo(db),
			Slots:        repository.NewSlotRepo(db),
			Groups:       repository.NewGroupRepo(db),
			Transactions: repository.NewTransactionRepo(db),
			Bookings:     repository.NewBookingRepo(db),
			Wallets:      repository.NewWalletRepo(db),
			Referrals:    repository.NewReferralRepo(db),
			Audit:        repository.NewAuditRepo(db),
		},
		tx: repository.NewTxManager(db),
	}
}

func (w *dbWebhook) service(t *testing.T, n domain.PaymentNotification) *WebhookService {
	t.Helper()

	providers, err := payment.NewRegistry("tokenbank", signedProvider{n: n})
	require.NoError(t, err)

	log := newTestLogger(t)
	referrals := NewReferralService(w.tx, w.repos, notification.Multi{}, ReferralBonuses{}, log)
	referrals.async = syncAsync

	svc := NewWebhookService(w.tx, w.repos, providers, NewFinalizer(w.repos),
		mocks.NewMockGroupCache(t), notification.Multi{}, referrals, log)
	svc.async = syncAsync

	return svc
}

func (w *dbWebhook) seedTransaction(t *testing.T, ctx context.Context, clientID string, amount int64, intent string) *domain.Transaction {
	t.Helper()
	now := time.Now().UTC()
	until := now.Add(5 * time.Minute)
	tx := &domain.Transaction{
		ID:              uuid.New().String(),
		ClientID:        clientID,
		Type:            domain.TransactionTypePayment,
		Amount:          decimal.NewFromInt(amount),
		Status:          domain.TransactionStatusPending,
		Provider:        "tokenbank",
		ProviderRawData: []byte(intent),
		HoldExpiresAt:   &until,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, w.repos.Transactions.Create(ctx, tx))
	return tx
}

func (w *dbWebhook) count(t *testing.T, ctx context.Context, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, w.db.Master.QueryRowContext(ctx, query, args...).Scan(&n))
	return n
}

// deliverConcurrently имитирует банк, который шлет одно уведомление параллельными ретраями.
func deliverConcurrently(t *testing.T, svc *WebhookService, times int) {
	t.Helper()

	errs := make(chan error, times)
	var wg sync.WaitGroup
	for range times {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.ProcessWebhook(context.Background(), "tokenbank", []byte(`{}`), http.Header{})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestIntegration_WebhookReplay_CreatesOneBooking(t *testing.T) {
	w := newDBWebhook(t)
	ctx := context.Background()

	client := &domain.Client{ID: uuid.New().String(), Name: "Анна", CreatedAt: time.Now().UTC()}
	require.NoError(t, w.repos.Clients.Create(ctx, client))

	now := time.Now().UTC()
	slot := &domain.ScheduleSlot{
		ID:           uuid.New().String(),
		InstructorID: uuid.New().String(),
		Date:         now.AddDate(0, 0, 3).Truncate(24 * time.Hour),
		StartTime:    "10:00",
		EndTime:      "11:00",
		Status:       domain.SlotStatusAvailable,
		Price:        decimal.NewFromInt(2500),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, w.repos.Slots.Create(ctx, slot))

	tx := w.seedTransaction(t, ctx, client.ID, 2500,
		`{"kind":"individual","slot_id":"`+slot.ID+`","instructor_id":"`+slot.InstructorID+`","participants_count":1}`)
	require.NoError(t, w.repos.Slots.HoldSlot(ctx, slot.ID, tx.ID, time.Now().Add(5*time.Minute)))

	amount := decimal.NewFromInt(2500)
	svc := w.service(t, domain.PaymentNotification{
		OrderID:   tx.ID,
		PaymentID: "pay-1",
		Status:    domain.PaymentSuccess,
		RawStatus: "CONFIRMED",
		Amount:    &amount,
	})

	deliverConcurrently(t, svc, 8)

	assert.Equal(t, 1, w.count(t, ctx, `SELECT count(*) FROM bookings WHERE transaction_id = $1`, tx.ID))

	got, err := w.repos.Transactions.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, got.Status)
	require.NotNil(t, got.BookingID)

	s, err := w.repos.Slots.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusBooked, s.Status)
}

func TestIntegration_WebhookReplay_CreditsTopUpOnce(t *testing.T) {
	w := newDBWebhook(t)
	ctx := context.Background()

	client := &domain.Client{ID: uuid.New().String(), Name: "Олег", CreatedAt: time.Now().UTC()}
	require.NoError(t, w.repos.Clients.Create(ctx, client))

	tx := w.seedTransaction(t, ctx, client.ID, 1000, `{"kind":"wallet_topup"}`)

	amount := decimal.NewFromInt(1000)
	svc := w.service(t, domain.PaymentNotification{
		OrderID:   tx.ID,
		PaymentID: "pay-2",
		Status:    domain.PaymentSuccess,
		RawStatus: "CONFIRMED",
		Amount:    &amount,
	})

	deliverConcurrently(t, svc, 8)

	assert.Equal(t, 1, w.count(t, ctx,
		`SELECT count(*) FROM wallet_entries WHERE transaction_id = $1 AND type = 'refill'`, tx.ID))

	wallet, err := w.repos.Wallets.Get(ctx, client.ID, 10)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(wallet.Balance), "balance %s", wallet.Balance)
}
