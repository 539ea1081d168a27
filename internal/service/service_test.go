package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// syncAsync выполняет побочные эффекты сразу, чтобы ожидания моков проверялись детерминированно.
func syncAsync(fn func()) { fn() }

type fixture struct {
	tx           *mocks.MockTransactor
	clients      *mocks.MockClientRepo
	slots        *mocks.MockSlotRepo
	groups       *mocks.MockGroupRepo
	transactions *mocks.MockTransactionRepo
	bookings     *mocks.MockBookingRepo
	wallets      *mocks.MockWalletRepo
	referrals    *mocks.MockReferralRepo
	audit        *mocks.MockAuditRepo
	providers    *mocks.MockPaymentProviders
	provider     *mocks.MockPaymentProvider
	cache        *mocks.MockGroupCache
	notifier     *mocks.MockNotifier
	log          logger.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		tx:           mocks.NewMockTransactor(t),
		clients:      mocks.NewMockClientRepo(t),
		slots:        mocks.NewMockSlotRepo(t),
		groups:       mocks.NewMockGroupRepo(t),
		transactions: mocks.NewMockTransactionRepo(t),
		bookings:     mocks.NewMockBookingRepo(t),
		wallets:      mocks.NewMockWalletRepo(t),
		referrals:    mocks.NewMockReferralRepo(t),
		audit:        mocks.NewMockAuditRepo(t),
		providers:    mocks.NewMockPaymentProviders(t),
		provider:     mocks.NewMockPaymentProvider(t),
		cache:        mocks.NewMockGroupCache(t),
		notifier:     mocks.NewMockNotifier(t),
		log:          newTestLogger(t),
	}
}

func (f *fixture) repos() Repos {
	return Repos{
		Clients:      f.clients,
		Slots:        f.slots,
		Groups:       f.groups,
		Transactions: f.transactions,
		Bookings:     f.bookings,
		Wallets:      f.wallets,
		Referrals:    f.referrals,
		Audit:        f.audit,
	}
}

// inTx пропускает fn через мок транзактора как через настоящую транзакцию.
func (f *fixture) inTx() {
	f.tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func (f *fixture) useProvider(name string) {
	f.providers.EXPECT().Get("").Return(f.provider, nil)
	f.provider.EXPECT().Name().Return(name).Maybe()
}

func rawIntent(t *testing.T, intent domain.BookingIntent) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(intent)
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	return raw
}

func testClient() *domain.Client {
	chatID := int64(42)
	return &domain.Client{ID: uuid.New().String(), Name: "Анна", TelegramChatID: &chatID}
}

func availableSlot(price int64) *domain.ScheduleSlot {
	return &domain.ScheduleSlot{
		ID:           uuid.New().String(),
		InstructorID: uuid.New().String(),
		Date:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		Status:       domain.SlotStatusAvailable,
		Price:        decimal.NewFromInt(price),
	}
}

func openGroup(maxSeats, taken int, price int64) *domain.GroupTraining {
	return &domain.GroupTraining{
		ID:                  uuid.New().String(),
		Date:                time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		StartTime:           "12:00",
		EndTime:             "13:30",
		SportType:           domain.SportSnowboard,
		MaxParticipants:     maxSeats,
		CurrentParticipants: taken,
		Status:              domain.GroupStatusOpen,
		PricePerPerson:      decimal.NewFromInt(price),
	}
}

func pendingTx(t *testing.T, clientID string, amount int64, intent domain.BookingIntent) *domain.Transaction {
	t.Helper()
	expires := time.Now().UTC().Add(5 * time.Minute)
	return &domain.Transaction{
		ID:              uuid.New().String(),
		ClientID:        clientID,
		Type:            domain.TransactionTypePayment,
		Amount:          decimal.NewFromInt(amount),
		Status:          domain.TransactionStatusPending,
		Provider:        "tokenbank",
		ProviderRawData: rawIntent(t, intent),
		HoldExpiresAt:   &expires,
	}
}
