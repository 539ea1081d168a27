package ports

import (
	"context"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// Transactor выполняет fn в одной транзакции БД; репозитории берут ее из ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

type SlotRepo interface {
	Create(ctx context.Context, s *domain.ScheduleSlot) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleSlot, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.ScheduleSlot, error)
	List(ctx context.Context, f domain.SlotFilter) ([]*domain.ScheduleSlot, error)
	HoldSlot(ctx context.Context, slotID, transactionID string, until time.Time) error
	ReleaseSlot(ctx context.Context, slotID, transactionID string) (bool, error)
	ReleaseBookedSlot(ctx context.Context, slotID string) error
	ConfirmSlot(ctx context.Context, slotID, transactionID string) error
	ReclaimExpired(ctx context.Context) ([]string, error)
}

type GroupRepo interface {
	Create(ctx context.Context, g *domain.GroupTraining) error
	GetByID(ctx context.Context, id string) (*domain.GroupTraining, error)
	List(ctx context.Context, date *time.Time) ([]*domain.GroupTraining, error)
	ReserveSeats(ctx context.Context, groupID string, count int) error
	ReleaseSeats(ctx context.Context, groupID string, count int) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Transaction, error)
	Transition(ctx context.Context, in domain.TransitionInput) error
	UpdateProviderStatus(ctx context.Context, id, providerStatus, providerPaymentID string) error
	LinkBooking(ctx context.Context, id, bookingID string) error
	SetPaymentURL(ctx context.Context, id, url string) error
	MarkHoldReleased(ctx context.Context, id string) (bool, error)
	ClaimExpiredGroupHolds(ctx context.Context, groupID string) ([]*domain.Transaction, error)
	ListStuck(ctx context.Context, since time.Time) ([]*domain.Transaction, error)
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	GetByTransaction(ctx context.Context, transactionID string) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) error
}

type WalletRepo interface {
	Append(ctx context.Context, e *domain.WalletEntry) (decimal.Decimal, error)
	Get(ctx context.Context, clientID string, limit int) (*domain.Wallet, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, rt *domain.ReferralTransaction) error
	GetByReferee(ctx context.Context, refereeID string) (*domain.ReferralTransaction, error)
	Advance(ctx context.Context, refereeID string, from, to domain.ReferralStatus) (*domain.ReferralTransaction, error)
	MarkBonusesPaid(ctx context.Context, id string) error
	ListDepositCandidates(ctx context.Context) ([]string, error)
	ListTrainingCandidates(ctx context.Context) ([]string, error)
}

type AuditRepo interface {
	Create(ctx context.Context, a *domain.AuditRecord) error
}
