package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/google/uuid"
)

// Finalizer применяет эффекты оплаты к слотам, местам, броням и кошелькам.
// Все методы вызываются внутри транзакции БД, открытой вызывающим.
type Finalizer struct {
	repos Repos
}

func NewFinalizer(repos Repos) *Finalizer {
	return &Finalizer{repos: repos}
}

type Result struct {
	Booking  *domain.Booking
	Credit   *domain.WalletEntry
	Reversal *domain.WalletEntry
}

// Finalize вызывается после перевода транзакции в completed. Бронь создается
// не больше одного раза на транзакцию (bookings.transaction_id уникален).
func (f *Finalizer) Finalize(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent) (*Result, error) {
	var (
		booking *domain.Booking
		err     error
	)

	switch intent.Kind {
	case domain.IntentWalletTopUp:
		entry, err := f.credit(ctx, t)
		if err != nil {
			return nil, err
		}
		return &Result{Credit: entry}, nil
	case domain.IntentIndividual:
		booking, err = f.bookSlot(ctx, t, intent)
	case domain.IntentGroup:
		booking, err = f.bookGroup(ctx, t, intent)
	default:
		return nil, fmt.Errorf("%w: unknown booking kind %q", domain.ErrMalformedPayload, intent.Kind)
	}
	if err != nil {
		return nil, err
	}

	if err = f.repos.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if err = f.repos.Transactions.LinkBooking(ctx, t.ID, booking.ID); err != nil {
		return nil, fmt.Errorf("link booking: %w", err)
	}
	t.BookingID = &booking.ID

	return &Result{Booking: booking}, nil
}

func (f *Finalizer) credit(ctx context.Context, t *domain.Transaction) (*domain.WalletEntry, error) {
	entry := &domain.WalletEntry{
		ID:            uuid.New().String(),
		ClientID:      t.ClientID,
		Type:          domain.WalletEntryRefill,
		Amount:        t.Amount,
		TransactionID: &t.ID,
		Description:   "Пополнение кошелька",
		CreatedAt:     time.Now().UTC(),
	}

	balance, err := f.repos.Wallets.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("credit wallet: %w", err)
	}
	entry.BalanceAfter = balance

	return entry, nil
}

// ReverseCredit списывает возвращенное банком пополнение. Если деньги уже потрачены,
// возвращает ErrInsufficientFunds и кошелек не меняется.
func (f *Finalizer) ReverseCredit(ctx context.Context, t *domain.Transaction) (*domain.WalletEntry, error) {
	entry := &domain.WalletEntry{
		ID:            uuid.New().String(),
		ClientID:      t.ClientID,
		Type:          domain.WalletEntryRefund,
		Amount:        t.Amount.Neg(),
		TransactionID: &t.ID,
		Description:   "Возврат пополнения кошелька",
		CreatedAt:     time.Now().UTC(),
	}

	balance, err := f.repos.Wallets.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("reverse wallet credit: %w", err)
	}
	entry.BalanceAfter = balance

	return entry, nil
}

func (f *Finalizer) bookSlot(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent) (*domain.Booking, error) {
	slot, err := f.repos.Slots.GetByIDForUpdate(ctx, intent.SlotID)
	if err != nil {
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	if err = f.repos.Slots.ConfirmSlot(ctx, slot.ID, t.ID); err != nil {
		return nil, fmt.Errorf("confirm slot: %w", err)
	}

	b := newBooking(t, intent)
	b.BookingType = domain.BookingTypeIndividual
	b.InstructorID = &slot.InstructorID
	b.SlotID = &slot.ID
	b.Date = slot.Date
	b.StartTime = slot.StartTime
	b.EndTime = slot.EndTime

	return b, nil
}

func (f *Finalizer) bookGroup(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent) (*domain.Booking, error) {
	group, err := f.repos.Groups.GetByID(ctx, intent.GroupTrainingID)
	if err != nil {
		return nil, fmt.Errorf("get group training: %w", err)
	}

	// места уже вернула зачистка истекших hold, занимаем заново
	if t.HoldReleased {
		if err = f.repos.Groups.ReserveSeats(ctx, group.ID, intent.ParticipantsCount); err != nil {
			return nil, fmt.Errorf("re-reserve seats: %w", err)
		}
	}

	b := newBooking(t, intent)
	b.BookingType = domain.BookingTypeGroup
	b.GroupTrainingID = &group.ID
	b.Date = group.Date
	b.StartTime = group.StartTime
	b.EndTime = group.EndTime
	if b.SportType == "" {
		b.SportType = group.SportType
	}

	return b, nil
}

func newBooking(t *domain.Transaction, intent *domain.BookingIntent) *domain.Booking {
	now := time.Now().UTC()
	count := intent.ParticipantsCount
	if count <= 0 {
		count = 1
	}
	sport := intent.SportType
	if sport == "" && intent.Kind == domain.IntentIndividual {
		sport = domain.SportSki
	}

	return &domain.Booking{
		ID:                uuid.New().String(),
		ClientID:          t.ClientID,
		TransactionID:     &t.ID,
		SportType:         sport,
		ParticipantsCount: count,
		ParticipantsNames: intent.ParticipantsNames,
		PriceTotal:        t.Amount,
		Status:            domain.BookingStatusConfirmed,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ReleaseHold возвращает ресурс, удерживаемый транзакцией. Повторный вызов ничего не меняет:
// слот освобождается только если hold все еще принадлежит транзакции,
// места группы - только при первой пометке hold_released.
func (f *Finalizer) ReleaseHold(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent) error {
	switch intent.Kind {
	case domain.IntentIndividual:
		if _, err := f.repos.Slots.ReleaseSlot(ctx, intent.SlotID, t.ID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
	case domain.IntentGroup:
		released, err := f.repos.Transactions.MarkHoldReleased(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("mark hold released: %w", err)
		}
		if !released {
			return nil
		}
		if err = f.repos.Groups.ReleaseSeats(ctx, intent.GroupTrainingID, intent.ParticipantsCount); err != nil {
			return fmt.Errorf("release seats: %w", err)
		}
		t.HoldReleased = true
	}

	return nil
}

// ReleaseBooking возвращает в продажу ресурс отмененной или возвращенной брони.
func (f *Finalizer) ReleaseBooking(ctx context.Context, b *domain.Booking) error {
	switch b.BookingType {
	case domain.BookingTypeIndividual:
		if b.SlotID == nil {
			return nil
		}
		if err := f.repos.Slots.ReleaseBookedSlot(ctx, *b.SlotID); err != nil {
			return fmt.Errorf("release booked slot: %w", err)
		}
	case domain.BookingTypeGroup:
		if b.GroupTrainingID == nil {
			return nil
		}
		if err := f.repos.Groups.ReleaseSeats(ctx, *b.GroupTrainingID, b.ParticipantsCount); err != nil {
			return fmt.Errorf("release seats: %w", err)
		}
	}

	return nil
}

// ReleaseExpiredGroupHolds возвращает места групповых hold, истекших без оплаты.
// Пустой groupID - по всем группам.
func (f *Finalizer) ReleaseExpiredGroupHolds(ctx context.Context, groupID string) (int, error) {
	claimed, err := f.repos.Transactions.ClaimExpiredGroupHolds(ctx, groupID)
	if err != nil {
		return 0, err
	}

	for _, t := range claimed {
		intent, err := t.Intent()
		if err != nil {
			return 0, err
		}
		if err = f.repos.Groups.ReleaseSeats(ctx, intent.GroupTrainingID, intent.ParticipantsCount); err != nil {
			return 0, fmt.Errorf("release seats of transaction %s: %w", t.ID, err)
		}
	}

	return len(claimed), nil
}
