package service

import (
	"context"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReconciliationService(f *fixture) *ReconciliationService {
	svc := NewReconciliationService(f.tx, f.repos(), NewFinalizer(f.repos()), f.cache, f.notifier, f.log)
	svc.async = syncAsync
	return svc
}

func expiredTx(t *testing.T, clientID string, amount int64, intent domain.BookingIntent) *domain.Transaction {
	tx := pendingTx(t, clientID, amount, intent)
	expired := time.Now().UTC().Add(-time.Hour)
	tx.HoldExpiresAt = &expired
	return tx
}

func TestReconciliationService_ListStuckTransactions(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	stuck := []*domain.Transaction{pendingTx(t, uuid.New().String(), 100, domain.BookingIntent{Kind: domain.IntentWalletTopUp})}

	f.transactions.EXPECT().ListStuck(mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		return time.Since(since) > 23*time.Hour && time.Since(since) < 25*time.Hour
	})).Return(stuck, nil)

	got, err := svc.ListStuckTransactions(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, stuck, got)
}

func TestReconciliationService_ForceCreateBooking_SlotStillHeld(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	client := testClient()
	slot := availableSlot(2500)
	tx := pendingTx(t, client.ID, 2500, domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slot.ID, ParticipantsCount: 1})
	slot.Status = domain.SlotStatusHold
	slot.HoldTransactionID = &tx.ID

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.slots.EXPECT().GetByIDForUpdate(mock.Anything, slot.ID).Return(slot, nil)
	f.transactions.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(in domain.TransitionInput) bool {
		return in.To == domain.TransactionStatusCompleted && in.ProviderStatus == providerStatusManual
	})).Return(nil)
	f.slots.EXPECT().ConfirmSlot(mock.Anything, slot.ID, tx.ID).Return(nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.transactions.EXPECT().LinkBooking(mock.Anything, tx.ID, mock.Anything).Return(nil)
	f.audit.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.AuditRecord) bool {
		return a.Action == domain.AuditForceBooking && a.TransactionID == tx.ID &&
			a.Operator == "admin" && a.Reason == "bank confirmed by phone"
	})).Return(nil)
	f.clients.EXPECT().GetByID(mock.Anything, client.ID).Return(client, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, client, mock.Anything).Return()

	b, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "bank confirmed by phone",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, tx.ID, *b.TransactionID)
}

func TestReconciliationService_ForceCreateBooking_ExpiredHoldRequiresOverride(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	slot := availableSlot(2500)
	tx := expiredTx(t, uuid.New().String(), 2500, domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slot.ID, ParticipantsCount: 1})

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.slots.EXPECT().GetByIDForUpdate(mock.Anything, slot.ID).Return(slot, nil)

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "late payment",
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestReconciliationService_ForceCreateBooking_OverrideReholdsFreeSlot(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	client := testClient()
	slot := availableSlot(2500)
	tx := expiredTx(t, client.ID, 2500, domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slot.ID, ParticipantsCount: 1})

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.slots.EXPECT().GetByIDForUpdate(mock.Anything, slot.ID).Return(slot, nil).Twice()
	f.slots.EXPECT().HoldSlot(mock.Anything, slot.ID, tx.ID, mock.Anything).Return(nil)
	f.transactions.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil)
	f.slots.EXPECT().ConfirmSlot(mock.Anything, slot.ID, tx.ID).Return(nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.transactions.EXPECT().LinkBooking(mock.Anything, tx.ID, mock.Anything).Return(nil)
	f.audit.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.clients.EXPECT().GetByID(mock.Anything, client.ID).Return(client, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, client, mock.Anything).Return()

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "late payment",
		Override:      true,
	})

	require.NoError(t, err)
}

func TestReconciliationService_ForceCreateBooking_SlotTakenByAnotherPayment(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	slot := availableSlot(2500)
	other := uuid.New().String()
	slot.Status = domain.SlotStatusHold
	slot.HoldTransactionID = &other
	tx := expiredTx(t, uuid.New().String(), 2500, domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slot.ID, ParticipantsCount: 1})

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.slots.EXPECT().GetByIDForUpdate(mock.Anything, slot.ID).Return(slot, nil)

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "late payment",
		Override:      true,
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestReconciliationService_ForceCreateBooking_GroupExpiredHold(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	group := openGroup(4, 0, 1500)
	tx := expiredTx(t, uuid.New().String(), 1500, domain.BookingIntent{Kind: domain.IntentGroup, GroupTrainingID: group.ID, ParticipantsCount: 1})
	tx.HoldReleased = true

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.groups.EXPECT().GetByID(mock.Anything, group.ID).Return(group, nil)

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "late payment",
	})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReconciliationService_ForceCreateBooking_NotPending(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	tx := pendingTx(t, uuid.New().String(), 2500, domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: uuid.New().String()})
	tx.Status = domain.TransactionStatusCompleted

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "double check",
	})

	assert.ErrorIs(t, err, domain.ErrTransactionNotPending)
}

func TestReconciliationService_RequiresOperatorAndReason(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	_, err := svc.ForceCreateBooking(context.Background(), domain.ForceBookingInput{TransactionID: uuid.New().String(), Operator: "admin"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CancelStuckTransaction(context.Background(), domain.CancelStuckInput{TransactionID: uuid.New().String(), Reason: "stuck"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconciliationService_CancelStuckTransaction(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	groupID := uuid.New().String()
	tx := expiredTx(t, uuid.New().String(), 3000, domain.BookingIntent{Kind: domain.IntentGroup, GroupTrainingID: groupID, ParticipantsCount: 2})

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.transactions.EXPECT().Transition(mock.Anything, domain.TransitionInput{
		ID:             tx.ID,
		From:           domain.TransactionStatusPending,
		To:             domain.TransactionStatusCancelled,
		ProviderStatus: providerStatusManualCancel,
	}).Return(nil)
	f.transactions.EXPECT().MarkHoldReleased(mock.Anything, tx.ID).Return(true, nil)
	f.groups.EXPECT().ReleaseSeats(mock.Anything, groupID, 2).Return(nil)
	f.audit.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.AuditRecord) bool {
		return a.Action == domain.AuditCancelTransaction && a.TransactionID == tx.ID
	})).Return(nil)
	f.cache.EXPECT().InvalidateGroups(mock.Anything).Return()

	got, err := svc.CancelStuckTransaction(context.Background(), domain.CancelStuckInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "client gave up",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCancelled, got.Status)
}

func TestReconciliationService_CancelStuckTransaction_AlreadySweptDoesNotReleaseTwice(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	groupID := uuid.New().String()
	tx := expiredTx(t, uuid.New().String(), 3000, domain.BookingIntent{Kind: domain.IntentGroup, GroupTrainingID: groupID, ParticipantsCount: 2})
	tx.HoldReleased = true

	f.inTx()
	f.transactions.EXPECT().GetByIDForUpdate(mock.Anything, tx.ID).Return(tx, nil)
	f.transactions.EXPECT().Transition(mock.Anything, mock.Anything).Return(nil)
	f.transactions.EXPECT().MarkHoldReleased(mock.Anything, tx.ID).Return(false, nil)
	f.audit.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().InvalidateGroups(mock.Anything).Return()

	_, err := svc.CancelStuckTransaction(context.Background(), domain.CancelStuckInput{
		TransactionID: tx.ID,
		Operator:      "admin",
		Reason:        "client gave up",
	})

	require.NoError(t, err)
}

func TestReconciliationService_CancelBooking_RefundsToWallet(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	client := testClient()
	groupID := uuid.New().String()
	txID := uuid.New().String()
	b := &domain.Booking{
		ID:                uuid.New().String(),
		ClientID:          client.ID,
		TransactionID:     &txID,
		BookingType:       domain.BookingTypeGroup,
		GroupTrainingID:   &groupID,
		Date:              time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		ParticipantsCount: 2,
		PriceTotal:        decimal.NewFromInt(3000),
		Status:            domain.BookingStatusConfirmed,
	}

	f.inTx()
	f.bookings.EXPECT().GetByIDForUpdate(mock.Anything, b.ID).Return(b, nil)
	f.bookings.EXPECT().UpdateStatus(mock.Anything, b.ID, domain.BookingStatusCancelled).Return(nil)
	f.groups.EXPECT().ReleaseSeats(mock.Anything, groupID, 2).Return(nil)
	f.wallets.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *domain.WalletEntry) bool {
		return e.Type == domain.WalletEntryRefund &&
			e.Amount.Equal(decimal.NewFromInt(3000)) &&
			e.Description == "Возврат за отмену тренировки 11.01.2026"
	})).Return(decimal.NewFromInt(3000), nil)
	f.cache.EXPECT().InvalidateGroups(mock.Anything).Return()
	f.clients.EXPECT().GetByID(mock.Anything, client.ID).Return(client, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, client, b).Return()

	got, err := svc.CancelBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestReconciliationService_CancelBooking_NotActive(t *testing.T) {
	f := newFixture(t)
	svc := newReconciliationService(f)

	b := &domain.Booking{ID: uuid.New().String(), Status: domain.BookingStatusRefunded}

	f.inTx()
	f.bookings.EXPECT().GetByIDForUpdate(mock.Anything, b.ID).Return(b, nil)

	_, err := svc.CancelBooking(context.Background(), b.ID)

	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}
