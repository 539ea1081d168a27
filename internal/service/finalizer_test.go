package service

import (
	"context"
	"testing"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinalizer_ReleaseHold_GroupReleasesSeatsOnce(t *testing.T) {
	f := newFixture(t)
	fin := NewFinalizer(f.repos())

	groupID := uuid.New().String()
	intent := &domain.BookingIntent{Kind: domain.IntentGroup, GroupTrainingID: groupID, ParticipantsCount: 3}
	tx := pendingTx(t, uuid.New().String(), 4500, *intent)

	f.transactions.EXPECT().MarkHoldReleased(mock.Anything, tx.ID).Return(true, nil).Once()
	f.groups.EXPECT().ReleaseSeats(mock.Anything, groupID, 3).Return(nil).Once()
	require.NoError(t, fin.ReleaseHold(context.Background(), tx, intent))
	assert.True(t, tx.HoldReleased)

	f.transactions.EXPECT().MarkHoldReleased(mock.Anything, tx.ID).Return(false, nil).Once()
	require.NoError(t, fin.ReleaseHold(context.Background(), tx, intent))
}

func TestFinalizer_ReleaseHold_SlotOwnedByAnotherTransaction(t *testing.T) {
	f := newFixture(t)
	fin := NewFinalizer(f.repos())

	slotID := uuid.New().String()
	intent := &domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slotID, ParticipantsCount: 1}
	tx := pendingTx(t, uuid.New().String(), 2500, *intent)

	// hold уже перехвачен другой оплатой, репозиторий ничего не меняет
	f.slots.EXPECT().ReleaseSlot(mock.Anything, slotID, tx.ID).Return(false, nil)

	require.NoError(t, fin.ReleaseHold(context.Background(), tx, intent))
}

func TestFinalizer_Finalize_SlotTakenByAnotherPayment(t *testing.T) {
	f := newFixture(t)
	fin := NewFinalizer(f.repos())

	slot := availableSlot(2500)
	intent := &domain.BookingIntent{Kind: domain.IntentIndividual, SlotID: slot.ID, ParticipantsCount: 1}
	tx := pendingTx(t, uuid.New().String(), 2500, *intent)

	f.slots.EXPECT().GetByIDForUpdate(mock.Anything, slot.ID).Return(slot, nil)
	f.slots.EXPECT().ConfirmSlot(mock.Anything, slot.ID, tx.ID).Return(domain.ErrSlotUnavailable)

	_, err := fin.Finalize(context.Background(), tx, intent)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestFinalizer_Finalize_UnknownKind(t *testing.T) {
	f := newFixture(t)
	fin := NewFinalizer(f.repos())

	tx := pendingTx(t, uuid.New().String(), 100, domain.BookingIntent{})

	_, err := fin.Finalize(context.Background(), tx, &domain.BookingIntent{Kind: "party"})

	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestFinalizer_ReleaseBooking(t *testing.T) {
	f := newFixture(t)
	fin := NewFinalizer(f.repos())

	slotID := uuid.New().String()
	groupID := uuid.New().String()

	f.slots.EXPECT().ReleaseBookedSlot(mock.Anything, slotID).Return(nil)
	f.groups.EXPECT().ReleaseSeats(mock.Anything, groupID, 2).Return(nil)

	require.NoError(t, fin.ReleaseBooking(context.Background(), &domain.Booking{
		BookingType: domain.BookingTypeIndividual,
		SlotID:      &slotID,
	}))
	require.NoError(t, fin.ReleaseBooking(context.Background(), &domain.Booking{
		BookingType:       domain.BookingTypeGroup,
		GroupTrainingID:   &groupID,
		ParticipantsCount: 2,
	}))
}
