package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to TransactionStatus
		want     bool
	}{
		{TransactionStatusPending, TransactionStatusCompleted, true},
		{TransactionStatusPending, TransactionStatusFailed, true},
		{TransactionStatusPending, TransactionStatusCancelled, true},
		{TransactionStatusCompleted, TransactionStatusRefunded, true},
		{TransactionStatusCompleted, TransactionStatusCompleted, false},
		{TransactionStatusCompleted, TransactionStatusFailed, false},
		{TransactionStatusFailed, TransactionStatusCompleted, false},
		{TransactionStatusCancelled, TransactionStatusCompleted, false},
		{TransactionStatusRefunded, TransactionStatusCompleted, false},
		{TransactionStatusPending, TransactionStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingIntent_Validate(t *testing.T) {
	t.Run("individual defaults", func(t *testing.T) {
		i := BookingIntent{Kind: IntentIndividual, SlotID: "slot"}
		require.NoError(t, i.Validate())
		assert.Equal(t, 1, i.ParticipantsCount)
		assert.Equal(t, PaymentMethodBank, i.PaymentMethod)
	})

	t.Run("group trims names", func(t *testing.T) {
		i := BookingIntent{Kind: IntentGroup, GroupTrainingID: "g", ParticipantsCount: 2, ParticipantsNames: []string{" Анна ", "Петр"}}
		require.NoError(t, i.Validate())
		assert.Equal(t, []string{"Анна", "Петр"}, i.ParticipantsNames)
	})

	invalid := map[string]BookingIntent{
		"no slot":         {Kind: IntentIndividual},
		"no group":        {Kind: IntentGroup, ParticipantsCount: 1},
		"no participants": {Kind: IntentGroup, GroupTrainingID: "g"},
		"too many names":  {Kind: IntentGroup, GroupTrainingID: "g", ParticipantsCount: 1, ParticipantsNames: []string{"a", "b"}},
		"unknown sport":   {Kind: IntentIndividual, SlotID: "s", SportType: "curling"},
		"unknown payment": {Kind: IntentIndividual, SlotID: "s", PaymentMethod: "cash"},
		"unknown kind":    {Kind: "party"},
	}
	for name, i := range invalid {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, i.Validate(), ErrValidation)
		})
	}
}

func TestTransaction_Intent(t *testing.T) {
	raw, err := json.Marshal(BookingIntent{Kind: IntentGroup, GroupTrainingID: "g", ParticipantsCount: 3})
	require.NoError(t, err)

	tx := &Transaction{ProviderRawData: raw}
	intent, err := tx.Intent()
	require.NoError(t, err)
	assert.Equal(t, 3, intent.ParticipantsCount)

	_, err = (&Transaction{ProviderRawData: []byte("{")}).Intent()
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestPaymentNotification_TargetStatus(t *testing.T) {
	cases := map[PaymentStatus]TransactionStatus{
		PaymentSuccess:  TransactionStatusCompleted,
		PaymentFailed:   TransactionStatusFailed,
		PaymentRefunded: TransactionStatusRefunded,
	}
	for status, want := range cases {
		got, ok := (&PaymentNotification{Status: status}).TargetStatus()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := (&PaymentNotification{Status: PaymentPending}).TargetStatus()
	assert.False(t, ok)
}

func TestGroupTraining_FreeSeats(t *testing.T) {
	g := &GroupTraining{MaxParticipants: 4, CurrentParticipants: 3, PricePerPerson: decimal.NewFromInt(1)}
	assert.Equal(t, 1, g.FreeSeats())

	g.CurrentParticipants = 5
	assert.Equal(t, 0, g.FreeSeats())
}

func TestGroupStatus_AcceptsSeats(t *testing.T) {
	assert.True(t, GroupStatusOpen.AcceptsSeats())
	assert.True(t, GroupStatusConfirmed.AcceptsSeats())
	assert.False(t, GroupStatusCancelled.AcceptsSeats())
}
