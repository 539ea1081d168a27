package domain

import (
	"fmt"
	"strings"
	"time"
)

type IntentKind string

const (
	IntentWalletTopUp IntentKind = "wallet_topup"
	IntentIndividual  IntentKind = "individual"
	IntentGroup       IntentKind = "group"
)

type PaymentMethod string

const (
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// BookingIntent хранится в provider_raw_data транзакции, чтобы webhook был самодостаточным.
type BookingIntent struct {
	Kind              IntentKind    `json:"kind"`
	SlotID            string        `json:"slot_id,omitempty"`
	GroupTrainingID   string        `json:"group_training_id,omitempty"`
	InstructorID      string        `json:"instructor_id,omitempty"`
	ParticipantsCount int           `json:"participants_count,omitempty"`
	ParticipantsNames []string      `json:"participants_names,omitempty"`
	SportType         SportType     `json:"sport_type,omitempty"`
	PaymentMethod     PaymentMethod `json:"payment_method,omitempty"`
}

func (i *BookingIntent) Validate() error {
	switch i.Kind {
	case IntentIndividual:
		if i.SlotID == "" {
			return fmt.Errorf("%w: slot_id is required", ErrValidation)
		}
		if i.ParticipantsCount == 0 {
			i.ParticipantsCount = 1
		}
	case IntentGroup:
		if i.GroupTrainingID == "" {
			return fmt.Errorf("%w: group_training_id is required", ErrValidation)
		}
		if i.ParticipantsCount <= 0 {
			return fmt.Errorf("%w: participants_count must be positive", ErrValidation)
		}
	case IntentWalletTopUp:
		return nil
	default:
		return fmt.Errorf("%w: unknown booking kind %q", ErrValidation, i.Kind)
	}

	if i.SportType != "" && !i.SportType.Valid() {
		return fmt.Errorf("%w: unknown sport type %q", ErrValidation, i.SportType)
	}
	if len(i.ParticipantsNames) > i.ParticipantsCount {
		return fmt.Errorf("%w: more names than participants", ErrValidation)
	}
	for n, name := range i.ParticipantsNames {
		i.ParticipantsNames[n] = strings.TrimSpace(name)
	}
	if i.PaymentMethod == "" {
		i.PaymentMethod = PaymentMethodBank
	}
	if i.PaymentMethod != PaymentMethodBank && i.PaymentMethod != PaymentMethodWallet {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, i.PaymentMethod)
	}

	return nil
}

// HoldResult - ответ booking-intent API.
type HoldResult struct {
	TransactionID string            `json:"transaction_id"`
	PaymentURL    string            `json:"payment_url,omitempty"`
	Status        TransactionStatus `json:"status"`
	HoldUntil     *time.Time        `json:"hold_until,omitempty"`
	BookingID     *string           `json:"booking_id,omitempty"`
}
