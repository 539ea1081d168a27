package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypePayment TransactionType = "payment"
	TransactionTypePayout  TransactionType = "payout"
	TransactionTypeRefund  TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// transitions - единственный источник правды о том, куда может двигаться статус.
// Статус никогда не откатывается назад; всё, чего нет в таблице, - no-op.
var transitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusPending: {
		TransactionStatusCompleted,
		TransactionStatusFailed,
		TransactionStatusCancelled,
	},
	TransactionStatusCompleted: {
		TransactionStatusRefunded,
	},
}

// CanTransition - idempotency guard для всех мутирующих входов (webhook, админка, компенсация hold).
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s TransactionStatus) Terminal() bool {
	return s != TransactionStatusPending
}

type Transaction struct {
	ID                string            `json:"id"`
	ClientID          string            `json:"client_id"`
	Type              TransactionType   `json:"type"`
	Amount            decimal.Decimal   `json:"amount"`
	Status            TransactionStatus `json:"status"`
	Provider          string            `json:"provider"`
	ProviderPaymentID *string           `json:"provider_payment_id,omitempty"`
	ProviderStatus    *string           `json:"provider_status,omitempty"`
	Description       string            `json:"description"`
	ProviderRawData   json.RawMessage   `json:"provider_raw_data"`
	PaymentURL        *string           `json:"payment_url,omitempty"`
	BookingID         *string           `json:"booking_id,omitempty"`
	HoldExpiresAt     *time.Time        `json:"hold_expires_at,omitempty"`
	HoldReleased      bool              `json:"hold_released"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Intent разбирает намерение бронирования, сохраненное при создании транзакции.
func (t *Transaction) Intent() (*BookingIntent, error) {
	var intent BookingIntent
	if err := json.Unmarshal(t.ProviderRawData, &intent); err != nil {
		return nil, fmt.Errorf("%w: transaction %s intent: %v", ErrMalformedPayload, t.ID, err)
	}
	return &intent, nil
}

// TransitionInput - запись перехода статуса в ledger.
type TransitionInput struct {
	ID                string
	From              TransactionStatus
	To                TransactionStatus
	ProviderStatus    string
	ProviderPaymentID string
}
