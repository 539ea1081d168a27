package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus - каноничный статус уведомления банка.
type PaymentStatus string

const (
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// PaymentNotification - уведомление провайдера, приведенное к единой форме.
// Ядро не знает про имена полей конкретного банка.
type PaymentNotification struct {
	OrderID   string
	PaymentID string
	Status    PaymentStatus
	RawStatus string
	// Amount может отсутствовать в старых форматах.
	Amount *decimal.Decimal
}

// TargetStatus возвращает статус транзакции для уведомления; false - уведомление не меняет статус.
func (n *PaymentNotification) TargetStatus() (TransactionStatus, bool) {
	switch n.Status {
	case PaymentSuccess:
		return TransactionStatusCompleted, true
	case PaymentFailed:
		return TransactionStatusFailed, true
	case PaymentRefunded:
		return TransactionStatusRefunded, true
	default:
		return "", false
	}
}

type InitPaymentParams struct {
	TransactionID string
	ClientID      string
	Amount        decimal.Decimal
	Description   string
}
