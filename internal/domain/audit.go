package domain

import "time"

type AuditAction string

const (
	AuditForceBooking      AuditAction = "force_booking"
	AuditCancelTransaction AuditAction = "cancel_transaction"
)

// AuditRecord - след ручных действий оператора над зависшими оплатами.
type AuditRecord struct {
	ID            string      `json:"id"`
	Action        AuditAction `json:"action"`
	TransactionID string      `json:"transaction_id"`
	Operator      string      `json:"operator"`
	Reason        string      `json:"reason"`
	CreatedAt     time.Time   `json:"created_at"`
}

type ForceBookingInput struct {
	TransactionID string
	Operator      string
	Reason        string
	// Override разрешает бронь по истекшему hold, если слот не занят другой оплатой.
	Override bool
}

type CancelStuckInput struct {
	TransactionID string
	Operator      string
	Reason        string
}
