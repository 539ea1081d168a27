package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusHold      SlotStatus = "hold"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// ScheduleSlot - индивидуальное время инструктора.
type ScheduleSlot struct {
	ID                string          `json:"id"`
	InstructorID      string          `json:"instructor_id"`
	Date              time.Time       `json:"date"`
	StartTime         string          `json:"start_time"`
	EndTime           string          `json:"end_time"`
	Status            SlotStatus      `json:"status"`
	HoldUntil         *time.Time      `json:"hold_until,omitempty"`
	HoldTransactionID *string         `json:"hold_transaction_id,omitempty"`
	Location          string          `json:"location"`
	Price             decimal.Decimal `json:"price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// HoldExpired сообщает, что hold истек и слот фактически свободен.
func (s *ScheduleSlot) HoldExpired(now time.Time) bool {
	return s.Status == SlotStatusHold && s.HoldUntil != nil && s.HoldUntil.Before(now)
}

// HeldBy - слот удерживается указанной транзакцией (истекший hold тоже считается).
func (s *ScheduleSlot) HeldBy(transactionID string) bool {
	return s.Status == SlotStatusHold && s.HoldTransactionID != nil && *s.HoldTransactionID == transactionID
}

type CreateSlotInput struct {
	InstructorID string
	Date         time.Time
	StartTime    string
	EndTime      string
	Location     string
	Price        decimal.Decimal
}

type SlotFilter struct {
	InstructorID string
	Date         *time.Time
}
