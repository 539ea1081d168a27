package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingType string

const (
	BookingTypeIndividual BookingType = "individual"
	BookingTypeGroup      BookingType = "group"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	TransactionID     *string         `json:"transaction_id,omitempty"`
	BookingType       BookingType     `json:"booking_type"`
	InstructorID      *string         `json:"instructor_id,omitempty"`
	SlotID            *string         `json:"slot_id,omitempty"`
	GroupTrainingID   *string         `json:"group_training_id,omitempty"`
	Date              time.Time       `json:"date"`
	StartTime         string          `json:"start_time"`
	EndTime           string          `json:"end_time"`
	SportType         SportType       `json:"sport_type"`
	ParticipantsCount int             `json:"participants_count"`
	ParticipantsNames []string        `json:"participants_names"`
	PriceTotal        decimal.Decimal `json:"price_total"`
	Status            BookingStatus   `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
