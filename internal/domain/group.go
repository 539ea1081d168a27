package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GroupStatus string

const (
	GroupStatusOpen      GroupStatus = "open"
	GroupStatusConfirmed GroupStatus = "confirmed"
	GroupStatusCancelled GroupStatus = "cancelled"
)

type SportType string

const (
	SportSki       SportType = "ski"
	SportSnowboard SportType = "snowboard"
)

func (s SportType) Valid() bool {
	return s == SportSki || s == SportSnowboard
}

type GroupTraining struct {
	ID                  string          `json:"id"`
	SlotID              *string         `json:"slot_id,omitempty"`
	Date                time.Time       `json:"date"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	SportType           SportType       `json:"sport_type"`
	MaxParticipants     int             `json:"max_participants"`
	CurrentParticipants int             `json:"current_participants"`
	Status              GroupStatus     `json:"status"`
	PricePerPerson      decimal.Decimal `json:"price_per_person"`
	Location            string          `json:"location"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// AcceptsSeats: набор идет, пока группа не отменена. confirmed означает, что
// тренировка состоится, свободные места при этом продаются дальше.
func (s GroupStatus) AcceptsSeats() bool {
	return s == GroupStatusOpen || s == GroupStatusConfirmed
}

func (g *GroupTraining) FreeSeats() int {
	if free := g.MaxParticipants - g.CurrentParticipants; free > 0 {
		return free
	}
	return 0
}

type CreateGroupInput struct {
	SlotID          *string
	Date            time.Time
	StartTime       string
	EndTime         string
	SportType       SportType
	MaxParticipants int
	PricePerPerson  decimal.Decimal
	Location        string
}
