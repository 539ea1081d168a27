package dto

import "github.com/shopspring/decimal"

type CreateHoldRequest struct {
	ClientID          string   `json:"client_id" binding:"required,uuid"`
	Kind              string   `json:"kind" binding:"required,oneof=individual group"`
	SlotID            string   `json:"slot_id" binding:"omitempty,uuid"`
	GroupTrainingID   string   `json:"group_training_id" binding:"omitempty,uuid"`
	ParticipantsCount int      `json:"participants_count" binding:"gte=0"`
	ParticipantsNames []string `json:"participants_names"`
	SportType         string   `json:"sport_type"`
	PaymentMethod     string   `json:"payment_method"`
}

type TopUpRequest struct {
	ClientID string          `json:"client_id" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"`
}

type CreateClientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
	ReferrerID     *string `json:"referrer_id" binding:"omitempty,uuid"`
}

type CreateSlotRequest struct {
	InstructorID string          `json:"instructor_id" binding:"required,uuid"`
	Date         string          `json:"date" binding:"required"`
	StartTime    string          `json:"start_time" binding:"required"`
	EndTime      string          `json:"end_time" binding:"required"`
	Location     string          `json:"location"`
	Price        decimal.Decimal `json:"price"`
}

type CreateGroupRequest struct {
	SlotID          *string         `json:"slot_id" binding:"omitempty,uuid"`
	Date            string          `json:"date" binding:"required"`
	StartTime       string          `json:"start_time" binding:"required"`
	EndTime         string          `json:"end_time" binding:"required"`
	SportType       string          `json:"sport_type"`
	MaxParticipants int             `json:"max_participants" binding:"required,gt=0"`
	PricePerPerson  decimal.Decimal `json:"price_per_person"`
	Location        string          `json:"location"`
}

type ForceBookingRequest struct {
	Operator string `json:"operator" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
	Override bool   `json:"override"`
}

type CancelTransactionRequest struct {
	Operator string `json:"operator" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}
