package dto

import (
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
)

const dateLayout = time.DateOnly

type HoldResponse struct {
	TransactionID string  `json:"transaction_id"`
	PaymentURL    string  `json:"payment_url,omitempty"`
	Status        string  `json:"status"`
	HoldUntil     string  `json:"hold_until,omitempty"`
	BookingID     *string `json:"booking_id,omitempty"`
}

type ClientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type SlotResponse struct {
	ID           string `json:"id"`
	InstructorID string `json:"instructor_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	HoldUntil    string `json:"hold_until,omitempty"`
	Location     string `json:"location"`
	Price        string `json:"price"`
}

type GroupResponse struct {
	ID                  string  `json:"id"`
	SlotID              *string `json:"slot_id,omitempty"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	SportType           string  `json:"sport_type"`
	MaxParticipants     int     `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	FreeSeats           int     `json:"free_seats"`
	Status              string  `json:"status"`
	PricePerPerson      string  `json:"price_per_person"`
	Location            string  `json:"location"`
}

type BookingResponse struct {
	ID                string   `json:"id"`
	ClientID          string   `json:"client_id"`
	TransactionID     *string  `json:"transaction_id,omitempty"`
	BookingType       string   `json:"booking_type"`
	InstructorID      *string  `json:"instructor_id,omitempty"`
	SlotID            *string  `json:"slot_id,omitempty"`
	GroupTrainingID   *string  `json:"group_training_id,omitempty"`
	Date              string   `json:"date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	SportType         string   `json:"sport_type"`
	ParticipantsCount int      `json:"participants_count"`
	ParticipantsNames []string `json:"participants_names"`
	PriceTotal        string   `json:"price_total"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`
}

type TransactionResponse struct {
	ID                string  `json:"id"`
	ClientID          string  `json:"client_id"`
	Type              string  `json:"type"`
	Amount            string  `json:"amount"`
	Status            string  `json:"status"`
	Provider          string  `json:"provider"`
	ProviderPaymentID *string `json:"provider_payment_id,omitempty"`
	ProviderStatus    *string `json:"provider_status,omitempty"`
	Description       string  `json:"description"`
	BookingID         *string `json:"booking_id,omitempty"`
	HoldExpiresAt     string  `json:"hold_expires_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type WalletEntryResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Amount        string  `json:"amount"`
	BalanceAfter  string  `json:"balance_after"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Description   string  `json:"description"`
	CreatedAt     string  `json:"created_at"`
}

type WalletResponse struct {
	ClientID string                `json:"client_id"`
	Balance  string                `json:"balance"`
	Entries  []WalletEntryResponse `json:"entries"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func ToHoldResponse(r *domain.HoldResult) HoldResponse {
	return HoldResponse{
		TransactionID: r.TransactionID,
		PaymentURL:    r.PaymentURL,
		Status:        string(r.Status),
		HoldUntil:     formatTime(r.HoldUntil),
		BookingID:     r.BookingID,
	}
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.ScheduleSlot) SlotResponse {
	return SlotResponse{
		ID:           s.ID,
		InstructorID: s.InstructorID,
		Date:         s.Date.Format(dateLayout),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Status:       string(s.Status),
		HoldUntil:    formatTime(s.HoldUntil),
		Location:     s.Location,
		Price:        s.Price.StringFixed(2),
	}
}

func ToGroupResponse(g *domain.GroupTraining) GroupResponse {
	return GroupResponse{
		ID:                  g.ID,
		SlotID:              g.SlotID,
		Date:                g.Date.Format(dateLayout),
		StartTime:           g.StartTime,
		EndTime:             g.EndTime,
		SportType:           string(g.SportType),
		MaxParticipants:     g.MaxParticipants,
		CurrentParticipants: g.CurrentParticipants,
		FreeSeats:           g.FreeSeats(),
		Status:              string(g.Status),
		PricePerPerson:      g.PricePerPerson.StringFixed(2),
		Location:            g.Location,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	names := b.ParticipantsNames
	if names == nil {
		names = []string{}
	}

	return BookingResponse{
		ID:                b.ID,
		ClientID:          b.ClientID,
		TransactionID:     b.TransactionID,
		BookingType:       string(b.BookingType),
		InstructorID:      b.InstructorID,
		SlotID:            b.SlotID,
		GroupTrainingID:   b.GroupTrainingID,
		Date:              b.Date.Format(dateLayout),
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		SportType:         string(b.SportType),
		ParticipantsCount: b.ParticipantsCount,
		ParticipantsNames: names,
		PriceTotal:        b.PriceTotal.StringFixed(2),
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		ClientID:          t.ClientID,
		Type:              string(t.Type),
		Amount:            t.Amount.StringFixed(2),
		Status:            string(t.Status),
		Provider:          t.Provider,
		ProviderPaymentID: t.ProviderPaymentID,
		ProviderStatus:    t.ProviderStatus,
		Description:       t.Description,
		BookingID:         t.BookingID,
		HoldExpiresAt:     formatTime(t.HoldExpiresAt),
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToWalletResponse(w *domain.Wallet) WalletResponse {
	entries := make([]WalletEntryResponse, 0, len(w.Entries))
	for _, e := range w.Entries {
		entries = append(entries, WalletEntryResponse{
			ID:            e.ID,
			Type:          string(e.Type),
			Amount:        e.Amount.StringFixed(2),
			BalanceAfter:  e.BalanceAfter.StringFixed(2),
			TransactionID: e.TransactionID,
			Description:   e.Description,
			CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		})
	}

	return WalletResponse{
		ClientID: w.ClientID,
		Balance:  w.Balance.StringFixed(2),
		Entries:  entries,
	}
}
