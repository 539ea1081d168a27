package domain

import "time"

type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterClientInput struct {
	Name           string
	Phone          string
	TelegramChatID *int64
	ReferrerID     *string
}
