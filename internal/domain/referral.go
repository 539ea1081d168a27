package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralStatus string

const (
	ReferralRegistered ReferralStatus = "registered"
	ReferralDeposited  ReferralStatus = "deposited"
	ReferralTrained    ReferralStatus = "trained"
	ReferralCompleted  ReferralStatus = "completed"
)

type ReferralTransaction struct {
	ID                string          `json:"id"`
	ReferrerID        string          `json:"referrer_id"`
	RefereeID         string          `json:"referee_id"`
	Status            ReferralStatus  `json:"status"`
	ReferrerBonus     decimal.Decimal `json:"referrer_bonus"`
	RefereeBonus      decimal.Decimal `json:"referee_bonus"`
	ReferrerBonusPaid bool            `json:"referrer_bonus_paid"`
	RefereeBonusPaid  bool            `json:"referee_bonus_paid"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
