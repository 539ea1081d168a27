package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletEntryType string

const (
	WalletEntryRefill  WalletEntryType = "refill"
	WalletEntryPayment WalletEntryType = "payment"
	WalletEntryBonus   WalletEntryType = "bonus"
	WalletEntryRefund  WalletEntryType = "refund"
)

// WalletEntry - запись append-only ledger кошелька. Баланс кошелька = сумма записей.
type WalletEntry struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	Type          WalletEntryType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Wallet struct {
	ClientID string          `json:"client_id"`
	Balance  decimal.Decimal `json:"balance"`
	Entries  []WalletEntry   `json:"entries"`
}
