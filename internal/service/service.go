package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
)

// Repos - хранилища, с которыми работают сервисы бронирования.
type Repos struct {
	Clients      ports.ClientRepo
	Slots        ports.SlotRepo
	Groups       ports.GroupRepo
	Transactions ports.TransactionRepo
	Bookings     ports.BookingRepo
	Wallets      ports.WalletRepo
	Referrals    ports.ReferralRepo
	Audit        ports.AuditRepo
}

// asyncRunner запускает побочные эффекты после commit (уведомления, события, кэш).
type asyncRunner func(fn func())

func goAsync(fn func()) {
	go fn()
}

const (
	providerStatusManual       = "MANUAL"
	providerStatusManualCancel = "MANUAL_CANCEL"
	providerStatusInitFailed   = "INIT_FAILED"
	providerStatusWallet       = "WALLET"

	providerWallet = "wallet"
)

func parseClock(value, field string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be HH:MM", domain.ErrValidation, field)
	}
	return t, nil
}

func validateTimeRange(start, end string) error {
	from, err := parseClock(start, "start_time")
	if err != nil {
		return err
	}
	to, err := parseClock(end, "end_time")
	if err != nil {
		return err
	}
	if !to.After(from) {
		return fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	return nil
}

func requireReason(operator, reason string) error {
	if strings.TrimSpace(operator) == "" {
		return fmt.Errorf("%w: operator is required", domain.ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}
	return nil
}
