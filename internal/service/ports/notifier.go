package ports

import (
	"context"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
)

// Notifier - fire-and-forget: ошибки доставки не откатывают финансовую операцию.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, client *domain.Client, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, client *domain.Client, booking *domain.Booking)
	NotifyPaymentFailed(ctx context.Context, client *domain.Client, tx *domain.Transaction)
	NotifyWalletCredited(ctx context.Context, client *domain.Client, entry *domain.WalletEntry)
}
