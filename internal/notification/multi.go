package notification

import (
	"context"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
)

type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, client *domain.Client, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, client *domain.Client, booking *domain.Booking)
	NotifyPaymentFailed(ctx context.Context, client *domain.Client, tx *domain.Transaction)
	NotifyWalletCredited(ctx context.Context, client *domain.Client, entry *domain.WalletEntry)
}

// Multi рассылает уведомление всем получателям по очереди.
type Multi []Notifier

func (m Multi) NotifyBookingConfirmed(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, client, booking)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, client, booking)
	}
}

func (m Multi) NotifyPaymentFailed(ctx context.Context, client *domain.Client, tx *domain.Transaction) {
	for _, n := range m {
		n.NotifyPaymentFailed(ctx, client, tx)
	}
}

func (m Multi) NotifyWalletCredited(ctx context.Context, client *domain.Client, entry *domain.WalletEntry) {
	for _, n := range m {
		n.NotifyWalletCredited(ctx, client, entry)
	}
}
