package ports

import (
	"context"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/payment"
)

type PaymentProvider = payment.Provider

type PaymentProviders interface {
	Get(name string) (payment.Provider, error)
}

type GroupCache interface {
	GetGroups(ctx context.Context, key string) ([]*domain.GroupTraining, bool)
	SetGroups(ctx context.Context, key string, groups []*domain.GroupTraining)
	InvalidateGroups(ctx context.Context)
}

// ReferralTrigger - входы реферального движка, безопасные для повторных вызовов.
type ReferralTrigger interface {
	OnDeposit(ctx context.Context, clientID string) error
	OnTrainingCompleted(ctx context.Context, clientID string) error
}

type ReferralRegistrar interface {
	Register(ctx context.Context, refereeID, referrerID string) (*domain.ReferralTransaction, error)
}
