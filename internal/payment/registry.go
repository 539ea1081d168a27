package payment

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
)

// Provider - граница адаптера банка. Ядро видит только каноничное уведомление.
type Provider interface {
	Name() string
	// VerifySignature возвращает domain.ErrVerificationKeyMissing, если ключ не настроен.
	VerifySignature(payload []byte, headers http.Header) error
	Parse(payload []byte) (*domain.PaymentNotification, error)
	InitPayment(ctx context.Context, params domain.InitPaymentParams) (string, error)
}

type Registry struct {
	providers map[string]Provider
	def       string
}

func NewRegistry(def string, providers ...Provider) (*Registry, error) {
	r := &Registry{
		providers: make(map[string]Provider, len(providers)),
		def:       def,
	}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}

	if _, ok := r.providers[def]; !ok {
		return nil, fmt.Errorf("%w: default provider %q is not registered", domain.ErrUnknownProvider, def)
	}

	return r, nil
}

// Get возвращает адаптер по имени; пустое имя - провайдер по умолчанию.
func (r *Registry) Get(name string) (Provider, error) {
	if name == "" {
		name = r.def
	}

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, name)
	}

	return p, nil
}
