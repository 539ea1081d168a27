package payment

import (
	"context"
	"net/http"
	"testing"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
}

func (s stubProvider) Name() string {
	return s.name
}

func (s stubProvider) VerifySignature([]byte, http.Header) error {
	return nil
}

func (s stubProvider) Parse([]byte) (*domain.PaymentNotification, error) {
	return &domain.PaymentNotification{}, nil
}

func (s stubProvider) InitPayment(context.Context, domain.InitPaymentParams) (string, error) {
	return "", nil
}

func TestRegistry_Get(t *testing.T) {
	r, err := NewRegistry("bank", stubProvider{name: "bank"}, stubProvider{name: "stripe"})
	require.NoError(t, err)

	p, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "bank", p.Name())

	p, err = r.Get("stripe")
	require.NoError(t, err)
	assert.Equal(t, "stripe", p.Name())

	_, err = r.Get("paypal")
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestNewRegistry_UnknownDefault(t *testing.T) {
	_, err := NewRegistry("bank", stubProvider{name: "stripe"})

	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}
