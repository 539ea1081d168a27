package service

import (
	"context"
	"testing"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_Register(t *testing.T) {
	f := newFixture(t)
	registrar := mocks.NewMockReferralRegistrar(t)
	svc := NewClientService(f.tx, f.repos(), registrar, f.log)

	chatID := int64(100500)
	f.inTx()
	f.clients.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Анна" && c.Phone == "+79990001122" && *c.TelegramChatID == chatID
	})).Return(nil)

	c, err := svc.Register(context.Background(), domain.RegisterClientInput{
		Name:           "  Анна ",
		Phone:          "+79990001122",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
}

func TestClientService_Register_WithReferrer(t *testing.T) {
	f := newFixture(t)
	registrar := mocks.NewMockReferralRegistrar(t)
	svc := NewClientService(f.tx, f.repos(), registrar, f.log)

	referrerID := uuid.New().String()
	f.inTx()
	f.clients.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	registrar.EXPECT().Register(mock.Anything, mock.Anything, referrerID).Return(&domain.ReferralTransaction{}, nil)

	_, err := svc.Register(context.Background(), domain.RegisterClientInput{Name: "Петр", ReferrerID: &referrerID})

	require.NoError(t, err)
}

func TestClientService_Register_ReferralErrorAbortsRegistration(t *testing.T) {
	f := newFixture(t)
	registrar := mocks.NewMockReferralRegistrar(t)
	svc := NewClientService(f.tx, f.repos(), registrar, f.log)

	referrerID := uuid.New().String()
	f.inTx()
	f.clients.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	registrar.EXPECT().Register(mock.Anything, mock.Anything, referrerID).Return(nil, domain.ErrClientNotFound)

	_, err := svc.Register(context.Background(), domain.RegisterClientInput{Name: "Петр", ReferrerID: &referrerID})

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_Register_EmptyName(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.tx, f.repos(), mocks.NewMockReferralRegistrar(t), f.log)

	_, err := svc.Register(context.Background(), domain.RegisterClientInput{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_GetWallet(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.tx, f.repos(), mocks.NewMockReferralRegistrar(t), f.log)

	client := testClient()
	wallet := &domain.Wallet{ClientID: client.ID, Balance: decimal.NewFromInt(1500)}
	f.clients.EXPECT().GetByID(mock.Anything, client.ID).Return(client, nil)
	f.wallets.EXPECT().Get(mock.Anything, client.ID, walletHistoryLimit).Return(wallet, nil)

	got, err := svc.GetWallet(context.Background(), client.ID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.Balance))
}

func TestClientService_ListBookings_UnknownClient(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.tx, f.repos(), mocks.NewMockReferralRegistrar(t), f.log)

	f.clients.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClientNotFound)

	_, err := svc.ListBookings(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
