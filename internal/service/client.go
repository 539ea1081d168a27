package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const walletHistoryLimit = 50

type ClientService struct {
	tx        ports.Transactor
	repos     Repos
	referrals ports.ReferralRegistrar
	logger    logger.Logger
}

func NewClientService(tx ports.Transactor, repos Repos, referrals ports.ReferralRegistrar, logger logger.Logger) *ClientService {
	return &ClientService{
		tx:        tx,
		repos:     repos,
		referrals: referrals,
		logger:    logger,
	}
}

// Register создает клиента; реферальная связь создается в той же транзакции.
func (s *ClientService) Register(ctx context.Context, in domain.RegisterClientInput) (*domain.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	c := &domain.Client{
		ID:             uuid.New().String(),
		Name:           name,
		Phone:          strings.TrimSpace(in.Phone),
		TelegramChatID: in.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repos.Clients.Create(ctx, c); err != nil {
			return err
		}
		if in.ReferrerID == nil {
			return nil
		}
		_, err := s.referrals.Register(ctx, c.ID, *in.ReferrerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("client registered", logger.String("client_id", c.ID))

	return c, nil
}

func (s *ClientService) GetWallet(ctx context.Context, clientID string) (*domain.Wallet, error) {
	if _, err := s.repos.Clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repos.Wallets.Get(ctx, clientID, walletHistoryLimit)
}

func (s *ClientService) ListBookings(ctx context.Context, clientID string) ([]*domain.Booking, error) {
	if _, err := s.repos.Clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repos.Bookings.ListByClient(ctx, clientID)
}
