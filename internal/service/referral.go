package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type ReferralBonuses struct {
	Referrer decimal.Decimal
	Referee  decimal.Decimal
}

// ReferralService ведет связь registered -> deposited -> trained -> completed.
// Каждый шаг - условный UPDATE, поэтому повторные и параллельные вызовы безопасны.
type ReferralService struct {
	tx       ports.Transactor
	repos    Repos
	notifier ports.Notifier
	bonuses  ReferralBonuses
	logger   logger.Logger
	async    asyncRunner
}

func NewReferralService(
	tx ports.Transactor,
	repos Repos,
	notifier ports.Notifier,
	bonuses ReferralBonuses,
	logger logger.Logger,
) *ReferralService {
	return &ReferralService{
		tx:       tx,
		repos:    repos,
		notifier: notifier,
		bonuses:  bonuses,
		logger:   logger,
		async:    goAsync,
	}
}

func (s *ReferralService) Register(ctx context.Context, refereeID, referrerID string) (*domain.ReferralTransaction, error) {
	referrerID = strings.TrimSpace(referrerID)
	if referrerID == "" {
		return nil, fmt.Errorf("%w: referrer_id is required", domain.ErrValidation)
	}
	if referrerID == refereeID {
		return nil, fmt.Errorf("%w: client cannot refer themselves", domain.ErrValidation)
	}

	if _, err := s.repos.Clients.GetByID(ctx, referrerID); err != nil {
		return nil, fmt.Errorf("check referrer: %w", err)
	}

	rt := &domain.ReferralTransaction{
		ID:            uuid.New().String(),
		ReferrerID:    referrerID,
		RefereeID:     refereeID,
		Status:        domain.ReferralRegistered,
		ReferrerBonus: s.bonuses.Referrer,
		RefereeBonus:  s.bonuses.Referee,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repos.Referrals.Create(ctx, rt); err != nil {
		return nil, err
	}

	s.logger.Info("referral registered",
		logger.String("referral_id", rt.ID),
		logger.String("referrer_id", referrerID),
		logger.String("referee_id", refereeID),
	)

	return rt, nil
}

// OnDeposit срабатывает после зачисления пополнения. Бонусов на этом шаге нет.
func (s *ReferralService) OnDeposit(ctx context.Context, clientID string) error {
	_, err := s.deposit(ctx, clientID)
	return err
}

func (s *ReferralService) deposit(ctx context.Context, clientID string) (bool, error) {
	rt, err := s.repos.Referrals.Advance(ctx, clientID, domain.ReferralRegistered, domain.ReferralDeposited)
	if err != nil || rt == nil {
		return false, err
	}

	s.logger.Info("referral deposited",
		logger.String("referral_id", rt.ID),
		logger.String("referee_id", clientID),
	)

	return true, nil
}

// OnTrainingCompleted переводит связь в trained и сразу выплачивает оба бонуса.
// Все шаги в одной транзакции БД: частичная выплата невозможна.
func (s *ReferralService) OnTrainingCompleted(ctx context.Context, clientID string) error {
	_, err := s.payBonuses(ctx, clientID)
	return err
}

func (s *ReferralService) payBonuses(ctx context.Context, clientID string) (bool, error) {
	var (
		rt      *domain.ReferralTransaction
		credits []*domain.WalletEntry
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		rt, err = s.repos.Referrals.Advance(ctx, clientID, domain.ReferralDeposited, domain.ReferralTrained)
		if err != nil || rt == nil {
			return err
		}

		credits = []*domain.WalletEntry{
			s.bonusEntry(rt.ReferrerID, rt.ReferrerBonus, "Бонус за приглашенного друга"),
			s.bonusEntry(rt.RefereeID, rt.RefereeBonus, "Бонус за первую тренировку по приглашению"),
		}
		for _, e := range credits {
			if !e.Amount.IsPositive() {
				continue
			}
			if e.BalanceAfter, err = s.repos.Wallets.Append(ctx, e); err != nil {
				return fmt.Errorf("credit referral bonus: %w", err)
			}
		}

		return s.repos.Referrals.MarkBonusesPaid(ctx, rt.ID)
	})
	if err != nil || rt == nil {
		return false, err
	}

	s.logger.Info("referral bonuses paid",
		logger.String("referral_id", rt.ID),
		logger.String("referrer_id", rt.ReferrerID),
		logger.String("referee_id", rt.RefereeID),
	)

	bg := context.WithoutCancel(ctx)
	s.async(func() {
		for _, e := range credits {
			if !e.Amount.IsPositive() {
				continue
			}
			client, err := s.repos.Clients.GetByID(bg, e.ClientID)
			if err != nil {
				s.logger.Error("failed to get client for bonus notification",
					logger.String("client_id", e.ClientID),
					logger.String("error", err.Error()),
				)
				continue
			}
			s.notifier.NotifyWalletCredited(bg, client, e)
		}
	})

	return true, nil
}

func (s *ReferralService) bonusEntry(clientID string, amount decimal.Decimal, description string) *domain.WalletEntry {
	return &domain.WalletEntry{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Type:        domain.WalletEntryBonus,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// Reconcile добирает триггеры, которые не сработали по событию. Ошибка одного
// приглашенного не останавливает остальных; возвращается число реальных переходов.
func (s *ReferralService) Reconcile(ctx context.Context) (int, error) {
	var (
		advanced int
		errs     []error
	)

	run := func(stage string, list func(context.Context) ([]string, error), step func(context.Context, string) (bool, error)) {
		ids, err := list(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("list %s candidates: %w", stage, err))
			return
		}
		for _, id := range ids {
			ok, err := step(ctx, id)
			if err != nil {
				s.logger.Error("referral trigger failed",
					logger.String("stage", stage),
					logger.String("referee_id", id),
					logger.String("error", err.Error()),
				)
				errs = append(errs, fmt.Errorf("%s trigger for %s: %w", stage, id, err))
				continue
			}
			if ok {
				advanced++
			}
		}
	}

	run("deposit", s.repos.Referrals.ListDepositCandidates, s.deposit)
	run("training", s.repos.Referrals.ListTrainingCandidates, s.payBonuses)

	if advanced > 0 {
		s.logger.Info("referrals reconciled", logger.Int("advanced", advanced))
	}

	return advanced, errors.Join(errs...)
}
