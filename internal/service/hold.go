package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type HoldService struct {
	tx        ports.Transactor
	repos     Repos
	providers ports.PaymentProviders
	finalizer *Finalizer
	cache     ports.GroupCache
	notifier  ports.Notifier
	holdTTL   time.Duration
	logger    logger.Logger
	async     asyncRunner
}

func NewHoldService(
	tx ports.Transactor,
	repos Repos,
	providers ports.PaymentProviders,
	finalizer *Finalizer,
	cache ports.GroupCache,
	notifier ports.Notifier,
	holdTTL time.Duration,
	logger logger.Logger,
) *HoldService {
	return &HoldService{
		tx:        tx,
		repos:     repos,
		providers: providers,
		finalizer: finalizer,
		cache:     cache,
		notifier:  notifier,
		holdTTL:   holdTTL,
		logger:    logger,
		async:     goAsync,
	}
}

// CreateHold резервирует слот или места и открывает платежную сессию.
// Конфликт возвращается до обращения к банку.
func (s *HoldService) CreateHold(ctx context.Context, clientID string, intent domain.BookingIntent) (*domain.HoldResult, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if intent.Kind == domain.IntentWalletTopUp {
		return nil, fmt.Errorf("%w: wallet top-up is created via the top-up endpoint", domain.ErrValidation)
	}

	client, err := s.repos.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}

	if intent.PaymentMethod == domain.PaymentMethodWallet {
		return s.payFromWallet(ctx, client, &intent)
	}

	provider, err := s.providers.Get("")
	if err != nil {
		return nil, fmt.Errorf("payment provider: %w", err)
	}

	now := time.Now().UTC()
	holdUntil := now.Add(s.holdTTL)
	t := &domain.Transaction{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		Type:          domain.TransactionTypePayment,
		Status:        domain.TransactionStatusPending,
		Provider:      provider.Name(),
		HoldExpiresAt: &holdUntil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.hold(ctx, t, &intent, holdUntil)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("hold created",
		logger.String("transaction_id", t.ID),
		logger.String("client_id", client.ID),
		logger.String("kind", string(intent.Kind)),
		logger.String("amount", t.Amount.String()),
	)
	if intent.Kind == domain.IntentGroup {
		s.invalidateGroups(ctx)
	}

	url, err := provider.InitPayment(ctx, domain.InitPaymentParams{
		TransactionID: t.ID,
		ClientID:      client.ID,
		Amount:        t.Amount,
		Description:   t.Description,
	})
	if err != nil {
		s.logger.Error("init payment failed, releasing hold",
			logger.String("transaction_id", t.ID),
			logger.String("error", err.Error()),
		)
		if cerr := s.compensate(context.WithoutCancel(ctx), t.ID); cerr != nil {
			s.logger.Error("failed to release hold after init payment error",
				logger.String("transaction_id", t.ID),
				logger.String("error", cerr.Error()),
			)
		}
		return nil, fmt.Errorf("init payment: %w", err)
	}

	if err = s.repos.Transactions.SetPaymentURL(ctx, t.ID, url); err != nil {
		s.logger.Warn("failed to store payment url",
			logger.String("transaction_id", t.ID),
			logger.String("error", err.Error()),
		)
	}

	return &domain.HoldResult{
		TransactionID: t.ID,
		PaymentURL:    url,
		Status:        t.Status,
		HoldUntil:     &holdUntil,
	}, nil
}

// hold создает pending транзакцию и занимает ресурс. Транзакция вставляется первой:
// hold слота ссылается на нее.
func (s *HoldService) hold(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent, until time.Time) error {
	switch intent.Kind {
	case domain.IntentIndividual:
		slot, err := s.repos.Slots.GetByIDForUpdate(ctx, intent.SlotID)
		if err != nil {
			return fmt.Errorf("lock slot: %w", err)
		}
		if slot.Status != domain.SlotStatusAvailable {
			return domain.ErrSlotUnavailable
		}

		intent.InstructorID = slot.InstructorID
		t.Amount = slot.Price
		t.Description = fmt.Sprintf("Индивидуальная тренировка %s %s", slot.Date.Format("02.01.2006"), slot.StartTime)
		if err = s.createTransaction(ctx, t, intent); err != nil {
			return err
		}

		return s.repos.Slots.HoldSlot(ctx, slot.ID, t.ID, until)

	case domain.IntentGroup:
		if _, err := s.finalizer.ReleaseExpiredGroupHolds(ctx, intent.GroupTrainingID); err != nil {
			return fmt.Errorf("release expired group holds: %w", err)
		}

		group, err := s.repos.Groups.GetByID(ctx, intent.GroupTrainingID)
		if err != nil {
			return fmt.Errorf("get group training: %w", err)
		}
		if !group.Status.AcceptsSeats() {
			return domain.ErrGroupClosed
		}
		if intent.SportType == "" {
			intent.SportType = group.SportType
		}

		t.Amount = group.PricePerPerson.Mul(decimal.NewFromInt(int64(intent.ParticipantsCount)))
		t.Description = fmt.Sprintf("Групповая тренировка %s %s, участников: %d",
			group.Date.Format("02.01.2006"), group.StartTime, intent.ParticipantsCount)
		if err = s.createTransaction(ctx, t, intent); err != nil {
			return err
		}

		return s.repos.Groups.ReserveSeats(ctx, group.ID, intent.ParticipantsCount)
	}

	return fmt.Errorf("%w: unknown booking kind %q", domain.ErrValidation, intent.Kind)
}

func (s *HoldService) createTransaction(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent) error {
	raw, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal booking intent: %w", err)
	}
	t.ProviderRawData = raw

	if err = s.repos.Transactions.Create(ctx, t); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

// compensate отменяет транзакцию, для которой не удалось открыть платежную сессию.
func (s *HoldService) compensate(ctx context.Context, transactionID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := s.repos.Transactions.GetByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if !domain.CanTransition(t.Status, domain.TransactionStatusCancelled) {
			return nil
		}

		intent, err := t.Intent()
		if err != nil {
			return err
		}

		err = s.repos.Transactions.Transition(ctx, domain.TransitionInput{
			ID:             t.ID,
			From:           t.Status,
			To:             domain.TransactionStatusCancelled,
			ProviderStatus: providerStatusInitFailed,
		})
		if err != nil {
			return err
		}

		return s.finalizer.ReleaseHold(ctx, t, intent)
	})
}

// payFromWallet списывает стоимость с кошелька и подтверждает бронь в одной транзакции БД.
func (s *HoldService) payFromWallet(ctx context.Context, client *domain.Client, intent *domain.BookingIntent) (*domain.HoldResult, error) {
	now := time.Now().UTC()
	until := now.Add(s.holdTTL)
	t := &domain.Transaction{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		Type:          domain.TransactionTypePayment,
		Status:        domain.TransactionStatusPending,
		Provider:      providerWallet,
		HoldExpiresAt: &until,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var res *Result
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.hold(ctx, t, intent, until); err != nil {
			return err
		}

		debit := &domain.WalletEntry{
			ID:            uuid.New().String(),
			ClientID:      client.ID,
			Type:          domain.WalletEntryPayment,
			Amount:        t.Amount.Neg(),
			TransactionID: &t.ID,
			Description:   t.Description,
			CreatedAt:     now,
		}
		if _, err := s.repos.Wallets.Append(ctx, debit); err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		err := s.repos.Transactions.Transition(ctx, domain.TransitionInput{
			ID:             t.ID,
			From:           domain.TransactionStatusPending,
			To:             domain.TransactionStatusCompleted,
			ProviderStatus: providerStatusWallet,
		})
		if err != nil {
			return err
		}
		t.Status = domain.TransactionStatusCompleted

		res, err = s.finalizer.Finalize(ctx, t, intent)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking paid from wallet",
		logger.String("transaction_id", t.ID),
		logger.String("booking_id", res.Booking.ID),
		logger.String("client_id", client.ID),
	)

	bg := context.WithoutCancel(ctx)
	s.async(func() {
		if intent.Kind == domain.IntentGroup {
			s.cache.InvalidateGroups(bg)
		}
		s.notifier.NotifyBookingConfirmed(bg, client, res.Booking)
	})

	return &domain.HoldResult{
		TransactionID: t.ID,
		Status:        t.Status,
		BookingID:     &res.Booking.ID,
	}, nil
}

// CreateTopUp открывает платежную сессию пополнения кошелька.
func (s *HoldService) CreateTopUp(ctx context.Context, clientID string, amount decimal.Decimal) (*domain.HoldResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	client, err := s.repos.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}

	provider, err := s.providers.Get("")
	if err != nil {
		return nil, fmt.Errorf("payment provider: %w", err)
	}

	raw, err := json.Marshal(domain.BookingIntent{Kind: domain.IntentWalletTopUp})
	if err != nil {
		return nil, fmt.Errorf("marshal intent: %w", err)
	}

	now := time.Now().UTC()
	expires := now.Add(s.holdTTL)
	t := &domain.Transaction{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		Type:            domain.TransactionTypePayment,
		Amount:          amount.Round(2),
		Status:          domain.TransactionStatusPending,
		Provider:        provider.Name(),
		Description:     "Пополнение кошелька",
		ProviderRawData: raw,
		HoldExpiresAt:   &expires,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.repos.Transactions.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	url, err := provider.InitPayment(ctx, domain.InitPaymentParams{
		TransactionID: t.ID,
		ClientID:      client.ID,
		Amount:        t.Amount,
		Description:   t.Description,
	})
	if err != nil {
		if cerr := s.compensate(context.WithoutCancel(ctx), t.ID); cerr != nil {
			s.logger.Error("failed to cancel top-up after init payment error",
				logger.String("transaction_id", t.ID),
				logger.String("error", cerr.Error()),
			)
		}
		return nil, fmt.Errorf("init payment: %w", err)
	}

	if err = s.repos.Transactions.SetPaymentURL(ctx, t.ID, url); err != nil {
		s.logger.Warn("failed to store payment url",
			logger.String("transaction_id", t.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("wallet top-up created",
		logger.String("transaction_id", t.ID),
		logger.String("client_id", client.ID),
		logger.String("amount", t.Amount.String()),
	)

	return &domain.HoldResult{
		TransactionID: t.ID,
		PaymentURL:    url,
		Status:        t.Status,
	}, nil
}

// SweepExpiredHolds - фоновая зачистка для актуальности листингов.
// Корректность держится на ленивом снятии hold при каждом обращении.
func (s *HoldService) SweepExpiredHolds(ctx context.Context) (int, error) {
	slots, err := s.repos.Slots.ReclaimExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("reclaim expired slots: %w", err)
	}

	var groups int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		groups, err = s.finalizer.ReleaseExpiredGroupHolds(ctx, "")
		return err
	})
	if err != nil {
		return len(slots), fmt.Errorf("release expired group holds: %w", err)
	}

	if groups > 0 {
		s.cache.InvalidateGroups(ctx)
	}
	if n := len(slots) + groups; n > 0 {
		s.logger.Info("expired holds released",
			logger.Int("slots", len(slots)),
			logger.Int("group_holds", groups),
		)
	}

	return len(slots) + groups, nil
}

func (s *HoldService) invalidateGroups(ctx context.Context) {
	bg := context.WithoutCancel(ctx)
	s.async(func() {
		s.cache.InvalidateGroups(bg)
	})
}
