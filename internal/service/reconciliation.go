package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const defaultStuckPeriod = 24 * time.Hour

// ReconciliationService - ручной разбор оплат, которые банк так и не подтвердил.
type ReconciliationService struct {
	tx        ports.Transactor
	repos     Repos
	finalizer *Finalizer
	cache     ports.GroupCache
	notifier  ports.Notifier
	logger    logger.Logger
	async     asyncRunner
}

func NewReconciliationService(
	tx ports.Transactor,
	repos Repos,
	finalizer *Finalizer,
	cache ports.GroupCache,
	notifier ports.Notifier,
	logger logger.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		tx:        tx,
		repos:     repos,
		finalizer: finalizer,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
		async:     goAsync,
	}
}

// ListStuckTransactions - pending транзакции с истекшим hold, созданные за период.
func (s *ReconciliationService) ListStuckTransactions(ctx context.Context, period time.Duration) ([]*domain.Transaction, error) {
	if period <= 0 {
		period = defaultStuckPeriod
	}
	return s.repos.Transactions.ListStuck(ctx, time.Now().UTC().Add(-period))
}

// ForceCreateBooking подтверждает оплату вручную, когда webhook не пришел.
func (s *ReconciliationService) ForceCreateBooking(ctx context.Context, in domain.ForceBookingInput) (*domain.Booking, error) {
	if err := requireReason(in.Operator, in.Reason); err != nil {
		return nil, err
	}

	var (
		res    *Result
		t      *domain.Transaction
		intent *domain.BookingIntent
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.repos.Transactions.GetByIDForUpdate(ctx, in.TransactionID)
		if err != nil {
			return err
		}
		if t.Status != domain.TransactionStatusPending {
			return domain.ErrTransactionNotPending
		}

		intent, err = t.Intent()
		if err != nil {
			return err
		}
		if intent.Kind == domain.IntentWalletTopUp {
			return fmt.Errorf("%w: transaction %s is a wallet top-up", domain.ErrValidation, t.ID)
		}

		if err = s.checkAvailability(ctx, t, intent, in.Override); err != nil {
			return err
		}

		err = s.repos.Transactions.Transition(ctx, domain.TransitionInput{
			ID:             t.ID,
			From:           domain.TransactionStatusPending,
			To:             domain.TransactionStatusCompleted,
			ProviderStatus: providerStatusManual,
		})
		if err != nil {
			return err
		}
		t.Status = domain.TransactionStatusCompleted

		if res, err = s.finalizer.Finalize(ctx, t, intent); err != nil {
			return err
		}

		return s.audit(ctx, domain.AuditForceBooking, t.ID, in.Operator, in.Reason)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking forced by operator",
		logger.String("transaction_id", t.ID),
		logger.String("booking_id", res.Booking.ID),
		logger.String("operator", in.Operator),
	)

	bg := context.WithoutCancel(ctx)
	s.async(func() {
		if intent.Kind == domain.IntentGroup {
			s.cache.InvalidateGroups(bg)
		}
		s.notify(bg, t.ClientID, func(c *domain.Client) {
			s.notifier.NotifyBookingConfirmed(bg, c, res.Booking)
		})
	})

	return res.Booking, nil
}

// checkAvailability повторяет проверку ресурса перед ручной бронью.
func (s *ReconciliationService) checkAvailability(ctx context.Context, t *domain.Transaction, intent *domain.BookingIntent, override bool) error {
	now := time.Now().UTC()

	switch intent.Kind {
	case domain.IntentIndividual:
		slot, err := s.repos.Slots.GetByIDForUpdate(ctx, intent.SlotID)
		if err != nil {
			return err
		}
		if slot.HeldBy(t.ID) {
			return nil
		}
		if slot.Status != domain.SlotStatusAvailable {
			return domain.ErrSlotUnavailable
		}
		// hold истек и слот уже свободен
		if !override {
			return fmt.Errorf("%w: hold expired, override is required", domain.ErrSlotUnavailable)
		}
		return s.repos.Slots.HoldSlot(ctx, slot.ID, t.ID, now.Add(time.Minute))

	case domain.IntentGroup:
		group, err := s.repos.Groups.GetByID(ctx, intent.GroupTrainingID)
		if err != nil {
			return err
		}
		if !group.Status.AcceptsSeats() {
			return domain.ErrGroupClosed
		}
		expired := t.HoldReleased || (t.HoldExpiresAt != nil && t.HoldExpiresAt.Before(now))
		if expired && !override {
			return fmt.Errorf("%w: hold expired, override is required", domain.ErrCapacityExceeded)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown booking kind %q", domain.ErrMalformedPayload, intent.Kind)
}

// CancelStuckTransaction отменяет зависшую оплату и освобождает только ее собственный hold.
func (s *ReconciliationService) CancelStuckTransaction(ctx context.Context, in domain.CancelStuckInput) (*domain.Transaction, error) {
	if err := requireReason(in.Operator, in.Reason); err != nil {
		return nil, err
	}

	var (
		t      *domain.Transaction
		intent *domain.BookingIntent
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.repos.Transactions.GetByIDForUpdate(ctx, in.TransactionID)
		if err != nil {
			return err
		}
		if !domain.CanTransition(t.Status, domain.TransactionStatusCancelled) {
			return domain.ErrTransactionNotPending
		}

		intent, err = t.Intent()
		if err != nil {
			return err
		}

		err = s.repos.Transactions.Transition(ctx, domain.TransitionInput{
			ID:             t.ID,
			From:           t.Status,
			To:             domain.TransactionStatusCancelled,
			ProviderStatus: providerStatusManualCancel,
		})
		if err != nil {
			return err
		}
		t.Status = domain.TransactionStatusCancelled

		if err = s.finalizer.ReleaseHold(ctx, t, intent); err != nil {
			return err
		}

		return s.audit(ctx, domain.AuditCancelTransaction, t.ID, in.Operator, in.Reason)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stuck transaction cancelled by operator",
		logger.String("transaction_id", t.ID),
		logger.String("operator", in.Operator),
	)

	if intent.Kind == domain.IntentGroup {
		bg := context.WithoutCancel(ctx)
		s.async(func() {
			s.cache.InvalidateGroups(bg)
		})
	}

	return t, nil
}

// CancelBooking отменяет подтвержденную бронь, возвращает ресурс в продажу и
// зачисляет стоимость на кошелек клиента.
func (s *ReconciliationService) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var b *domain.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.repos.Bookings.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.BookingStatusConfirmed && b.Status != domain.BookingStatusPending {
			return domain.ErrBookingNotActive
		}

		if err = s.repos.Bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusCancelled); err != nil {
			return err
		}
		b.Status = domain.BookingStatusCancelled

		if err = s.finalizer.ReleaseBooking(ctx, b); err != nil {
			return err
		}

		if !b.PriceTotal.IsPositive() {
			return nil
		}
		_, err = s.repos.Wallets.Append(ctx, &domain.WalletEntry{
			ID:            uuid.New().String(),
			ClientID:      b.ClientID,
			Type:          domain.WalletEntryRefund,
			Amount:        b.PriceTotal,
			TransactionID: b.TransactionID,
			Description:   fmt.Sprintf("Возврат за отмену тренировки %s", b.Date.Format("02.01.2006")),
			CreatedAt:     time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("client_id", b.ClientID),
	)

	bg := context.WithoutCancel(ctx)
	s.async(func() {
		if b.BookingType == domain.BookingTypeGroup {
			s.cache.InvalidateGroups(bg)
		}
		s.notify(bg, b.ClientID, func(c *domain.Client) {
			s.notifier.NotifyBookingCancelled(bg, c, b)
		})
	})

	return b, nil
}

func (s *ReconciliationService) audit(ctx context.Context, action domain.AuditAction, transactionID, operator, reason string) error {
	return s.repos.Audit.Create(ctx, &domain.AuditRecord{
		ID:            uuid.New().String(),
		Action:        action,
		TransactionID: transactionID,
		Operator:      operator,
		Reason:        reason,
		CreatedAt:     time.Now().UTC(),
	})
}

func (s *ReconciliationService) notify(ctx context.Context, clientID string, send func(c *domain.Client)) {
	client, err := s.repos.Clients.GetByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, domain.ErrClientNotFound) {
			s.logger.Error("failed to get client for notification",
				logger.String("client_id", clientID),
				logger.String("error", err.Error()),
			)
		}
		return
	}
	send(client)
}
