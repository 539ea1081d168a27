package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type WebhookService struct {
	tx        ports.Transactor
	repos     Repos
	providers ports.PaymentProviders
	finalizer *Finalizer
	cache     ports.GroupCache
	notifier  ports.Notifier
	referrals ports.ReferralTrigger
	logger    logger.Logger
	async     asyncRunner
}

func NewWebhookService(
	tx ports.Transactor,
	repos Repos,
	providers ports.PaymentProviders,
	finalizer *Finalizer,
	cache ports.GroupCache,
	notifier ports.Notifier,
	referrals ports.ReferralTrigger,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		tx:        tx,
		repos:     repos,
		providers: providers,
		finalizer: finalizer,
		cache:     cache,
		notifier:  notifier,
		referrals: referrals,
		logger:    logger,
		async:     goAsync,
	}
}

// outcome - то, что изменилось в транзакции БД; по нему после commit рассылаются эффекты.
type outcome struct {
	tx      *domain.Transaction
	intent  *domain.BookingIntent
	status  domain.TransactionStatus
	result  *Result
	booking *domain.Booking
}

// ProcessWebhook проверяет подпись, нормализует уведомление и применяет его ровно один раз.
// ErrUnknownTransaction, ErrAmountMismatch и ErrIgnoredEvent означают, что уведомление
// принято без изменений.
func (s *WebhookService) ProcessWebhook(ctx context.Context, providerName string, payload []byte, headers http.Header) error {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}

	if err = provider.VerifySignature(payload, headers); err != nil {
		if !errors.Is(err, domain.ErrVerificationKeyMissing) {
			s.logger.Warn("webhook signature rejected",
				logger.String("provider", provider.Name()),
				logger.String("error", err.Error()),
			)
			return err
		}
		s.logger.Warn("webhook verification key is not configured, accepting unsigned payload",
			logger.String("provider", provider.Name()),
		)
	}

	n, err := provider.Parse(payload)
	if err != nil {
		if errors.Is(err, domain.ErrIgnoredEvent) {
			s.logger.Debug("webhook event ignored", logger.String("provider", provider.Name()))
		}
		return err
	}

	if _, err = uuid.Parse(n.OrderID); err != nil {
		s.logNotification(ctx, logger.ErrorLevel, "webhook for unknown transaction", provider.Name(), n)
		return domain.ErrUnknownTransaction
	}

	var out *outcome
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.apply(ctx, n)
		return err
	})
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		s.logNotification(ctx, logger.ErrorLevel, "webhook for unknown transaction", provider.Name(), n)
		return domain.ErrUnknownTransaction
	case errors.Is(err, domain.ErrAmountMismatch):
		s.logNotification(ctx, logger.ErrorLevel, "data integrity incident: "+err.Error(), provider.Name(), n)
		return err
	case err != nil:
		return fmt.Errorf("apply webhook: %w", err)
	}

	if out == nil {
		s.logNotification(ctx, logger.InfoLevel, "webhook accepted without changes", provider.Name(), n)
		return nil
	}

	s.logNotification(ctx, logger.InfoLevel, "webhook applied", provider.Name(), n)
	s.dispatch(ctx, out)

	return nil
}

func (s *WebhookService) apply(ctx context.Context, n *domain.PaymentNotification) (*outcome, error) {
	t, err := s.repos.Transactions.GetByIDForUpdate(ctx, n.OrderID)
	if err != nil {
		return nil, err
	}

	target, ok := n.TargetStatus()
	if !ok {
		if t.Status == domain.TransactionStatusPending {
			return nil, s.repos.Transactions.UpdateProviderStatus(ctx, t.ID, n.RawStatus, n.PaymentID)
		}
		return nil, nil
	}

	// повтор или запоздавшее уведомление
	if !domain.CanTransition(t.Status, target) {
		return nil, nil
	}

	if target == domain.TransactionStatusCompleted && n.Amount != nil && !n.Amount.Equal(t.Amount) {
		return nil, fmt.Errorf("%w: transaction %s expects %s, got %s",
			domain.ErrAmountMismatch, t.ID, t.Amount.StringFixed(2), n.Amount.StringFixed(2))
	}

	intent, err := t.Intent()
	if err != nil {
		return nil, err
	}

	err = s.repos.Transactions.Transition(ctx, domain.TransitionInput{
		ID:                t.ID,
		From:              t.Status,
		To:                target,
		ProviderStatus:    n.RawStatus,
		ProviderPaymentID: n.PaymentID,
	})
	if err != nil {
		return nil, err
	}
	t.Status = target

	out := &outcome{tx: t, intent: intent, status: target}

	switch target {
	case domain.TransactionStatusCompleted:
		res, err := s.finalizer.Finalize(ctx, t, intent)
		if err != nil {
			if !integrityIncident(err) {
				return nil, err
			}
			// деньги получены, а ресурс занят: оставляем completed без брони для ручного разбора
			s.logger.Error("data integrity incident: paid transaction cannot be finalized",
				logger.String("transaction_id", t.ID),
				logger.String("kind", string(intent.Kind)),
				logger.String("error", err.Error()),
			)
			return out, nil
		}
		out.result = res

	case domain.TransactionStatusFailed:
		if err = s.finalizer.ReleaseHold(ctx, t, intent); err != nil {
			return nil, err
		}

	case domain.TransactionStatusRefunded:
		if intent.Kind == domain.IntentWalletTopUp {
			entry, err := s.finalizer.ReverseCredit(ctx, t)
			if errors.Is(err, domain.ErrInsufficientFunds) {
				// пополнение уже потрачено: фиксируем refunded, списание разбирается вручную
				s.logger.Error("data integrity incident: refunded top-up exceeds wallet balance",
					logger.String("transaction_id", t.ID),
					logger.String("client_id", t.ClientID),
					logger.String("amount", t.Amount.StringFixed(2)),
				)
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			out.result = &Result{Reversal: entry}
			return out, nil
		}

		b, err := s.repos.Bookings.GetByTransaction(ctx, t.ID)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if b.Status != domain.BookingStatusConfirmed && b.Status != domain.BookingStatusPending {
			return out, nil
		}
		if err = s.repos.Bookings.UpdateStatus(ctx, b.ID, domain.BookingStatusRefunded); err != nil {
			return nil, err
		}
		if err = s.finalizer.ReleaseBooking(ctx, b); err != nil {
			return nil, err
		}
		b.Status = domain.BookingStatusRefunded
		out.booking = b
	}

	return out, nil
}

func (s *WebhookService) logNotification(ctx context.Context, level logger.Level, msg, provider string, n *domain.PaymentNotification) {
	s.logger.LogAttrs(ctx, level, msg,
		logger.String("provider", provider),
		logger.String("order_id", n.OrderID),
		logger.String("payment_id", n.PaymentID),
		logger.String("status", string(n.Status)),
		logger.String("raw_status", n.RawStatus),
	)
}

func integrityIncident(err error) bool {
	return errors.Is(err, domain.ErrSlotUnavailable) ||
		errors.Is(err, domain.ErrCapacityExceeded) ||
		errors.Is(err, domain.ErrGroupClosed) ||
		errors.Is(err, domain.ErrSlotNotFound) ||
		errors.Is(err, domain.ErrGroupNotFound)
}

// dispatch - fire-and-forget эффекты после commit.
func (s *WebhookService) dispatch(ctx context.Context, out *outcome) {
	bg := context.WithoutCancel(ctx)

	s.async(func() {
		if out.intent.Kind == domain.IntentGroup {
			s.cache.InvalidateGroups(bg)
		}

		if out.result != nil && out.result.Credit != nil {
			if err := s.referrals.OnDeposit(bg, out.tx.ClientID); err != nil {
				s.logger.Error("referral deposit trigger failed",
					logger.String("client_id", out.tx.ClientID),
					logger.String("error", err.Error()),
				)
			}
		}

		if out.status == domain.TransactionStatusRefunded && out.booking == nil {
			return
		}

		client, err := s.repos.Clients.GetByID(bg, out.tx.ClientID)
		if err != nil {
			s.logger.Error("failed to get client for notification",
				logger.String("client_id", out.tx.ClientID),
				logger.String("error", err.Error()),
			)
			return
		}

		switch {
		case out.result != nil && out.result.Booking != nil:
			s.notifier.NotifyBookingConfirmed(bg, client, out.result.Booking)
		case out.result != nil && out.result.Credit != nil:
			s.notifier.NotifyWalletCredited(bg, client, out.result.Credit)
		case out.status == domain.TransactionStatusFailed:
			s.notifier.NotifyPaymentFailed(bg, client, out.tx)
		case out.booking != nil:
			s.notifier.NotifyBookingCancelled(bg, client, out.booking)
		}
	})
}
