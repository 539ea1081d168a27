package notification

import (
	"context"
	"fmt"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	n.send(ctx, client.TelegramChatID, bookingConfirmedText(booking))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	title := "*Бронирование отменено*"
	if booking.Status == domain.BookingStatusRefunded {
		title = "*Оплата возвращена, бронирование отменено*"
	}
	text := fmt.Sprintf("%s\n\n%s", title, bookingLine(booking))
	n.send(ctx, client.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, client *domain.Client, tx *domain.Transaction) {
	text := fmt.Sprintf(
		"*Оплата не прошла*\n\n"+"Сумма: %s руб.\n"+"Время освобождено, попробуйте записаться еще раз.",
		tx.Amount.StringFixed(2),
	)
	n.send(ctx, client.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWalletCredited(ctx context.Context, client *domain.Client, entry *domain.WalletEntry) {
	title := "*Кошелек пополнен*"
	if entry.Type == domain.WalletEntryBonus {
		title = "*Начислен бонус за приглашение друга!*"
	}
	text := fmt.Sprintf(
		"%s\n\n"+"Сумма: %s руб.\n"+"Баланс: %s руб.",
		title, entry.Amount.StringFixed(2), entry.BalanceAfter.StringFixed(2),
	)
	n.send(ctx, client.TelegramChatID, text)
}

func bookingConfirmedText(b *domain.Booking) string {
	text := fmt.Sprintf("*Запись подтверждена!*\n\n%s\nСумма: %s руб.", bookingLine(b), b.PriceTotal.StringFixed(2))
	if b.BookingType == domain.BookingTypeGroup {
		text += fmt.Sprintf("\nУчастников: %d", b.ParticipantsCount)
	}
	return text
}

func bookingLine(b *domain.Booking) string {
	kind := "Индивидуальная тренировка"
	if b.BookingType == domain.BookingTypeGroup {
		kind = "Групповая тренировка"
	}
	return fmt.Sprintf("%s\nДата: %s, %s-%s", kind, b.Date.Format("02.01.2006"), b.StartTime, b.EndTime)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
