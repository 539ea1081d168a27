package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent []published
	err  error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func TestEventPublisher_PublishesEnvelope(t *testing.T) {
	ch := &fakeChannel{}
	p := &EventPublisher{ch: ch, exchange: "ski.events", logger: newTestLogger(t)}

	booking := &domain.Booking{ID: "b1", ClientID: "c1", Status: domain.BookingStatusConfirmed}
	p.NotifyBookingConfirmed(context.Background(), &domain.Client{ID: "c1"}, booking)

	require.Len(t, ch.sent, 1)
	assert.Equal(t, "ski.events", ch.sent[0].exchange)
	assert.Equal(t, EventBookingConfirmed, ch.sent[0].key)
	assert.Equal(t, "application/json", ch.sent[0].msg.ContentType)

	var env struct {
		ID       string         `json:"id"`
		Type     string         `json:"type"`
		ClientID string         `json:"client_id"`
		Data     domain.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &env))
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, EventBookingConfirmed, env.Type)
	assert.Equal(t, "c1", env.ClientID)
	assert.Equal(t, "b1", env.Data.ID)
}

func TestEventPublisher_ErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &EventPublisher{ch: ch, exchange: "ski.events", logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		p.NotifyPaymentFailed(context.Background(), &domain.Client{ID: "c1"}, &domain.Transaction{ID: "t1"})
	})
	assert.Len(t, ch.sent, 1)
}

func TestEventPublisher_Disabled(t *testing.T) {
	p, err := NewEventPublisher("", "ski.events", newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		p.NotifyWalletCredited(context.Background(), &domain.Client{ID: "c1"}, &domain.WalletEntry{})
	})
	assert.NoError(t, p.Close())
}

type countingNotifier struct {
	confirmed, cancelled, failed, credited int
}

func (c *countingNotifier) NotifyBookingConfirmed(context.Context, *domain.Client, *domain.Booking) {
	c.confirmed++
}

func (c *countingNotifier) NotifyBookingCancelled(context.Context, *domain.Client, *domain.Booking) {
	c.cancelled++
}

func (c *countingNotifier) NotifyPaymentFailed(context.Context, *domain.Client, *domain.Transaction) {
	c.failed++
}

func (c *countingNotifier) NotifyWalletCredited(context.Context, *domain.Client, *domain.WalletEntry) {
	c.credited++
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}
	m := Multi{a, b}
	ctx := context.Background()
	client := &domain.Client{ID: "c1"}

	m.NotifyBookingConfirmed(ctx, client, &domain.Booking{})
	m.NotifyBookingCancelled(ctx, client, &domain.Booking{})
	m.NotifyPaymentFailed(ctx, client, &domain.Transaction{})
	m.NotifyWalletCredited(ctx, client, &domain.WalletEntry{})

	for _, n := range []*countingNotifier{a, b} {
		assert.Equal(t, 1, n.confirmed)
		assert.Equal(t, 1, n.cancelled)
		assert.Equal(t, 1, n.failed)
		assert.Equal(t, 1, n.credited)
	}
}

func TestBookingConfirmedText(t *testing.T) {
	b := &domain.Booking{
		BookingType:       domain.BookingTypeGroup,
		Date:              time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		StartTime:         "10:00",
		EndTime:           "11:30",
		ParticipantsCount: 2,
		PriceTotal:        decimal.NewFromInt(4000),
	}

	text := bookingConfirmedText(b)

	assert.Contains(t, text, "Групповая тренировка")
	assert.Contains(t, text, "17.01.2026, 10:00-11:30")
	assert.Contains(t, text, "4000.00")
	assert.Contains(t, text, "Участников: 2")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	assert.NotPanics(t, func() {
		n.NotifyBookingConfirmed(context.Background(), &domain.Client{TelegramChatID: &chatID}, &domain.Booking{})
	})
}
