package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentFailed    = "payment.failed"
	EventWalletCredited   = "wallet.credited"
)

// Event - конверт доменного события в обменнике.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	ClientID   string    `json:"client_id"`
	Data       any       `json:"data"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// EventPublisher публикует доменные события в topic exchange RabbitMQ.
// Без url публикация отключена.
type EventPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
}

func NewEventPublisher(url, exchange string, log logger.Logger) (*EventPublisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, domain events disabled")
		return &EventPublisher{exchange: exchange, logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &EventPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *EventPublisher) NotifyBookingConfirmed(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	p.publish(ctx, EventBookingConfirmed, client.ID, booking)
}

func (p *EventPublisher) NotifyBookingCancelled(ctx context.Context, client *domain.Client, booking *domain.Booking) {
	p.publish(ctx, EventBookingCancelled, client.ID, booking)
}

func (p *EventPublisher) NotifyPaymentFailed(ctx context.Context, client *domain.Client, tx *domain.Transaction) {
	p.publish(ctx, EventPaymentFailed, client.ID, tx)
}

func (p *EventPublisher) NotifyWalletCredited(ctx context.Context, client *domain.Client, entry *domain.WalletEntry) {
	p.publish(ctx, EventWalletCredited, client.ID, entry)
}

func (p *EventPublisher) publish(ctx context.Context, key, clientID string, data any) {
	if p.ch == nil {
		p.logger.Debug("domain event skipped (publisher disabled)", logger.String("type", key))
		return
	}

	body, err := json.Marshal(Event{
		ID:         uuid.New().String(),
		Type:       key,
		OccurredAt: time.Now().UTC(),
		ClientID:   clientID,
		Data:       data,
	})
	if err != nil {
		p.logger.Error("failed to marshal domain event",
			logger.String("type", key),
			logger.String("error", err.Error()),
		)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish domain event",
			logger.String("type", key),
			logger.String("client_id", clientID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *EventPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
