// Package stripe - карточный провайдер на Stripe Checkout.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/shopspring/decimal"
	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	Name = "stripe"

	metadataTransactionID = "transaction_id"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

type Provider struct {
	cfg    Config
	client *stripeapi.Client
}

func New(cfg Config) *Provider {
	if cfg.Currency == "" {
		cfg.Currency = "rub"
	}

	p := &Provider{cfg: cfg}
	if cfg.SecretKey != "" {
		p.client = stripeapi.NewClient(cfg.SecretKey)
	}

	return p
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) VerifySignature(payload []byte, headers http.Header) error {
	if p.cfg.WebhookSecret == "" {
		return domain.ErrVerificationKeyMissing
	}

	_, err := webhook.ConstructEventWithOptions(
		payload,
		headers.Get("Stripe-Signature"),
		p.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	return nil
}

func (p *Provider) Parse(payload []byte) (*domain.PaymentNotification, error) {
	var event stripeapi.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if event.Data == nil {
		return nil, fmt.Errorf("%w: event %s has no data", domain.ErrMalformedPayload, event.ID)
	}

	switch event.Type {
	case "checkout.session.completed",
		"checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed",
		"checkout.session.expired":
		return parseCheckoutSession(event)
	case "charge.refunded":
		return parseRefund(event)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrIgnoredEvent, event.Type)
	}
}

func parseCheckoutSession(event stripeapi.Event) (*domain.PaymentNotification, error) {
	var cs stripeapi.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, fmt.Errorf("%w: checkout session: %v", domain.ErrMalformedPayload, err)
	}

	orderID := cs.ClientReferenceID
	if orderID == "" {
		orderID = cs.Metadata[metadataTransactionID]
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: checkout session %s has no transaction reference", domain.ErrMalformedPayload, cs.ID)
	}

	status := domain.PaymentPending
	switch event.Type {
	case "checkout.session.async_payment_failed", "checkout.session.expired":
		status = domain.PaymentFailed
	default:
		// completed приходит и для отложенных методов оплаты, деньги есть только при paid
		if cs.PaymentStatus == stripeapi.CheckoutSessionPaymentStatusPaid {
			status = domain.PaymentSuccess
		}
	}

	amount := fromMinor(cs.AmountTotal)

	return &domain.PaymentNotification{
		OrderID:   orderID,
		PaymentID: cs.ID,
		Status:    status,
		RawStatus: string(event.Type),
		Amount:    &amount,
	}, nil
}

func parseRefund(event stripeapi.Event) (*domain.PaymentNotification, error) {
	var ch stripeapi.Charge
	if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
		return nil, fmt.Errorf("%w: charge: %v", domain.ErrMalformedPayload, err)
	}

	orderID := ch.Metadata[metadataTransactionID]
	if orderID == "" {
		return nil, fmt.Errorf("%w: charge %s has no transaction reference", domain.ErrMalformedPayload, ch.ID)
	}

	// частичный возврат не закрывает бронь
	status := domain.PaymentPending
	if ch.Refunded {
		status = domain.PaymentRefunded
	}

	return &domain.PaymentNotification{
		OrderID:   orderID,
		PaymentID: ch.ID,
		Status:    status,
		RawStatus: string(event.Type),
	}, nil
}

func (p *Provider) InitPayment(ctx context.Context, params domain.InitPaymentParams) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("init payment: stripe secret key is not configured")
	}

	piParams := &stripeapi.CheckoutSessionCreatePaymentIntentDataParams{}
	piParams.AddMetadata(metadataTransactionID, params.TransactionID)

	cs, err := p.client.V1CheckoutSessions.Create(ctx, &stripeapi.CheckoutSessionCreateParams{
		Mode:              stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		SuccessURL:        stripeapi.String(p.cfg.SuccessURL),
		CancelURL:         stripeapi.String(p.cfg.CancelURL),
		ClientReferenceID: stripeapi.String(params.TransactionID),
		Metadata:          map[string]string{metadataTransactionID: params.TransactionID},
		PaymentIntentData: piParams,
		LineItems: []*stripeapi.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripeapi.String(p.cfg.Currency),
					UnitAmount: stripeapi.Int64(toMinor(params.Amount)),
					ProductData: &stripeapi.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripeapi.String(params.Description),
					},
				},
				Quantity: stripeapi.Int64(1),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return cs.URL, nil
}

func toMinor(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
