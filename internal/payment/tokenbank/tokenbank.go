// Package tokenbank - адаптер банка, который присылает уведомления подписанным JWT.
package tokenbank

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
)

const Name = "tokenbank"

const maxResponseSize = 1 << 20

type Config struct {
	PublicKeyPEM string
	InitURL      string
	APIToken     string
	MerchantID   string
	SuccessURL   string
	FailURL      string
	Timeout      time.Duration
}

type Provider struct {
	cfg    Config
	key    any
	client *http.Client
}

func New(cfg Config) (*Provider, error) {
	p := &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Timeout <= 0 {
		p.client.Timeout = 10 * time.Second
	}

	if strings.TrimSpace(cfg.PublicKeyPEM) != "" {
		key, err := parsePublicKey([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, err
		}
		p.key = key
	}

	return p, nil
}

func parsePublicKey(pemData []byte) (any, error) {
	if key, err := jwt.ParseRSAPublicKeyFromPEM(pemData); err == nil {
		return key, nil
	}
	if key, err := jwt.ParseECPublicKeyFromPEM(pemData); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("parse bank public key: unsupported key, expected RSA or EC public key in PEM")
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) VerifySignature(payload []byte, _ http.Header) error {
	if p.key == nil {
		return domain.ErrVerificationKeyMissing
	}

	token := extractToken(payload)
	if token == "" {
		return fmt.Errorf("%w: payload is not signed", domain.ErrInvalidSignature)
	}

	_, err := jwt.Parse(token, p.keyFunc, jwt.WithValidMethods([]string{"RS256", "ES256"}))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	return nil
}

func (p *Provider) keyFunc(t *jwt.Token) (any, error) {
	switch key := p.key.(type) {
	case *rsa.PublicKey:
		if _, ok := t.Method.(*jwt.SigningMethodRSA); ok {
			return key, nil
		}
	case *ecdsa.PublicKey:
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); ok {
			return key, nil
		}
	}
	return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
}

// Parse читает claims без проверки подписи: проверка - отдельный шаг VerifySignature.
func (p *Provider) Parse(payload []byte) (*domain.PaymentNotification, error) {
	body := payload
	if token := extractToken(payload); token != "" {
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
		}

		var err error
		if body, err = json.Marshal(claims); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: payload is neither a token nor JSON", domain.ErrMalformedPayload)
	}

	return normalize(body)
}

type initRequest struct {
	OrderID      string `json:"orderId"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	CustomerCode string `json:"customerCode,omitempty"`
	SuccessURL   string `json:"successUrl,omitempty"`
	FailURL      string `json:"failUrl,omitempty"`
}

func (p *Provider) InitPayment(ctx context.Context, params domain.InitPaymentParams) (string, error) {
	if p.cfg.InitURL == "" {
		return "", fmt.Errorf("init payment: bank init url is not configured")
	}

	body, err := json.Marshal(initRequest{
		OrderID:      params.TransactionID,
		Amount:       params.Amount.StringFixed(2),
		Description:  params.Description,
		CustomerCode: p.cfg.MerchantID,
		SuccessURL:   p.cfg.SuccessURL,
		FailURL:      p.cfg.FailURL,
	})
	if err != nil {
		return "", fmt.Errorf("marshal init request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.InitURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build init request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("init payment: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read init response: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("init payment: bank responded %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	url := firstOf(raw, paymentURLPaths).String()
	if url == "" {
		return "", fmt.Errorf("init payment: bank response has no payment url")
	}

	return url, nil
}

// extractToken достает компактный JWT: либо тело целиком, либо поле token в JSON.
func extractToken(payload []byte) string {
	body := strings.TrimSpace(string(payload))
	if gjson.Valid(body) {
		return gjson.Get(body, "token").String()
	}
	return body
}
