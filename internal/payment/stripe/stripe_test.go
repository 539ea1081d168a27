package stripe

import (
	"net/http"
	"testing"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testSecret = "whsec_test_secret"

func signedHeaders(t *testing.T, payload []byte) http.Header {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  testSecret,
	})
	h := http.Header{}
	h.Set("Stripe-Signature", signed.Header)
	return h
}

const completedEvent = `{
  "id": "evt_1",
  "object": "event",
  "type": "checkout.session.completed",
  "data": {"object": {
    "id": "cs_1",
    "object": "checkout.session",
    "client_reference_id": "tx-1",
    "payment_status": "paid",
    "amount_total": 350000
  }}
}`

func TestVerifySignature(t *testing.T) {
	p := New(Config{WebhookSecret: testSecret})
	payload := []byte(completedEvent)

	assert.NoError(t, p.VerifySignature(payload, signedHeaders(t, payload)))

	bad := http.Header{}
	bad.Set("Stripe-Signature", "t=1,v1=deadbeef")
	assert.ErrorIs(t, p.VerifySignature(payload, bad), domain.ErrInvalidSignature)
}

func TestVerifySignature_NoSecret(t *testing.T) {
	p := New(Config{})

	assert.ErrorIs(t, p.VerifySignature([]byte(completedEvent), http.Header{}), domain.ErrVerificationKeyMissing)
}

func TestParse_CheckoutCompleted(t *testing.T) {
	p := New(Config{})

	n, err := p.Parse([]byte(completedEvent))

	require.NoError(t, err)
	assert.Equal(t, "tx-1", n.OrderID)
	assert.Equal(t, "cs_1", n.PaymentID)
	assert.Equal(t, domain.PaymentSuccess, n.Status)
	require.NotNil(t, n.Amount)
	assert.True(t, decimal.NewFromInt(3500).Equal(*n.Amount))
}

func TestParse_CheckoutUnpaidIsPending(t *testing.T) {
	p := New(Config{})

	n, err := p.Parse([]byte(`{"id":"evt_2","type":"checkout.session.completed","data":{"object":{
		"id":"cs_2","metadata":{"transaction_id":"tx-2"},"payment_status":"unpaid","amount_total":100}}}`))

	require.NoError(t, err)
	assert.Equal(t, "tx-2", n.OrderID)
	assert.Equal(t, domain.PaymentPending, n.Status)
}

func TestParse_CheckoutExpiredIsFailed(t *testing.T) {
	p := New(Config{})

	n, err := p.Parse([]byte(`{"id":"evt_3","type":"checkout.session.expired","data":{"object":{
		"id":"cs_3","client_reference_id":"tx-3","payment_status":"unpaid"}}}`))

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, n.Status)
}

func TestParse_ChargeRefunded(t *testing.T) {
	p := New(Config{})

	n, err := p.Parse([]byte(`{"id":"evt_4","type":"charge.refunded","data":{"object":{
		"id":"ch_1","refunded":true,"metadata":{"transaction_id":"tx-4"}}}}`))

	require.NoError(t, err)
	assert.Equal(t, "tx-4", n.OrderID)
	assert.Equal(t, domain.PaymentRefunded, n.Status)
}

func TestParse_IgnoredAndMalformed(t *testing.T) {
	p := New(Config{})

	_, err := p.Parse([]byte(`{"id":"evt_5","type":"customer.created","data":{"object":{"id":"cus_1"}}}`))
	assert.ErrorIs(t, err, domain.ErrIgnoredEvent)

	_, err = p.Parse([]byte(`not json`))
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)

	_, err = p.Parse([]byte(`{"id":"evt_6","type":"checkout.session.completed","data":{"object":{"id":"cs_6"}}}`))
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(350050), toMinor(decimal.RequireFromString("3500.50")))
	assert.True(t, decimal.RequireFromString("12.34").Equal(fromMinor(1234)))
}
