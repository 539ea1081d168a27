package tokenbank

import (
	"fmt"
	"strings"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Имена полей в разных версиях уведомлений банка.
var (
	orderIDPaths    = []string{"OrderId", "orderId", "order_id", "Data.orderId"}
	paymentIDPaths  = []string{"PaymentId", "paymentId", "payment_id", "operationId", "Data.operationId"}
	statusPaths     = []string{"Status", "status", "state", "Data.status"}
	paymentURLPaths = []string{"PaymentURL", "paymentUrl", "payment_url", "Data.paymentLink"}
)

var hundred = decimal.NewFromInt(100)

func firstOf(body []byte, paths []string) gjson.Result {
	for _, path := range paths {
		if r := gjson.GetBytes(body, path); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func normalize(body []byte) (*domain.PaymentNotification, error) {
	orderID := strings.TrimSpace(firstOf(body, orderIDPaths).String())
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is missing", domain.ErrMalformedPayload)
	}

	rawStatus := strings.TrimSpace(firstOf(body, statusPaths).String())
	if rawStatus == "" {
		return nil, fmt.Errorf("%w: status is missing", domain.ErrMalformedPayload)
	}

	amount, err := parseAmount(body)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentNotification{
		OrderID:   orderID,
		PaymentID: firstOf(body, paymentIDPaths).String(),
		Status:    normalizeStatus(rawStatus),
		RawStatus: rawStatus,
		Amount:    amount,
	}, nil
}

// parseAmount: Amount в старом формате передается в копейках, amount - в рублях.
func parseAmount(body []byte) (*decimal.Decimal, error) {
	if r := gjson.GetBytes(body, "Amount"); r.Exists() {
		minor, err := decimal.NewFromString(r.String())
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q: %v", domain.ErrMalformedPayload, r.String(), err)
		}
		amount := minor.Div(hundred)
		return &amount, nil
	}

	for _, path := range []string{"amount", "Data.amount"} {
		if r := gjson.GetBytes(body, path); r.Exists() {
			amount, err := decimal.NewFromString(r.String())
			if err != nil {
				return nil, fmt.Errorf("%w: amount %q: %v", domain.ErrMalformedPayload, r.String(), err)
			}
			return &amount, nil
		}
	}

	return nil, nil
}

// normalizeStatus сводит статусы банка к каноничным.
// Неизвестный статус считается промежуточным: он записывается, но не двигает транзакцию.
func normalizeStatus(raw string) domain.PaymentStatus {
	switch strings.ToUpper(raw) {
	case "SUCCESS", "CONFIRMED", "APPROVED", "PAID", "EXECUTED":
		return domain.PaymentSuccess
	case "FAILED", "REJECTED", "CANCELED", "CANCELLED", "DECLINED", "EXPIRED", "DEADLINE_EXPIRED":
		return domain.PaymentFailed
	case "REFUNDED", "REVERSED":
		return domain.PaymentRefunded
	case "PARTIAL_REFUNDED":
		// частичный возврат не отменяет бронь, как и в адаптере stripe
		return domain.PaymentPending
	default:
		return domain.PaymentPending
	}
}
