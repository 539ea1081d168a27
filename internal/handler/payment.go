package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const maxWebhookBody = 1 << 20

type WebhookSvc interface {
	ProcessWebhook(ctx context.Context, provider string, payload []byte, headers http.Header) error
}

// PaymentWebhook принимает уведомление банка. Подпись проверяется по сырому телу,
// поэтому тело читается без биндинга.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read request body"})
		return
	}

	err = h.webhookService.ProcessWebhook(c.Request.Context(), c.Param("provider"), payload, c.Request.Header)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	// банк не должен ретраить то, что мы сознательно не применяем
	case errors.Is(err, domain.ErrUnknownTransaction),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrIgnoredEvent):
		c.Set("error", err.Error())
		c.JSON(http.StatusOK, ginext.H{"status": "ignored"})
	default:
		h.handleError(c, err)
	}
}
