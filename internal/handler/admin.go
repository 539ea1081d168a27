package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ReconciliationSvc interface {
	ListStuckTransactions(ctx context.Context, period time.Duration) ([]*domain.Transaction, error)
	ForceCreateBooking(ctx context.Context, input domain.ForceBookingInput) (*domain.Booking, error)
	CancelStuckTransaction(ctx context.Context, input domain.CancelStuckInput) (*domain.Transaction, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

type ReferralSvc interface {
	OnTrainingCompleted(ctx context.Context, clientID string) error
}

func (h *Handler) ListStuckTransactions(c *ginext.Context) {
	var period time.Duration
	if raw := c.Query("period"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid period, expected duration like 24h"})
			return
		}
		period = d
	}

	txs, err := h.reconciliationService.ListStuckTransactions(c.Request.Context(), period)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, dto.ToTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ForceBooking(c *ginext.Context) {
	txID, ok := uuidParam(c, "id", "invalid transaction id")
	if !ok {
		return
	}

	var req dto.ForceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reconciliationService.ForceCreateBooking(c.Request.Context(), domain.ForceBookingInput{
		TransactionID: txID,
		Operator:      req.Operator,
		Reason:        req.Reason,
		Override:      req.Override,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelTransaction(c *ginext.Context) {
	txID, ok := uuidParam(c, "id", "invalid transaction id")
	if !ok {
		return
	}

	var req dto.CancelTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.reconciliationService.CancelStuckTransaction(c.Request.Context(), domain.CancelStuckInput{
		TransactionID: txID,
		Operator:      req.Operator,
		Reason:        req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(t))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := uuidParam(c, "id", "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.reconciliationService.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) TrainingCompleted(c *ginext.Context) {
	clientID, ok := uuidParam(c, "id", "invalid client id")
	if !ok {
		return
	}

	if err := h.referralService.OnTrainingCompleted(c.Request.Context(), clientID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "processed"})
}
