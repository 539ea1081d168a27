package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type HoldSvc interface {
	CreateHold(ctx context.Context, clientID string, intent domain.BookingIntent) (*domain.HoldResult, error)
	CreateTopUp(ctx context.Context, clientID string, amount decimal.Decimal) (*domain.HoldResult, error)
}

type ClientSvc interface {
	Register(ctx context.Context, input domain.RegisterClientInput) (*domain.Client, error)
	GetWallet(ctx context.Context, clientID string) (*domain.Wallet, error)
	ListBookings(ctx context.Context, clientID string) ([]*domain.Booking, error)
}

type ScheduleSvc interface {
	CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.ScheduleSlot, error)
	ListSlots(ctx context.Context, filter domain.SlotFilter) ([]*domain.ScheduleSlot, error)
	CreateGroup(ctx context.Context, input domain.CreateGroupInput) (*domain.GroupTraining, error)
	ListGroups(ctx context.Context, date *time.Time) ([]*domain.GroupTraining, error)
}

type Services struct {
	Holds          HoldSvc
	Webhooks       WebhookSvc
	Clients        ClientSvc
	Schedule       ScheduleSvc
	Reconciliation ReconciliationSvc
	Referrals      ReferralSvc
}

type Handler struct {
	holdService           HoldSvc
	webhookService        WebhookSvc
	clientService         ClientSvc
	scheduleService       ScheduleSvc
	reconciliationService ReconciliationSvc
	referralService       ReferralSvc
}

func NewHandler(s Services) *Handler {
	return &Handler{
		holdService:           s.Holds,
		webhookService:        s.Webhooks,
		clientService:         s.Clients,
		scheduleService:       s.Schedule,
		reconciliationService: s.Reconciliation,
		referralService:       s.Referrals,
	}
}

// Holds

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent := domain.BookingIntent{
		Kind:              domain.IntentKind(req.Kind),
		SlotID:            req.SlotID,
		GroupTrainingID:   req.GroupTrainingID,
		ParticipantsCount: req.ParticipantsCount,
		ParticipantsNames: req.ParticipantsNames,
		SportType:         domain.SportType(req.SportType),
		PaymentMethod:     domain.PaymentMethod(req.PaymentMethod),
	}

	res, err := h.holdService.CreateHold(c.Request.Context(), req.ClientID, intent)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldResponse(res))
}

func (h *Handler) CreateTopUp(c *ginext.Context) {
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.holdService.CreateTopUp(c.Request.Context(), req.ClientID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldResponse(res))
}

// Clients

func (h *Handler) CreateClient(c *ginext.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterClientInput{
		Name:           req.Name,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
		ReferrerID:     req.ReferrerID,
	}

	client, err := h.clientService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *Handler) GetWallet(c *ginext.Context) {
	clientID, ok := uuidParam(c, "id", "invalid client id")
	if !ok {
		return
	}

	wallet, err := h.clientService.GetWallet(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) GetClientBookings(c *ginext.Context) {
	clientID, ok := uuidParam(c, "id", "invalid client id")
	if !ok {
		return
	}

	bookings, err := h.clientService.ListBookings(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Schedule

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	slot, err := h.scheduleService.CreateSlot(c.Request.Context(), domain.CreateSlotInput{
		InstructorID: req.InstructorID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Price:        req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) ListSlots(c *ginext.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	filter := domain.SlotFilter{
		InstructorID: c.Query("instructor_id"),
		Date:         date,
	}
	if filter.InstructorID != "" {
		if _, err := uuid.Parse(filter.InstructorID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid instructor id"})
			return
		}
	}

	slots, err := h.scheduleService.ListSlots(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateGroup(c *ginext.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	group, err := h.scheduleService.CreateGroup(c.Request.Context(), domain.CreateGroupInput{
		SlotID:          req.SlotID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		SportType:       domain.SportType(req.SportType),
		MaxParticipants: req.MaxParticipants,
		PricePerPerson:  req.PricePerPerson,
		Location:        req.Location,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

func (h *Handler) ListGroups(c *ginext.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	groups, err := h.scheduleService.ListGroups(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, dto.ToGroupResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func uuidParam(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func dateQuery(c *ginext.Context) (*time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return nil, true
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return nil, false
	}
	return &date, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrReferralNotFound),
		errors.Is(err, domain.ErrUnknownProvider):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrGroupClosed),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrTransactionNotPending),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrBookingExists),
		errors.Is(err, domain.ErrAlreadyReferred):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformedPayload):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
