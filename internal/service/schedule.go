package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/cache"
	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/BatlZlat/gornostyle-sub004/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ScheduleService struct {
	repos  Repos
	cache  ports.GroupCache
	logger logger.Logger
}

func NewScheduleService(repos Repos, cache ports.GroupCache, logger logger.Logger) *ScheduleService {
	return &ScheduleService{
		repos:  repos,
		cache:  cache,
		logger: logger,
	}
}

func (s *ScheduleService) CreateSlot(ctx context.Context, in domain.CreateSlotInput) (*domain.ScheduleSlot, error) {
	if strings.TrimSpace(in.InstructorID) == "" {
		return nil, fmt.Errorf("%w: instructor_id is required", domain.ErrValidation)
	}
	if err := validateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	slot := &domain.ScheduleSlot{
		ID:           uuid.New().String(),
		InstructorID: in.InstructorID,
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Status:       domain.SlotStatusAvailable,
		Location:     in.Location,
		Price:        in.Price.Round(2),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repos.Slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("slot created",
		logger.String("slot_id", slot.ID),
		logger.String("instructor_id", slot.InstructorID),
	)

	return slot, nil
}

func (s *ScheduleService) ListSlots(ctx context.Context, f domain.SlotFilter) ([]*domain.ScheduleSlot, error) {
	return s.repos.Slots.List(ctx, f)
}

func (s *ScheduleService) CreateGroup(ctx context.Context, in domain.CreateGroupInput) (*domain.GroupTraining, error) {
	if err := validateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if in.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	if in.SportType == "" {
		in.SportType = domain.SportSki
	}
	if !in.SportType.Valid() {
		return nil, fmt.Errorf("%w: unknown sport type %q", domain.ErrValidation, in.SportType)
	}
	if in.PricePerPerson.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_person must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	g := &domain.GroupTraining{
		ID:              uuid.New().String(),
		SlotID:          in.SlotID,
		Date:            in.Date,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		SportType:       in.SportType,
		MaxParticipants: in.MaxParticipants,
		Status:          domain.GroupStatusOpen,
		PricePerPerson:  in.PricePerPerson.Round(2),
		Location:        in.Location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repos.Groups.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create group training: %w", err)
	}
	s.cache.InvalidateGroups(ctx)

	s.logger.Info("group training created",
		logger.String("group_id", g.ID),
		logger.Int("max_participants", g.MaxParticipants),
	)

	return g, nil
}

// ListGroups читает через кэш. Места при hold все равно проверяются по базе.
func (s *ScheduleService) ListGroups(ctx context.Context, date *time.Time) ([]*domain.GroupTraining, error) {
	key := cache.GroupsKey(date)
	if groups, ok := s.cache.GetGroups(ctx, key); ok {
		return groups, nil
	}

	groups, err := s.repos.Groups.List(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cache.SetGroups(ctx, key, groups)

	return groups, nil
}
