package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/leveling"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/limbo/lifeflow/pkg/logger"
)

const (
	defaultHabitIcon     = "check_circle"
	defaultHabitCategory = "general"
)

type HabitsService struct {
	repo    repository.HabitsRepositoryI
	awarder Awarder
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, awarder Awarder) *HabitsService {
	if habitsRepo == nil || awarder == nil {
		log.Fatal("on habits service provided nil dependencies")
	}
	return &HabitsService{
		repo:    habitsRepo,
		awarder: awarder,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Type:        req.Type,
		Category:    req.Category,
	}
	if h.Icon == "" {
		h.Icon = defaultHabitIcon
	}
	if h.Type == "" {
		h.Type = entity.HabitPositive
	}
	if h.Category == "" {
		h.Category = defaultHabitCategory
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	hs.collect(ctx, uid)
	return habit, nil
}

// collect unlocks Habit Collector once the user owns enough habits.
func (hs *HabitsService) collect(ctx context.Context, uid uuid.UUID) {
	count, err := hs.repo.CountByUserID(ctx, uid)
	if err != nil {
		logger.FromContext(ctx).Error("counting habits failed", slog.String("error", err.Error()))
		return
	}
	if count < leveling.HabitCollectorSize {
		return
	}
	if _, err = hs.awarder.Award(ctx, uid, 0, leveling.HabitCollectorName); err != nil {
		logger.FromContext(ctx).Error("unlocking habit collector failed", slog.String("error", err.Error()))
	}
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
