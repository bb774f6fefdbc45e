package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/leveling"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/internal/stats"
	"github.com/limbo/lifeflow/internal/streak"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/limbo/lifeflow/pkg/logger"
)

const (
	// Tries of one transition before giving up with ErrStreakConflict
	maxUpdateAttempts   = 3
	longestStreaksLimit = 5

	defaultStreakIcon  = "local_fire_department"
	defaultStreakColor = "primary"
)

type GoalStreaksService struct {
	streaks repository.GoalStreaksRepositoryI
	awarder Awarder
	clock   *calendar.Clock
}

func NewGoalStreaksService(streaks repository.GoalStreaksRepositoryI, awarder Awarder, clock *calendar.Clock) *GoalStreaksService {
	if streaks == nil || awarder == nil || clock == nil {
		log.Fatal("on goal streaks service provided nil dependencies")
	}
	return &GoalStreaksService{
		streaks: streaks,
		awarder: awarder,
		clock:   clock,
	}
}

func (gss *GoalStreaksService) Create(ctx context.Context, uid uuid.UUID, req *CreateGoalStreakRequest) (*entity.GoalStreak, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Mode == entity.ModeDaily && (req.StartDate == nil || req.EndDate == nil) {
		return nil, errors.Join(errorvalues.ErrInvalidRange, errors.New("daily streak needs start_date and end_date"))
	}
	if req.StartDate != nil && req.EndDate != nil {
		if _, err := calendar.NewWindow(*req.StartDate, *req.EndDate); err != nil {
			return nil, err
		}
	}
	gs := entity.GoalStreak{
		UserID:      uid,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Icon:        req.Icon,
		Color:       req.Color,
		RewardTitle: req.RewardTitle,
		Mode:        req.Mode,
		TargetDays:  req.TargetDays,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if gs.Icon == "" {
		gs.Icon = defaultStreakIcon
	}
	if gs.Color == "" {
		gs.Color = defaultStreakColor
	}
	created, err := gss.streaks.Create(ctx, &gs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	if _, err = gss.awarder.Award(ctx, uid, 0, leveling.GoalSetterName); err != nil {
		logger.FromContext(ctx).Error("unlocking goal setter failed", slog.String("error", err.Error()))
	}
	return created, nil
}

func (gss *GoalStreaksService) List(ctx context.Context, uid uuid.UUID, mode entity.StreakMode) ([]entity.GoalStreak, error) {
	var (
		list []entity.GoalStreak
		err  error
	)
	switch {
	case mode == "":
		list, err = gss.streaks.ListByUserID(ctx, uid)
	case mode.Valid():
		list, err = gss.streaks.ListByMode(ctx, uid, mode)
	default:
		return nil, errorvalues.ErrUnknownMode
	}
	if err != nil {
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	return list, nil
}

func (gss *GoalStreaksService) Checkin(ctx context.Context, id, uid uuid.UUID, action streak.Action) (*CheckinResult, error) {
	return gss.transition(ctx, id, uid, string(action), action == streak.Increment, func(gs entity.GoalStreak, today civil.Date) (entity.GoalStreak, error) {
		return streak.ApplyCheckin(gs, action, today)
	})
}

// SetStreak is a manual correction, it never earns xp.
func (gss *GoalStreaksService) SetStreak(ctx context.Context, id, uid uuid.UUID, value int) (*CheckinResult, error) {
	return gss.transition(ctx, id, uid, "set", false, func(gs entity.GoalStreak, _ civil.Date) (entity.GoalStreak, error) {
		return streak.SetCurrentStreak(gs, value), nil
	})
}

type transitionFunc func(gs entity.GoalStreak, today civil.Date) (entity.GoalStreak, error)

// transition reads the streak, applies apply and stores the result only if
// nobody changed the streak in between. On conflict it starts over.
// Only rewarded transitions earn xp and achievements.
func (gss *GoalStreaksService) transition(ctx context.Context, id, uid uuid.UUID, action string, rewarded bool, apply transitionFunc) (*CheckinResult, error) {
	today := gss.clock.Today()
	for range maxUpdateAttempts {
		prev, err := gss.getOwned(ctx, id, uid)
		if err != nil {
			return nil, err
		}
		next, err := apply(*prev, today)
		if err != nil {
			return nil, err
		}
		err = gss.streaks.UpdateProgress(ctx, prev, &next)
		if errors.Is(err, errorvalues.ErrStreakConflict) {
			streakConflictsTotal.Inc()
			continue
		}
		if err != nil {
			return nil, errors.New("goal streaks repository error: " + err.Error())
		}
		checkinsTotal.WithLabelValues(string(next.Mode), action).Inc()
		res := &CheckinResult{GoalStreak: next}
		if rewarded {
			res.Award = gss.award(ctx, uid, prev.CurrentStreak, next.CurrentStreak)
		}
		return res, nil
	}
	return nil, errorvalues.ErrStreakConflict
}

// award never fails the transition, it is already stored.
func (gss *GoalStreaksService) award(ctx context.Context, uid uuid.UUID, prev, next int) *Award {
	xp := leveling.CheckinXP(prev, next)
	unlock := leveling.StreakAchievements(prev, next)
	if xp == 0 && len(unlock) == 0 {
		return nil
	}
	award, err := gss.awarder.Award(ctx, uid, xp, unlock...)
	if err != nil {
		logger.FromContext(ctx).Error("awarding xp failed",
			slog.Int("xp", xp),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return award
}

func (gss *GoalStreaksService) Update(ctx context.Context, id, uid uuid.UUID, req *UpdateGoalStreakRequest) (*entity.GoalStreak, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	gs, err := gss.getOwned(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		gs.Title = *req.Title
	}
	if req.Subtitle != nil {
		gs.Subtitle = *req.Subtitle
	}
	if req.Icon != nil {
		gs.Icon = *req.Icon
	}
	if req.Color != nil {
		gs.Color = *req.Color
	}
	if req.RewardTitle != nil {
		gs.RewardTitle = req.RewardTitle
	}
	if req.TargetDays != nil {
		if *req.TargetDays < gs.CurrentStreak {
			return nil, errorvalues.ErrTargetBelowStreak
		}
		gs.TargetDays = *req.TargetDays
	}
	err = gss.streaks.UpdateDetails(ctx, gs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) || errors.Is(err, errorvalues.ErrTargetBelowStreak) {
			return nil, err
		}
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	return gs, nil
}

func (gss *GoalStreaksService) Delete(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := gss.getOwned(ctx, id, uid); err != nil {
		return err
	}
	err := gss.streaks.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return err
		}
		return errors.New("goal streaks repository error: " + err.Error())
	}
	return nil
}

func (gss *GoalStreaksService) Dashboard(ctx context.Context, uid uuid.UUID, date *civil.Date) (*DashboardView, error) {
	day := gss.dayOrToday(date)
	list, err := gss.streaks.ListByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	return &DashboardView{
		Date:      day,
		Week:      calendar.WeekDays(day),
		Dashboard: stats.BuildDashboard(list, day),
	}, nil
}

func (gss *GoalStreaksService) Insights(ctx context.Context, uid uuid.UUID, date *civil.Date) (*stats.Insights, error) {
	tracked, err := gss.tracked(ctx, uid)
	if err != nil {
		return nil, err
	}
	res, err := stats.PeriodInsights(tracked, gss.dayOrToday(date))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (gss *GoalStreaksService) RangeStats(ctx context.Context, uid uuid.UUID, start, end civil.Date) (*stats.RangeStats, error) {
	if end.Before(start) {
		return nil, errorvalues.ErrInvalidRange
	}
	tracked, err := gss.tracked(ctx, uid)
	if err != nil {
		return nil, err
	}
	res, err := stats.AggregateRangeStats(tracked, start, end)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (gss *GoalStreaksService) Longest(ctx context.Context, uid uuid.UUID) ([]entity.GoalStreak, error) {
	list, err := gss.streaks.ListLongest(ctx, uid, longestStreaksLimit)
	if err != nil {
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	return list, nil
}

// tracked lists the daily streaks, the only ones bound to a fixed window.
func (gss *GoalStreaksService) tracked(ctx context.Context, uid uuid.UUID) ([]entity.GoalStreak, error) {
	list, err := gss.streaks.ListByMode(ctx, uid, entity.ModeDaily)
	if err != nil {
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	return list, nil
}

func (gss *GoalStreaksService) getOwned(ctx context.Context, id, uid uuid.UUID) (*entity.GoalStreak, error) {
	gs, err := gss.streaks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return nil, err
		}
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	if gs.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return gs, nil
}

func (gss *GoalStreaksService) dayOrToday(date *civil.Date) civil.Date {
	if date != nil {
		return *date
	}
	return gss.clock.Today()
}
