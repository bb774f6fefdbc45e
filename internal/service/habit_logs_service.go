package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/internal/activity"
	"github.com/limbo/lifeflow/internal/calendar"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/internal/stats"
	"github.com/limbo/lifeflow/pkg/entity"
)

type HabitLogsService struct {
	habits repository.HabitsRepositoryI
	logs   repository.HabitLogsRepositoryI
	clock  *calendar.Clock
}

func NewHabitLogsService(habits repository.HabitsRepositoryI, logs repository.HabitLogsRepositoryI, clock *calendar.Clock) *HabitLogsService {
	if habits == nil || logs == nil || clock == nil {
		log.Fatal("on habit logs service provided nil dependencies")
	}
	return &HabitLogsService{
		habits: habits,
		logs:   logs,
		clock:  clock,
	}
}

func (hls *HabitLogsService) Toggle(ctx context.Context, uid uuid.UUID, req *ToggleLogRequest) (*entity.HabitLogEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	today := hls.clock.Today()
	date := today
	if req.Date != nil {
		date = *req.Date
	}
	if date.After(today) {
		return nil, errorvalues.ErrCheckDateNotAllowed
	}
	habit, err := hls.habits.GetByID(ctx, req.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	entry, err := hls.logs.Toggle(ctx, &entity.HabitLogEntry{
		HabitID: habit.ID,
		UserID:  uid,
		Date:    date,
	}, req.Completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	habitLogsToggledTotal.WithLabelValues(strconv.FormatBool(entry.Completed)).Inc()
	return entry, nil
}

func (hls *HabitLogsService) DayLogs(ctx context.Context, uid uuid.UUID, date *civil.Date) (*DayLogs, error) {
	day := hls.dayOrToday(date)
	logs, err := hls.inWindow(ctx, uid, calendar.DayWindow(day))
	if err != nil {
		return nil, err
	}
	total, err := hls.countHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &DayLogs{
		Date:       day,
		Logs:       logs,
		Completion: stats.DailyTaskCompletion(logs, total, day),
	}, nil
}

func (hls *HabitLogsService) Week(ctx context.Context, uid uuid.UUID, start, end *civil.Date) (*WeekSummary, error) {
	var w calendar.Window
	switch {
	case start == nil && end == nil:
		w = calendar.WeekWindow(hls.clock.Today())
	case start == nil || end == nil:
		return nil, errors.Join(errorvalues.ErrInvalidRange, errors.New("both start and end are required"))
	default:
		var err error
		if w, err = calendar.NewWindow(*start, *end); err != nil {
			return nil, err
		}
	}
	logs, err := hls.inWindow(ctx, uid, w)
	if err != nil {
		return nil, err
	}
	return &WeekSummary{
		Start: w.Start,
		End:   w.End,
		Days:  stats.WeeklySummary(logs, w),
	}, nil
}

func (hls *HabitLogsService) MonthlyCompletion(ctx context.Context, uid uuid.UUID, date *civil.Date) (*stats.LogCompletion, error) {
	w := calendar.MonthWindow(hls.dayOrToday(date))
	logs, err := hls.inWindow(ctx, uid, w)
	if err != nil {
		return nil, err
	}
	res := stats.CompletionOf(logs, w)
	return &res, nil
}

func (hls *HabitLogsService) DoVsDont(ctx context.Context, uid uuid.UUID, date *civil.Date) ([]stats.DoVsDont, error) {
	day := hls.dayOrToday(date)
	logs, err := hls.inWindow(ctx, uid, calendar.WeekWindow(day))
	if err != nil {
		return nil, err
	}
	types, err := hls.habits.TypesByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return stats.WeeklyDoVsDont(logs, types, day), nil
}

func (hls *HabitLogsService) Activity(ctx context.Context, uid uuid.UUID, tf calendar.Timeframe, date *civil.Date) (*ActivityHeatmap, error) {
	w, err := calendar.ResolveActivityWindow(tf, hls.dayOrToday(date))
	if err != nil {
		return nil, err
	}
	logs, err := hls.inWindow(ctx, uid, w)
	if err != nil {
		return nil, err
	}
	total, err := hls.countHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &ActivityHeatmap{
		Timeframe: tf,
		Start:     w.Start,
		End:       w.End,
		Result:    activity.Classify(activity.CountLogs(logs, total), w, total),
	}, nil
}

func (hls *HabitLogsService) inWindow(ctx context.Context, uid uuid.UUID, w calendar.Window) ([]entity.HabitLogEntry, error) {
	logs, err := hls.logs.GetByUserAndDateRange(ctx, uid, w.Start, w.End)
	if err != nil {
		return nil, errors.New("habit logs repository error: " + err.Error())
	}
	return logs, nil
}

func (hls *HabitLogsService) countHabits(ctx context.Context, uid uuid.UUID) (int, error) {
	total, err := hls.habits.CountByUserID(ctx, uid)
	if err != nil {
		return 0, errors.New("habits repository error: " + err.Error())
	}
	return total, nil
}

func (hls *HabitLogsService) dayOrToday(date *civil.Date) civil.Date {
	if date != nil {
		return *date
	}
	return hls.clock.Today()
}
