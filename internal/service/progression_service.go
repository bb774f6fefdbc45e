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

type ProgressionService struct {
	profiles     repository.ProfilesRepositoryI
	achievements repository.AchievementsRepositoryI
	streaks      repository.GoalStreaksRepositoryI
	ladder       leveling.Ladder
}

func NewProgressionService(
	profiles repository.ProfilesRepositoryI,
	achievements repository.AchievementsRepositoryI,
	streaks repository.GoalStreaksRepositoryI,
	ladder leveling.Ladder,
) *ProgressionService {
	if profiles == nil || achievements == nil || streaks == nil {
		log.Fatal("on progression service provided nil repos")
	}
	if len(ladder) == 0 {
		ladder = leveling.DefaultLadder
	}
	return &ProgressionService{
		profiles:     profiles,
		achievements: achievements,
		streaks:      streaks,
		ladder:       ladder,
	}
}

func (ps *ProgressionService) Onboard(ctx context.Context, user *entity.User) error {
	err := ps.profiles.Create(ctx, &entity.Profile{
		ID:          user.ID,
		DisplayName: user.Name,
		Level:       leveling.Level(0),
	})
	if err != nil {
		return errors.New("profiles repository error: " + err.Error())
	}
	defs := make([]entity.Achievement, 0, len(leveling.Achievements))
	for _, a := range leveling.Achievements {
		defs = append(defs, entity.Achievement{Name: a.Name, Icon: a.Icon, Description: a.Description})
	}
	if err = ps.achievements.Seed(ctx, user.ID, defs); err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	return nil
}

// Award unlocks the named achievements and adds xp plus a bonus per new
// unlock. Crossing OverachieverXP unlocks Overachiever on the way.
func (ps *ProgressionService) Award(ctx context.Context, uid uuid.UUID, xp int, achievements ...string) (*Award, error) {
	res := &Award{Unlocked: []string{}}
	for _, name := range achievements {
		ok, err := ps.unlock(ctx, uid, name)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Unlocked = append(res.Unlocked, name)
			xp += leveling.XPAchievement
		}
	}
	if xp <= 0 {
		return res, nil
	}
	total, err := ps.addXP(ctx, uid, xp)
	if err != nil {
		return nil, err
	}
	res.XP = xp
	if total >= leveling.OverachieverXP {
		ok, err := ps.unlock(ctx, uid, leveling.OverachieverName)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Unlocked = append(res.Unlocked, leveling.OverachieverName)
			if total, err = ps.addXP(ctx, uid, leveling.XPAchievement); err != nil {
				return nil, err
			}
			res.XP += leveling.XPAchievement
		}
	}
	res.TotalXP = total
	res.Level = leveling.Level(total)
	if err = ps.profiles.SetLevel(ctx, uid, res.Level); err != nil {
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	logger.FromContext(ctx).Debug("xp awarded",
		slog.Int("xp", res.XP),
		slog.Int("total", total),
		slog.Any("unlocked", res.Unlocked),
	)
	return res, nil
}

func (ps *ProgressionService) unlock(ctx context.Context, uid uuid.UUID, name string) (bool, error) {
	ok, err := ps.achievements.Unlock(ctx, uid, name)
	if err != nil {
		return false, errors.New("achievements repository error: " + err.Error())
	}
	if ok {
		achievementsUnlockedTotal.WithLabelValues(name).Inc()
	}
	return ok, nil
}

func (ps *ProgressionService) addXP(ctx context.Context, uid uuid.UUID, xp int) (int, error) {
	total, err := ps.profiles.AddXP(ctx, uid, xp)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return 0, err
		}
		return 0, errors.New("profiles repository error: " + err.Error())
	}
	xpAwardedTotal.Add(float64(xp))
	return total, nil
}

type ProfileView struct {
	Profile  entity.Profile         `json:"profile"`
	Level    int                    `json:"level"`
	Progress leveling.Progress      `json:"progress"`
	NextTier *leveling.TierProgress `json:"next_tier"`
	Tiers    leveling.Ladder        `json:"tiers"`
	// Sum of current streaks over all goal streaks
	TotalStreaks int `json:"total_streaks"`
	// Greatest current streak, the one tiers are measured against
	BestStreak int `json:"best_streak"`
}

func (ps *ProgressionService) View(ctx context.Context, uid uuid.UUID) (*ProfileView, error) {
	profile, err := ps.profiles.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	streaks, err := ps.streaks.ListByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("goal streaks repository error: " + err.Error())
	}
	view := &ProfileView{
		Profile:  *profile,
		Level:    leveling.Level(profile.XP),
		Progress: leveling.LevelProgress(profile.XP),
		Tiers:    ps.ladder,
	}
	for _, gs := range streaks {
		view.TotalStreaks += gs.CurrentStreak
		view.BestStreak = max(view.BestStreak, gs.CurrentStreak)
	}
	view.NextTier = ps.ladder.Next(view.Level, view.BestStreak)
	return view, nil
}

func (ps *ProgressionService) Achievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error) {
	list, err := ps.achievements.ListByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return list, nil
}
