package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/leveling"
	"github.com/limbo/lifeflow/internal/repository/mocks"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressionMocks struct {
	profiles     *mocks.MockProfilesRepositoryI
	achievements *mocks.MockAchievementsRepositoryI
	streaks      *mocks.MockGoalStreaksRepositoryI
}

func newProgression(t *testing.T) (*service.ProgressionService, progressionMocks) {
	ctrl := gomock.NewController(t)
	m := progressionMocks{
		profiles:     mocks.NewMockProfilesRepositoryI(ctrl),
		achievements: mocks.NewMockAchievementsRepositoryI(ctrl),
		streaks:      mocks.NewMockGoalStreaksRepositoryI(ctrl),
	}
	return service.NewProgressionService(m.profiles, m.achievements, m.streaks, nil), m
}

func TestOnboard(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: userID, Name: "test_user"}

	t.Run("profile and locked achievements", func(t *testing.T) {
		s, m := newProgression(t)
		m.profiles.EXPECT().Create(gomock.Any(), &entity.Profile{ID: userID, DisplayName: "test_user", Level: 1}).Return(nil)
		m.achievements.EXPECT().Seed(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, list []entity.Achievement) error {
				assert.Len(t, list, len(leveling.Achievements))
				for _, a := range list {
					assert.False(t, a.Unlocked)
				}
				return nil
			})
		assert.NoError(t, s.Onboard(ctx, user))
	})
	t.Run("profile error", func(t *testing.T) {
		s, m := newProgression(t)
		m.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
		assert.Error(t, s.Onboard(ctx, user))
	})
}

func TestAward(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		Desc            string
		XP              int
		Achievements    []string
		MockPrepareFunc func(m progressionMocks)
		Expected        *service.Award
		ExpectedErr     error
	}{
		{
			Desc: "plain xp",
			XP:   10,
			MockPrepareFunc: func(m progressionMocks) {
				m.profiles.EXPECT().AddXP(gomock.Any(), userID, 10).Return(510, nil)
				m.profiles.EXPECT().SetLevel(gomock.Any(), userID, 2).Return(nil)
			},
			Expected: &service.Award{XP: 10, TotalXP: 510, Level: 2, Unlocked: []string{}},
		},
		{
			Desc:         "new achievement adds bonus",
			XP:           10,
			Achievements: []string{"First Step"},
			MockPrepareFunc: func(m progressionMocks) {
				m.achievements.EXPECT().Unlock(gomock.Any(), userID, "First Step").Return(true, nil)
				m.profiles.EXPECT().AddXP(gomock.Any(), userID, 110).Return(110, nil)
				m.profiles.EXPECT().SetLevel(gomock.Any(), userID, 1).Return(nil)
			},
			Expected: &service.Award{XP: 110, TotalXP: 110, Level: 1, Unlocked: []string{"First Step"}},
		},
		{
			Desc:         "already unlocked achievement",
			Achievements: []string{leveling.GoalSetterName},
			MockPrepareFunc: func(m progressionMocks) {
				m.achievements.EXPECT().Unlock(gomock.Any(), userID, leveling.GoalSetterName).Return(false, nil)
			},
			Expected: &service.Award{Unlocked: []string{}},
		},
		{
			Desc: "crossing overachiever",
			XP:   60,
			MockPrepareFunc: func(m progressionMocks) {
				gomock.InOrder(
					m.profiles.EXPECT().AddXP(gomock.Any(), userID, 60).Return(1020, nil),
					m.profiles.EXPECT().AddXP(gomock.Any(), userID, leveling.XPAchievement).Return(1120, nil),
				)
				m.achievements.EXPECT().Unlock(gomock.Any(), userID, leveling.OverachieverName).Return(true, nil)
				m.profiles.EXPECT().SetLevel(gomock.Any(), userID, 3).Return(nil)
			},
			Expected: &service.Award{XP: 160, TotalXP: 1120, Level: 3, Unlocked: []string{leveling.OverachieverName}},
		},
		{
			Desc: "past overachiever",
			XP:   10,
			MockPrepareFunc: func(m progressionMocks) {
				m.profiles.EXPECT().AddXP(gomock.Any(), userID, 10).Return(1500, nil)
				m.achievements.EXPECT().Unlock(gomock.Any(), userID, leveling.OverachieverName).Return(false, nil)
				m.profiles.EXPECT().SetLevel(gomock.Any(), userID, 4).Return(nil)
			},
			Expected: &service.Award{XP: 10, TotalXP: 1500, Level: 4, Unlocked: []string{}},
		},
		{
			Desc: "profile not found",
			XP:   10,
			MockPrepareFunc: func(m progressionMocks) {
				m.profiles.EXPECT().AddXP(gomock.Any(), userID, 10).Return(0, errorvalues.ErrProfileNotFound)
			},
			ExpectedErr: errorvalues.ErrProfileNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s, m := newProgression(t)
			tc.MockPrepareFunc(m)
			res, err := s.Award(ctx, userID, tc.XP, tc.Achievements...)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, res)
		})
	}
}

func TestProfileView(t *testing.T) {
	ctx := context.Background()
	s, m := newProgression(t)
	m.profiles.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.Profile{ID: userID, DisplayName: "test_user", Level: 1, XP: 1350}, nil)
	m.streaks.EXPECT().ListByUserID(gomock.Any(), userID).Return([]entity.GoalStreak{
		*streakFixture(entity.ModeDaily, 6, nil),
		*streakFixture(entity.ModeFree, 3, nil),
	}, nil)

	view, err := s.View(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Level)
	assert.Equal(t, leveling.Progress{Current: 350, Target: 500, Percentage: 70}, view.Progress)
	assert.Equal(t, 9, view.TotalStreaks)
	assert.Equal(t, 6, view.BestStreak)
	require.NotNil(t, view.NextTier)
	assert.Equal(t, "Weekly Box", view.NextTier.Tier.Name)
	assert.Equal(t, 1, view.NextTier.DaysRemaining)
	assert.True(t, view.NextTier.LevelReached)
	assert.Equal(t, leveling.DefaultLadder, view.Tiers)

	t.Run("profile not found", func(t *testing.T) {
		m.profiles.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := s.View(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}
