package leveling

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

type Tier struct {
	Name          string   `toml:"name" json:"name"`
	Icon          string   `toml:"icon" json:"icon"`
	RequiredLevel int      `toml:"required_level" json:"requiredLevel"`
	StreakDays    int      `toml:"streak_days" json:"streakDays"`
	Rewards       []string `toml:"rewards" json:"rewards"`
	Description   string   `toml:"description" json:"description"`
}

// Ladder is a list of tiers ordered by StreakDays, ascending.
type Ladder []Tier

var DefaultLadder = Ladder{
	{
		Name:          "Weekly Box",
		Icon:          "inventory_2",
		RequiredLevel: 2,
		StreakDays:    7,
		Rewards:       []string{"Custom Icon Pack", "Streak Shield (1 day)"},
		Description:   "Complete a 7-day streak to unlock",
	},
	{
		Name:          "Monthly Box",
		Icon:          "card_giftcard",
		RequiredLevel: 5,
		StreakDays:    30,
		Rewards:       []string{"Premium Theme", "Double XP (3 days)", "Exclusive Badge"},
		Description:   "Complete a 30-day streak to unlock",
	},
	{
		Name:          "Quarterly Box",
		Icon:          "diamond",
		RequiredLevel: 10,
		StreakDays:    90,
		Rewards:       []string{"Legendary Theme", "Profile Frame", "Mystery Badge", "Streak Shield (7 days)"},
		Description:   "Complete a 90-day streak to unlock",
	},
}

type TierProgress struct {
	Tier          Tier `json:"tier"`
	DaysRemaining int  `json:"daysRemaining"`
	// LevelReached tells whether the user's level meets Tier.RequiredLevel.
	LevelReached bool `json:"levelReached"`
}

// Next returns the first tier longer than currentStreak. Past the last tier
// the ladder cycles on the last tier's length. Nil only for an empty ladder.
func (l Ladder) Next(level, currentStreak int) *TierProgress {
	if len(l) == 0 {
		return nil
	}
	streak := max(currentStreak, 0)
	for _, t := range l {
		if streak < t.StreakDays {
			return &TierProgress{Tier: t, DaysRemaining: t.StreakDays - streak, LevelReached: level >= t.RequiredLevel}
		}
	}
	last := l[len(l)-1]
	return &TierProgress{
		Tier:          last,
		DaysRemaining: last.StreakDays - streak%last.StreakDays,
		LevelReached:  level >= last.RequiredLevel,
	}
}

// NextTier looks the tier up on DefaultLadder.
func NextTier(level, currentStreak int) *TierProgress {
	return DefaultLadder.Next(level, currentStreak)
}

type tierFile struct {
	Tiers []Tier `toml:"tier"`
}

// LoadLadder reads [[tier]] tables from a TOML file and sorts them by length.
func LoadLadder(path string) (Ladder, error) {
	var f tierFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.New("decoding tiers file error: " + err.Error())
	}
	if len(f.Tiers) == 0 {
		return nil, fmt.Errorf("tiers file %s has no [[tier]] entries", path)
	}
	for _, t := range f.Tiers {
		if t.StreakDays < 1 {
			return nil, fmt.Errorf("tier %q: streak_days must be positive", t.Name)
		}
	}
	slices.SortStableFunc(f.Tiers, func(a, b Tier) int {
		return a.StreakDays - b.StreakDays
	})
	return Ladder(f.Tiers), nil
}
