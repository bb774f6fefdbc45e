package leveling

type AchievementDef struct {
	Name        string
	Icon        string
	Description string
	// StreakDays unlocks the achievement when a streak reaches it. Zero means
	// another rule applies.
	StreakDays int
}

const (
	OverachieverName   = "Overachiever"
	OverachieverXP     = 1000
	GoalSetterName     = "Goal Setter"
	HabitCollectorName = "Habit Collector"
	HabitCollectorSize = 5
)

// Achievements are seeded locked for every new profile.
var Achievements = []AchievementDef{
	{Name: "First Step", Icon: "flag", Description: "Complete your first check-in", StreakDays: 1},
	{Name: "3-Day Spark", Icon: "bolt", Description: "Maintain a 3-day streak", StreakDays: 3},
	{Name: "Week Warrior", Icon: "military_tech", Description: "Maintain a 7-day streak", StreakDays: 7},
	{Name: "Two-Week Titan", Icon: "shield", Description: "Maintain a 14-day streak", StreakDays: 14},
	{Name: "Monthly Master", Icon: "workspace_premium", Description: "Maintain a 30-day streak", StreakDays: 30},
	{Name: "60-Day Legend", Icon: "stars", Description: "Maintain a 60-day streak", StreakDays: 60},
	{Name: "100-Day Hero", Icon: "emoji_events", Description: "Maintain a 100-day streak", StreakDays: 100},
	{Name: "Perfect Week", Icon: "event_available", Description: "Complete all habits for 7 consecutive days"},
	{Name: "Perfect Month", Icon: "calendar_month", Description: "Complete all habits for 30 consecutive days"},
	{Name: "Early Bird", Icon: "wb_twilight", Description: "Check in before 6 AM"},
	{Name: "Night Owl", Icon: "dark_mode", Description: "Check in after 11 PM"},
	{Name: "Weekend Warrior", Icon: "surfing", Description: "Complete all weekend habits for 4 weeks"},
	{Name: HabitCollectorName, Icon: "collections_bookmark", Description: "Create 5 different habits"},
	{Name: GoalSetterName, Icon: "track_changes", Description: "Create your first goal streak"},
	{Name: OverachieverName, Icon: "rocket_launch", Description: "Earn 1000 XP total"},
}

// StreakAchievements names the streak achievements whose threshold lies in (prev, next].
func StreakAchievements(prev, next int) []string {
	var names []string
	for _, a := range Achievements {
		if a.StreakDays > 0 && prev < a.StreakDays && a.StreakDays <= next {
			names = append(names, a.Name)
		}
	}
	return names
}
