package progress

import (
	"fmt"
	"time"
)

// AchievementCategory identifies what kind of accomplishment an
// achievement rewards.
type AchievementCategory string

const (
	AchievementStreak     AchievementCategory = "streak"
	AchievementCompletion AchievementCategory = "completion"
	AchievementTimeSpent  AchievementCategory = "time_spent"
	AchievementFinancial  AchievementCategory = "financial"
	AchievementSocial     AchievementCategory = "social"
)

// Achievement is immutable once created.
type Achievement struct {
	Title       string
	Description string
	Icon        string
	Category    AchievementCategory
	UnlockedAt  time.Time
	Milestone   int // milestone value that triggered the unlock, 0 if none
}

// Milestone thresholds. Each fires at most once per value.
var (
	streakMilestones = []int{7, 30, 100, 365}
	courseMilestones = []int{1, 5, 10, 25}
	timeMilestones   = []int{60, 600, 3000} // minutes
)

// streakAchievement builds the achievement for a streak milestone.
func streakAchievement(days int, unlockedAt time.Time) Achievement {
	return Achievement{
		Title:       fmt.Sprintf("%d Day Streak", days),
		Description: fmt.Sprintf("Studied %d days in a row", days),
		Icon:        "flame",
		Category:    AchievementStreak,
		UnlockedAt:  unlockedAt,
		Milestone:   days,
	}
}

// courseAchievement builds the achievement for a course-count milestone.
func courseAchievement(count int, unlockedAt time.Time) Achievement {
	noun := "Courses"
	if count == 1 {
		noun = "Course"
	}
	return Achievement{
		Title:       fmt.Sprintf("%d %s Completed", count, noun),
		Description: fmt.Sprintf("Finished every lesson in %d %s", count, noun),
		Icon:        "trophy",
		Category:    AchievementCompletion,
		UnlockedAt:  unlockedAt,
		Milestone:   count,
	}
}

// timeAchievement builds the achievement for a study-time milestone.
func timeAchievement(minutes int, unlockedAt time.Time) Achievement {
	return Achievement{
		Title:       fmt.Sprintf("%d Minutes Studied", minutes),
		Description: fmt.Sprintf("Spent %d minutes learning", minutes),
		Icon:        "clock",
		Category:    AchievementTimeSpent,
		UnlockedAt:  unlockedAt,
		Milestone:   minutes,
	}
}

// levelUpAchievement builds the achievement appended on a level advance.
// Unlike milestone achievements it may repeat by title: each advance
// appends a fresh entry tagged with the new level's icon.
func levelUpAchievement(newLevel UserLevel, unlockedAt time.Time) Achievement {
	return Achievement{
		Title:       "Level Up!",
		Description: fmt.Sprintf("Reached %s level", newLevel.DisplayName()),
		Icon:        newLevel.Icon(),
		Category:    AchievementCompletion,
		UnlockedAt:  unlockedAt,
	}
}

// financialAchievement builds the first-financial-course achievement.
func financialAchievement(unlockedAt time.Time) Achievement {
	return Achievement{
		Title:       "Financial Foundations",
		Description: "Completed your first financial literacy course",
		Icon:        "coin",
		Category:    AchievementFinancial,
		UnlockedAt:  unlockedAt,
	}
}
