package entity

import (
	"time"
)

type User struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	CurrentStreak   int        `json:"currentStreak"`
	TotalWorkouts   int        `json:"totalWorkouts"`
	TargetProgress  int        `json:"targetProgress"`
	LastWorkoutDate *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// BodyAnalysis is immutable once stored. Ratios and match are percentages.
type BodyAnalysis struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	PhotoURL        string    `json:"photoUrl"`
	CelebrityMatch  string    `json:"celebrityMatch"`
	MatchPercentage int       `json:"matchPercentage"`
	BodyType        string    `json:"bodyType"`
	ShoulderRatio   int       `json:"shoulderRatio"`
	WaistHipRatio   int       `json:"waistHipRatio"`
	LegRatio        int       `json:"legRatio"`
	CreatedAt       time.Time `json:"createdAt"`
}

type WorkoutSession struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	WorkoutPlanID  int64     `json:"workoutPlanId"`
	WorkoutName    string    `json:"workoutName"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	CompletedAt    time.Time `json:"completedAt"`
}

type SessionPoint struct {
	Day      string `json:"day"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
}

type ProgressData struct {
	WeeklyWorkouts int            `json:"weeklyWorkouts"`
	WeeklyCalories int            `json:"weeklyCalories"`
	Sessions       []SessionPoint `json:"sessions"`
}

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Color       string `json:"color"`
}

type WorkoutTemplate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"`
	Calories   int    `json:"calories"`
	Difficulty string `json:"difficulty"`
	Type       string `json:"type"`
	Schedule   string `json:"schedule,omitempty"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
}

type WeeklyWorkout struct {
	Week     int               `json:"week"`
	Title    string            `json:"title"`
	Workouts []WorkoutTemplate `json:"workouts"`
}

// TodayWorkout is a catalog entry with completion derived from today's sessions.
type TodayWorkout struct {
	WorkoutTemplate
	Completed bool `json:"completed"`
}
