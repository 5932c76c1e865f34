package display

// Ratios groups one integer per body measurement shown on the comparison card.
type Ratios struct {
	Shoulder int
	WaistHip int
	Leg      int
}

// Fallback holds the literals shown while data is missing.
type Fallback struct {
	CurrentStreak  int
	TotalWorkouts  int
	TargetProgress int
	WeeklyWorkouts int
	WeeklyCalories int
	Username       string
	Email          string
	AnalysisBadge  string
}

type Config struct {
	SimilarityOffsets Ratios
	CelebrityCaps     Ratios
	CelebrityOffsets  Ratios
	ShoulderTarget    int
	WeeklyGoal        int
	Fallback          Fallback
}

func DefaultConfig() Config {
	return Config{
		SimilarityOffsets: Ratios{Shoulder: 5, WaistHip: 8, Leg: 2},
		CelebrityCaps:     Ratios{Shoulder: 85, WaistHip: 88, Leg: 95},
		CelebrityOffsets:  Ratios{Shoulder: 3, WaistHip: 5, Leg: 4},
		ShoulderTarget:    85,
		WeeklyGoal:        6,
		Fallback: Fallback{
			CurrentStreak:  7,
			TotalWorkouts:  23,
			TargetProgress: 68,
			WeeklyWorkouts: 5,
			WeeklyCalories: 1240,
			Username:       "Demo User",
			Email:          "demo@fitstar.com",
			AnalysisBadge:  "未分析",
		},
	}
}

// IntGetter is satisfied by *config.Config.
type IntGetter interface {
	GetInt(key string, def int) int
}

// ConfigFromEnv overrides the defaults with SIMILARITY_OFFSET_*, CELEBRITY_CAP_*,
// CELEBRITY_OFFSET_*, SHOULDER_TARGET and WEEKLY_GOAL.
func ConfigFromEnv(env IntGetter) Config {
	cfg := DefaultConfig()
	cfg.SimilarityOffsets = ratiosFromEnv(env, "SIMILARITY_OFFSET_", cfg.SimilarityOffsets)
	cfg.CelebrityCaps = ratiosFromEnv(env, "CELEBRITY_CAP_", cfg.CelebrityCaps)
	cfg.CelebrityOffsets = ratiosFromEnv(env, "CELEBRITY_OFFSET_", cfg.CelebrityOffsets)
	cfg.ShoulderTarget = env.GetInt("SHOULDER_TARGET", cfg.ShoulderTarget)
	cfg.WeeklyGoal = env.GetInt("WEEKLY_GOAL", cfg.WeeklyGoal)
	return cfg
}

func ratiosFromEnv(env IntGetter, prefix string, def Ratios) Ratios {
	return Ratios{
		Shoulder: env.GetInt(prefix+"SHOULDER", def.Shoulder),
		WaistHip: env.GetInt(prefix+"WAIST_HIP", def.WaistHip),
		Leg:      env.GetInt(prefix+"LEG", def.Leg),
	}
}
