package display

import (
	"fmt"
	"strings"

	"github.com/limbo/fitstar/pkg/entity"
)

const defaultCelebrity = "刘诗诗"

var celebrityImages = map[string]string{
	"刘诗诗":  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=300&h=400&fit=crop&crop=face",
	"杨幂":   "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=300&h=400&fit=crop&crop=face",
	"迪丽热巴": "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=300&h=400&fit=crop&crop=face",
}

// CelebrityImage returns the reference photo for name, or the default one.
func CelebrityImage(name string) string {
	if url, ok := celebrityImages[name]; ok {
		return url
	}
	return celebrityImages[defaultCelebrity]
}

type Adapter struct {
	cfg Config
}

func New(cfg Config) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Config() Config {
	return a.cfg
}

type ComparisonRow struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	UserValue      int    `json:"userValue"`
	UserBar        int    `json:"userBar"`
	CelebrityValue int    `json:"celebrityValue"`
	Similarity     int    `json:"similarity"`
}

type Comparison struct {
	Celebrity       string          `json:"celebrity"`
	CelebrityImage  string          `json:"celebrityImage"`
	MatchPercentage int             `json:"matchPercentage"`
	BodyType        string          `json:"bodyType"`
	Rows            []ComparisonRow `json:"rows"`
	ImprovementGap  int             `json:"improvementGap"`
	Suggestions     []string        `json:"suggestions"`
}

func (a *Adapter) Compare(an *entity.BodyAnalysis) Comparison {
	so, cc, co := a.cfg.SimilarityOffsets, a.cfg.CelebrityCaps, a.cfg.CelebrityOffsets
	gap := ImprovementGap(a.cfg.ShoulderTarget, an.ShoulderRatio)
	return Comparison{
		Celebrity:       an.CelebrityMatch,
		CelebrityImage:  CelebrityImage(an.CelebrityMatch),
		MatchPercentage: ClampPercent(an.MatchPercentage),
		BodyType:        an.BodyType,
		Rows: []ComparisonRow{
			row("shoulder", "肩宽比例", an.ShoulderRatio, cc.Shoulder, co.Shoulder, so.Shoulder),
			row("waistHip", "腰臀比例", an.WaistHipRatio, cc.WaistHip, co.WaistHip, so.WaistHip),
			row("leg", "腿长比例", an.LegRatio, cc.Leg, co.Leg, so.Leg),
		},
		ImprovementGap: gap,
		Suggestions: []string{
			fmt.Sprintf("通过针对性训练，肩宽比例可提升 %d 个百分点", gap),
			"核心训练将帮助优化腰臀比例至理想状态",
			"拉伸和体态训练能让腿部线条更修长",
		},
	}
}

func row(key, label string, ratio, barCap, celebOffset, simOffset int) ComparisonRow {
	return ComparisonRow{
		Key:            key,
		Label:          label,
		UserValue:      ClampPercent(ratio),
		UserBar:        ClampPercent(ratio),
		CelebrityValue: CelebrityBarValue(ratio, barCap, celebOffset),
		Similarity:     Similarity(ratio, simOffset),
	}
}

type HeaderStats struct {
	CurrentStreak  int
	TotalWorkouts  int
	TargetProgress int
	Demo           bool
	Source         Status
}

// Header falls back to demo numbers unless the user is loaded.
func (a *Adapter) Header(user State[*entity.User]) HeaderStats {
	if user.Ok() && user.Data != nil {
		return HeaderStats{
			CurrentStreak:  user.Data.CurrentStreak,
			TotalWorkouts:  user.Data.TotalWorkouts,
			TargetProgress: ClampPercent(user.Data.TargetProgress),
			Source:         user.Status,
		}
	}
	fb := a.cfg.Fallback
	return HeaderStats{
		CurrentStreak:  fb.CurrentStreak,
		TotalWorkouts:  fb.TotalWorkouts,
		TargetProgress: fb.TargetProgress,
		Demo:           true,
		Source:         user.Status,
	}
}

type WeeklySummary struct {
	Workouts int
	Goal     int
	Calories int
	Sessions []entity.SessionPoint
	Demo     bool
	Source   Status
}

func (a *Adapter) Weekly(progress State[*entity.ProgressData]) WeeklySummary {
	if progress.Ok() && progress.Data != nil {
		return WeeklySummary{
			Workouts: progress.Data.WeeklyWorkouts,
			Goal:     a.cfg.WeeklyGoal,
			Calories: progress.Data.WeeklyCalories,
			Sessions: progress.Data.Sessions,
			Source:   progress.Status,
		}
	}
	return WeeklySummary{
		Workouts: a.cfg.Fallback.WeeklyWorkouts,
		Goal:     a.cfg.WeeklyGoal,
		Calories: a.cfg.Fallback.WeeklyCalories,
		Demo:     true,
		Source:   progress.Status,
	}
}

type ProfileCard struct {
	Username      string
	Email         string
	Initial       string
	AnalysisBadge string
	Demo          bool
}

func (a *Adapter) Profile(user State[*entity.User], analysis State[*entity.BodyAnalysis]) ProfileCard {
	fb := a.cfg.Fallback
	card := ProfileCard{
		Username:      fb.Username,
		Email:         fb.Email,
		AnalysisBadge: fb.AnalysisBadge,
		Demo:          true,
	}
	if user.Ok() && user.Data != nil {
		card.Username = user.Data.Username
		card.Email = user.Data.Email
		card.Demo = false
	}
	if analysis.Ok() && analysis.Data != nil && analysis.Data.CelebrityMatch != "" {
		card.AnalysisBadge = analysis.Data.CelebrityMatch
	}
	card.Initial = initial(card.Username)
	return card
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "U"
}
