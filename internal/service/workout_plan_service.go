package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/fitstar/internal/repository"
	"github.com/limbo/fitstar/pkg/entity"
)

var workoutCatalog = []entity.WorkoutTemplate{
	{ID: "pilates-1", Name: "普拉提核心训练", Duration: 30, Calories: 180, Difficulty: "初级", Type: "核心训练", Icon: "activity", Color: "from-violet-400 to-purple-500"},
	{ID: "cardio-1", Name: "轻度有氧运动", Duration: 25, Calories: 200, Difficulty: "中级", Type: "有氧运动", Icon: "heart", Color: "from-rose-400 to-pink-500"},
	{ID: "yoga-1", Name: "瑜伽拉伸", Duration: 20, Calories: 80, Difficulty: "放松", Type: "拉伸", Icon: "leaf", Color: "from-emerald-400 to-teal-500"},
	{ID: "ballet-1", Name: "芭蕾塑形训练", Duration: 35, Calories: 250, Difficulty: "中级", Type: "塑形", Icon: "sparkles", Color: "from-pink-400 to-fuchsia-500"},
	{ID: "hiit-1", Name: "HIIT间歇训练", Duration: 20, Calories: 300, Difficulty: "高强度", Type: "燃脂", Icon: "zap", Color: "from-amber-400 to-orange-500"},
}

// Second-week focus workout per body type label.
var bodyTypeFocus = map[string]string{
	"沙漏型": "ballet-1",
	"梨形":  "cardio-1",
	"苹果型": "hiit-1",
	"矩形":  "pilates-1",
}

const defaultFocus = "ballet-1"

type WorkoutPlanService struct {
	sessions repository.WorkoutSessionsRepositoryI
	now      func() time.Time
}

func NewWorkoutPlanService(sessions repository.WorkoutSessionsRepositoryI) *WorkoutPlanService {
	return NewWorkoutPlanServiceWithClock(sessions, time.Now)
}

func NewWorkoutPlanServiceWithClock(sessions repository.WorkoutSessionsRepositoryI, now func() time.Time) *WorkoutPlanService {
	if sessions == nil {
		log.Fatal("provided nil workoutSessionsRepo")
	}
	return &WorkoutPlanService{
		sessions: sessions,
		now:      now,
	}
}

func (wps *WorkoutPlanService) Catalog() []entity.WorkoutTemplate {
	res := make([]entity.WorkoutTemplate, len(workoutCatalog))
	copy(res, workoutCatalog)
	return res
}

func (wps *WorkoutPlanService) Plan(bodyType string) []entity.WeeklyWorkout {
	focus, ok := bodyTypeFocus[bodyType]
	if !ok {
		focus = defaultFocus
	}
	return []entity.WeeklyWorkout{
		{
			Week:  1,
			Title: "第1周 · 基础适应",
			Workouts: []entity.WorkoutTemplate{
				scheduled("pilates-1", "周一"),
				scheduled("yoga-1", "周三"),
				scheduled("cardio-1", "周五"),
			},
		},
		{
			Week:  2,
			Title: "第2周 · 强化塑形",
			Workouts: []entity.WorkoutTemplate{
				scheduled("pilates-1", "周一"),
				scheduled(focus, "周三"),
				scheduled("yoga-1", "周四"),
				scheduled("hiit-1", "周六"),
			},
		},
	}
}

func scheduled(id, day string) entity.WorkoutTemplate {
	for _, w := range workoutCatalog {
		if w.ID == id {
			w.Schedule = day
			return w
		}
	}
	return entity.WorkoutTemplate{ID: id, Schedule: day}
}

func (wps *WorkoutPlanService) Today(ctx context.Context, userID int64) ([]entity.TodayWorkout, error) {
	from := startOfDay(wps.now())
	sessions, err := wps.sessions.ListByUserBetween(ctx, userID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.New("workout sessions repository error: " + err.Error())
	}
	done := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		done[s.WorkoutName] = true
	}
	res := make([]entity.TodayWorkout, 0, len(workoutCatalog))
	for _, w := range workoutCatalog {
		res = append(res, entity.TodayWorkout{
			WorkoutTemplate: w,
			Completed:       done[w.Name],
		})
	}
	return res, nil
}
