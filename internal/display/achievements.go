package display

import "github.com/limbo/fitstar/pkg/entity"

const lockedColor = "from-gray-200 to-gray-300"

type achievementRule struct {
	achievement entity.Achievement
	goal        string
	unlocked    func(s progressSnapshot) bool
}

type progressSnapshot struct {
	streak   int
	total    int
	weekly   int
	weekGoal int
}

var achievementRules = []achievementRule{
	{
		achievement: entity.Achievement{ID: "streak-7", Name: "连续7天", Icon: "fire", Description: "连续7天完成训练", Color: "from-amber-400 to-orange-500"},
		goal:        `连续训练7天解锁"连续7天"徽章`,
		unlocked:    func(s progressSnapshot) bool { return s.streak >= 7 },
	},
	{
		achievement: entity.Achievement{ID: "first-complete", Name: "首次完成", Icon: "trophy", Description: "完成第一次训练", Color: "from-blue-400 to-blue-600"},
		goal:        `完成第一次训练解锁"首次完成"徽章`,
		unlocked:    func(s progressSnapshot) bool { return s.total >= 1 },
	},
	{
		achievement: entity.Achievement{ID: "perfect-week", Name: "完美一周", Icon: "star", Description: "一周内完成所有训练", Color: "from-emerald-400 to-emerald-600"},
		goal:        `一周内完成所有训练解锁"完美一周"徽章`,
		unlocked:    func(s progressSnapshot) bool { return s.weekGoal > 0 && s.weekly >= s.weekGoal },
	},
	{
		achievement: entity.Achievement{ID: "streak-14", Name: "坚持不懈", Icon: "medal", Description: "连续14天完成训练", Color: "from-violet-400 to-purple-600"},
		goal:        `连续训练14天解锁"坚持不懈"徽章`,
		unlocked:    func(s progressSnapshot) bool { return s.streak >= 14 },
	},
}

type AchievementBoard struct {
	Achievements []entity.Achievement `json:"achievements"`
	// Empty once every badge is unlocked.
	NextGoal string `json:"nextGoal"`
	Demo     bool   `json:"demo"`
}

// Achievements evaluates the badge rules against the user and weekly progress.
// Missing inputs are replaced by the header and weekly fallbacks.
func (a *Adapter) Achievements(user State[*entity.User], progress State[*entity.ProgressData]) AchievementBoard {
	header := a.Header(user)
	weekly := a.Weekly(progress)
	snap := progressSnapshot{
		streak:   header.CurrentStreak,
		total:    header.TotalWorkouts,
		weekly:   weekly.Workouts,
		weekGoal: weekly.Goal,
	}
	board := AchievementBoard{
		Achievements: make([]entity.Achievement, 0, len(achievementRules)),
		Demo:         header.Demo || weekly.Demo,
	}
	for _, rule := range achievementRules {
		ach := rule.achievement
		ach.Unlocked = rule.unlocked(snap)
		if !ach.Unlocked {
			ach.Color = lockedColor
			if board.NextGoal == "" {
				board.NextGoal = rule.goal
			}
		}
		board.Achievements = append(board.Achievements, ach)
	}
	return board
}
