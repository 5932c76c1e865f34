package api

import (
	"github.com/limbo/fitstar/internal/display"
	"github.com/limbo/fitstar/pkg/entity"
)

// Presenter derives display values from stored records.
type Presenter interface {
	Compare(analysis *entity.BodyAnalysis) display.Comparison
	Achievements(user display.State[*entity.User], progress display.State[*entity.ProgressData]) display.AchievementBoard
}
