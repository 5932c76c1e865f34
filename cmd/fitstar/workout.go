package main

import (
	"fmt"

	"github.com/limbo/fitstar/internal/client"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/spf13/cobra"
)

var (
	planBodyType string
	logDuration  int
	logCalories  int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Today's workouts, the training plan and logging",
	Long: `Browse workouts and log completed sessions.

COMMANDS:

  list   today's workouts with what is already done
  plan   two-week plan for a body type
  log    record a completed workout by its id

Logging refreshes streak and progress on the next read.`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List today's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := api.Today(cmd.Context(), userID, refresh)
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}
		out := cmd.OutOrStdout()
		heading(out, "今日训练")
		for _, w := range workouts {
			mark := faint.Sprint("○")
			if w.Completed {
				mark = good.Sprint("✓")
			}
			fmt.Fprintf(out, "  %s %s %s %s %s\n",
				mark,
				faint.Sprint(padRight(w.ID, 10)),
				padRight(w.Name, 18),
				padRight(fmt.Sprintf("%d 分钟", w.Duration), 8),
				faint.Sprint(w.Difficulty))
		}
		return nil
	},
}

var workoutPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the two-week plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		bodyType := planBodyType
		if bodyType == "" {
			if an, err := api.LatestAnalysis(cmd.Context(), userID, refresh); err == nil {
				bodyType = an.BodyType
			}
		}
		plan, err := api.Plan(cmd.Context(), bodyType, refresh)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, week := range plan {
			heading(out, week.Title)
			for _, w := range week.Workouts {
				fmt.Fprintf(out, "  %s %s %s\n",
					padRight(w.Schedule, 6),
					padRight(w.Name, 18),
					faint.Sprintf("%d 分钟 · %s", w.Duration, calories(w.Calories)))
			}
		}
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <workout-id>",
	Short: "Log a completed workout",
	Long: `Log a completed workout from today's list.

Duration and calories default to the workout's nominal values.

Examples:
  fitstar workout log pilates-1
  fitstar workout log hiit-1 --duration 15 --calories 160`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := api.Today(cmd.Context(), userID, refresh)
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}
		planID, tmpl, ok := findWorkout(workouts, args[0])
		if !ok {
			return fmt.Errorf("unknown workout: %s", args[0])
		}
		req := &client.LogWorkoutRequest{
			UserID:         userID,
			WorkoutPlanID:  planID,
			WorkoutName:    tmpl.Name,
			Duration:       tmpl.Duration,
			CaloriesBurned: tmpl.Calories,
		}
		if logDuration > 0 {
			req.Duration = logDuration
		}
		if logCalories > 0 {
			req.CaloriesBurned = logCalories
		}
		session, err := api.LogWorkout(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}
		out := cmd.OutOrStdout()
		good.Fprintf(out, "✓ 训练完成！%s\n", session.WorkoutName)
		fmt.Fprintf(out, "  %d 分钟 · %s\n", session.Duration, calories(session.CaloriesBurned))

		user, err := api.User(cmd.Context(), userID, refresh)
		if err == nil {
			fmt.Fprintf(out, "  连续训练 %d 天 · 总训练 %d 次\n", user.CurrentStreak, user.TotalWorkouts)
		}
		return nil
	},
}

// findWorkout returns the 1-based plan id of the workout with the given id.
func findWorkout(workouts []entity.TodayWorkout, id string) (int64, entity.WorkoutTemplate, bool) {
	for i, w := range workouts {
		if w.ID == id {
			return int64(i + 1), w.WorkoutTemplate, true
		}
	}
	return 0, entity.WorkoutTemplate{}, false
}

func init() {
	workoutPlanCmd.Flags().StringVarP(&planBodyType, "body-type", "b", "", "body type label (default: from latest analysis)")
	workoutLogCmd.Flags().IntVarP(&logDuration, "duration", "d", 0, "minutes actually trained")
	workoutLogCmd.Flags().IntVarP(&logCalories, "calories", "c", 0, "calories actually burned")
	workoutCmd.AddCommand(workoutListCmd, workoutPlanCmd, workoutLogCmd)
	rootCmd.AddCommand(workoutCmd)
}
