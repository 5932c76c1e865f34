package main

import (
	"fmt"

	"github.com/limbo/fitstar/internal/display"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Weekly chart and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		user, err := api.User(ctx, userID, refresh)
		userState := display.Resolve(user, err)
		progress, err := api.Progress(ctx, userID, refresh)
		progressState := display.Resolve(progress, err)
		reportFailure(out, "user", userState)
		reportFailure(out, "progress", progressState)

		weekly := adapter.Weekly(progressState)
		heading(out, fmt.Sprintf("本周训练 %d/%d · %s%s", weekly.Workouts, weekly.Goal, calories(weekly.Calories), demoTag(weekly.Demo)))
		top := 0
		for _, s := range weekly.Sessions {
			top = max(top, s.Calories)
		}
		for _, s := range weekly.Sessions {
			fmt.Fprintf(out, "  %s %s %s\n", padRight(s.Day, 4), scaledBar(s.Calories, top),
				faint.Sprintf("%d 分钟 · %d kcal", s.Duration, s.Calories))
		}
		fmt.Fprintln(out)

		board := adapter.Achievements(userState, progressState)
		heading(out, "成就徽章"+demoTag(board.Demo))
		for _, a := range board.Achievements {
			if a.Unlocked {
				good.Fprintf(out, "  ★ %s %s\n", padRight(a.Name, 10), a.Description)
			} else {
				faint.Fprintf(out, "  ☆ %s %s\n", padRight(a.Name, 10), a.Description)
			}
		}
		if board.NextGoal != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  下一个目标: "+board.NextGoal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
