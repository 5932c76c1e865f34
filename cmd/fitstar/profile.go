package main

import (
	"github.com/limbo/fitstar/internal/display"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the account card",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		user, err := api.User(ctx, userID, refresh)
		userState := display.Resolve(user, err)
		analysis, err := api.LatestAnalysis(ctx, userID, refresh)
		analysisState := display.Resolve(analysis, err)
		reportFailure(out, "user", userState)

		card := adapter.Profile(userState, analysisState)
		header := adapter.Header(userState)
		heading(out, "["+card.Initial+"] "+card.Username+demoTag(card.Demo))
		row(out, "邮箱", "%s", card.Email)
		row(out, "身材分析", "%s", card.AnalysisBadge)
		row(out, "连续训练", "%d 天", header.CurrentStreak)
		row(out, "总训练次数", "%d", header.TotalWorkouts)
		row(out, "目标进度", "%s %d%%", bar(header.TargetProgress), header.TargetProgress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
