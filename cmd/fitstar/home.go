package main

import (
	"context"
	"fmt"
	"io"

	"github.com/limbo/fitstar/internal/display"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type dashboard struct {
	user     display.State[*entity.User]
	analysis display.State[*entity.BodyAnalysis]
	progress display.State[*entity.ProgressData]
}

// loadDashboard fetches the three home queries in parallel. Failures are kept
// in the states, never returned.
func loadDashboard(ctx context.Context, id int64) dashboard {
	var d dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := api.User(ctx, id, refresh)
		d.user = display.Resolve(user, err)
		return nil
	})
	g.Go(func() error {
		analysis, err := api.LatestAnalysis(ctx, id, refresh)
		d.analysis = display.Resolve(analysis, err)
		return nil
	})
	g.Go(func() error {
		progress, err := api.Progress(ctx, id, refresh)
		d.progress = display.Resolve(progress, err)
		return nil
	})
	g.Wait()
	return d
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show streak, body match and this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := loadDashboard(cmd.Context(), userID)
		out := cmd.OutOrStdout()
		reportFailure(out, "user", d.user)
		reportFailure(out, "analysis", d.analysis)
		reportFailure(out, "progress", d.progress)

		header := adapter.Header(d.user)
		heading(out, "FitStar"+demoTag(header.Demo))
		row(out, "连续训练", "%d 天", header.CurrentStreak)
		row(out, "总训练次数", "%d", header.TotalWorkouts)
		row(out, "目标进度", "%s %d%%", bar(header.TargetProgress), header.TargetProgress)
		fmt.Fprintln(out)

		printMatchCard(out, d.analysis)
		fmt.Fprintln(out)

		weekly := adapter.Weekly(d.progress)
		heading(out, "本周"+demoTag(weekly.Demo))
		row(out, "训练", "%d/%d", weekly.Workouts, weekly.Goal)
		row(out, "消耗", "%s", calories(weekly.Calories))
		return nil
	},
}

func printMatchCard(out io.Writer, analysis display.State[*entity.BodyAnalysis]) {
	heading(out, "身材匹配")
	if !analysis.Ok() || analysis.Data == nil {
		faint.Fprintln(out, "  还没有身材分析，上传照片开始分析")
		return
	}
	an := analysis.Data
	row(out, "明星", "%s  %s", an.CelebrityMatch, faint.Sprint(display.CelebrityImage(an.CelebrityMatch)))
	row(out, "匹配度", "%s %d%%", bar(an.MatchPercentage), display.ClampPercent(an.MatchPercentage))
	row(out, "体型", "%s", an.BodyType)
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
