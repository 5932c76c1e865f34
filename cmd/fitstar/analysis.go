package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/limbo/fitstar/internal/display"
	"github.com/spf13/cobra"
)

var analysisHistory bool

var analysisCmd = &cobra.Command{
	Use:     "analysis",
	Aliases: []string{"a"},
	Short:   "Compare your latest body analysis with your celebrity match",
	Long: `Compare your latest body analysis with the matched celebrity.

Each ratio shows your value, the celebrity reference and how similar they are.
Use --history to list every stored analysis, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		an, err := api.LatestAnalysis(cmd.Context(), userID, refresh)
		latest := display.Resolve(an, err)
		reportFailure(out, "analysis", latest)
		if !latest.Ok() {
			faint.Fprintln(out, "还没有身材分析，上传照片开始分析")
			return nil
		}

		cmp := adapter.Compare(latest.Data)
		heading(out, fmt.Sprintf("%s · %s · 匹配度 %d%%", cmp.Celebrity, cmp.BodyType, cmp.MatchPercentage))
		faint.Fprintln(out, "  "+cmp.CelebrityImage)
		for _, r := range cmp.Rows {
			fmt.Fprintf(out, "  %s\n", r.Label)
			fmt.Fprintf(out, "    %s %s %d%%\n", padRight("你", 6), bar(r.UserBar), r.UserBar)
			fmt.Fprintf(out, "    %s %s %d%%\n", padRight(cmp.Celebrity, 6), bar(r.CelebrityValue), r.CelebrityValue)
			good.Fprintf(out, "    相似度 %d%%\n", r.Similarity)
		}
		fmt.Fprintln(out)
		heading(out, "改进建议")
		for _, s := range cmp.Suggestions {
			fmt.Fprintln(out, "  • "+s)
		}

		if !analysisHistory {
			return nil
		}
		analyses, err := api.Analyses(cmd.Context(), userID, refresh)
		if err != nil {
			return fmt.Errorf("failed to list analyses: %w", err)
		}
		fmt.Fprintln(out)
		heading(out, "历史记录")
		for _, an := range analyses {
			fmt.Fprintf(out, "  %s %s %s %d%%\n",
				faint.Sprint(padRight(humanize.Time(an.CreatedAt), 16)),
				padRight(an.CelebrityMatch, 8),
				padRight(an.BodyType, 8),
				display.ClampPercent(an.MatchPercentage))
		}
		return nil
	},
}

func init() {
	analysisCmd.Flags().BoolVar(&analysisHistory, "history", false, "also list previous analyses")
	rootCmd.AddCommand(analysisCmd)
}
