package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/limbo/fitstar/internal/client"
	"github.com/limbo/fitstar/internal/display"
	"github.com/limbo/fitstar/pkg/config"
	"github.com/spf13/cobra"
)

var (
	apiURL  string
	userID  int64
	refresh int

	api     *client.Client
	adapter *display.Adapter
)

var rootCmd = &cobra.Command{
	Use:   "fitstar",
	Short: "FitStar in the terminal",
	Long: `fitstar shows the FitStar screens as text.

SCREENS:

  home       streak, total workouts, body match and this week
  analysis   latest body analysis compared with the matched celebrity
  workout    today's workouts, the two-week plan, logging a session
  progress   weekly chart and achievement badges
  profile    account card

Values marked (demo) are placeholders shown while the API has no data
or cannot be reached.

EXAMPLES:

  fitstar home --user 1
  fitstar workout log pilates-1
  fitstar progress --api http://localhost:8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		cfg := config.New()
		if apiURL == "" {
			apiURL = cfg.GetStringOr("FITSTAR_API", "http://localhost:8080")
		}
		var err error
		api, err = client.New(apiURL, client.WithTTL(cfg.GetDuration("FITSTAR_CACHE_TTL", 30*time.Second)))
		if err != nil {
			return fmt.Errorf("failed to initialize api client: %w", err)
		}
		adapter = display.New(display.ConfigFromEnv(cfg))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if api != nil {
			api.Close()
			api = nil
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base url (default $FITSTAR_API or http://localhost:8080)")
	rootCmd.PersistentFlags().Int64VarP(&userID, "user", "u", 1, "user id")
	rootCmd.PersistentFlags().IntVar(&refresh, "refresh", 0, "bump to bypass cached answers")
}
