package cmd

import (
	"TUI_viral_topics/infrastructure/exporter"
	"TUI_viral_topics/infrastructure/provider"
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/handler/tui"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	envAPIKey   = "YOUTUBE_API_KEY"
	envCacheTTL = "CACHE_TTL"
	envRedisURL = "REDIS_URL"
	envAPIBase  = "YOUTUBE_API_BASE"
)

// globalOptions are shared by every command.
type globalOptions struct {
	logDir   string
	cacheTTL time.Duration
	redisURL string
	apiBase  string
	out      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "viral-topics",
		Short: "Find viral videos from small YouTube channels",
		Long: `Viral Topics searches YouTube for recent, most-viewed videos on a list of
keywords and keeps the ones that outperform the size of their channel.

Features:
  • Interactive TUI with a configuration form and scrollable results
  • Headless fetch command for scripts and cron jobs
  • Ranking by views, view-to-subscriber ratio or recency
  • CSV export

Examples:
  viral-topics  # Launch interactive TUI
  viral-topics fetch --keyword "reddit stories" --days 7
  viral-topics fetch --keywords-file keywords.txt --sort ratio --out today.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logDir, "log-dir", "logs", "Directory for JSON log files")
	rootCmd.PersistentFlags().DurationVar(&opts.cacheTTL, "cache-ttl", 0, "How long API responses are memoized (env "+envCacheTTL+", default 10m)")
	rootCmd.PersistentFlags().StringVar(&opts.redisURL, "redis-url", "", "Optional Redis URL for a shared response cache (env "+envRedisURL+")")
	rootCmd.PersistentFlags().StringVar(&opts.apiBase, "api-base", provider.DefaultAPIBase, "YouTube Data API base URL (env "+envAPIBase+")")
	rootCmd.PersistentFlags().StringVarP(&opts.out, "out", "o", exporter.DefaultFileName, "CSV export path")

	rootCmd.AddCommand(newFetchCmd(opts))
	return rootCmd
}

// applyEnv fills every flag the user did not set from its environment variable.
func (o *globalOptions) applyEnv(cmd *cobra.Command) error {
	if v := os.Getenv(envCacheTTL); v != "" && !flagChanged(cmd, "cache-ttl") {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envCacheTTL, v, err)
		}
		o.cacheTTL = ttl
	}
	if v := os.Getenv(envRedisURL); v != "" && !flagChanged(cmd, "redis-url") {
		o.redisURL = v
	}
	if v := os.Getenv(envAPIBase); v != "" && !flagChanged(cmd, "api-base") {
		o.apiBase = v
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	a, err := newApp(cmd.Context(), opts, "viral_topics_tui")
	if err != nil {
		return err
	}
	defer a.Close()
	a.log.Info("Application starting...")

	defaults := domain.DefaultRunConfig()
	defaults.Credential = os.Getenv(envAPIKey)

	initialModel := tui.NewAppModel(a.viral, defaults, opts.out, a.log)

	program := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		a.log.Error("Error running TUI program", err)
		return fmt.Errorf("error running application: %w", err)
	}

	a.log.Info("Application finished.")
	return nil
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return newRootCmd().Execute()
}
