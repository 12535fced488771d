package cmd

import (
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/handler/presenter"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type fetchOptions struct {
	key          string
	days         int
	keywords     []string
	keywordsFile string
	maxSubs      uint64
	minViews     uint64
	duration     string
	sortBy       string
}

func newFetchCmd(global *globalOptions) *cobra.Command {
	opts := &fetchOptions{}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one search and write the results to CSV",
		Long: `Search every keyword, keep videos from small channels that pass the
filters, print them and write them to the CSV file given by --out.

Examples:
  viral-topics fetch
  viral-topics fetch --keyword "true cheating story" --keyword "reddit marriage"
  viral-topics fetch --days 10 --max-subs 5000 --duration long --sort ratio`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.runConfig()
			if err != nil {
				return err
			}
			return runFetch(cmd, global, cfg)
		},
	}

	fetchCmd.Flags().StringVarP(&opts.key, "key", "k", "", "YouTube Data API key (env "+envAPIKey+")")
	fetchCmd.Flags().IntVarP(&opts.days, "days", "d", domain.DefaultLookbackDays, fmt.Sprintf("Search videos published in the last N days (%d-%d)", domain.MinLookbackDays, domain.MaxLookbackDays))
	fetchCmd.Flags().StringArrayVar(&opts.keywords, "keyword", nil, "Keyword to search, repeatable (defaults to the built-in list)")
	fetchCmd.Flags().StringVar(&opts.keywordsFile, "keywords-file", "", "File with one keyword per line")
	fetchCmd.Flags().Uint64Var(&opts.maxSubs, "max-subs", domain.DefaultMaxSubs, "Drop videos from channels with more subscribers")
	fetchCmd.Flags().Uint64Var(&opts.minViews, "min-views", domain.DefaultMinViews, "Drop videos with fewer views")
	fetchCmd.Flags().StringVar(&opts.duration, "duration", "any", "Video duration (any, short, medium, long)")
	fetchCmd.Flags().StringVarP(&opts.sortBy, "sort", "s", "views", "Order of results (views, ratio, recency)")

	return fetchCmd
}

func (o *fetchOptions) runConfig() (domain.RunConfig, error) {
	cfg := domain.DefaultRunConfig()

	cfg.Credential = strings.TrimSpace(o.key)
	if cfg.Credential == "" {
		cfg.Credential = os.Getenv(envAPIKey)
	}
	cfg.Days = o.days
	cfg.MaxSubscribers = o.maxSubs
	cfg.MinViews = o.minViews

	var err error
	if cfg.Duration, err = domain.ParseDurationBucket(o.duration); err != nil {
		return cfg, err
	}
	if cfg.SortBy, err = domain.ParseSortKey(o.sortBy); err != nil {
		return cfg, err
	}

	keywords, err := o.collectKeywords()
	if err != nil {
		return cfg, err
	}
	if len(keywords) > 0 {
		cfg.Keywords = keywords
	}

	return cfg, cfg.Validate()
}

func (o *fetchOptions) collectKeywords() ([]string, error) {
	var keywords []string
	for _, k := range o.keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	if o.keywordsFile != "" {
		data, err := os.ReadFile(o.keywordsFile)
		if err != nil {
			return nil, fmt.Errorf("reading keywords file: %w", err)
		}
		keywords = append(keywords, domain.ParseKeywords(string(data))...)
	}
	return keywords, nil
}

func runFetch(cmd *cobra.Command, global *globalOptions, cfg domain.RunConfig) error {
	a, err := newApp(cmd.Context(), global, "viral_topics_fetch")
	if err != nil {
		return err
	}
	defer a.Close()

	errOut := cmd.ErrOrStderr()
	report, err := a.viral.FetchViralVideos(cmd.Context(), cfg, func(keyword string) {
		fmt.Fprintf(errOut, "Fetching: %s\n", keyword)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, presenter.Report(report, 0))

	if len(report.Records) == 0 {
		return nil
	}

	if err := a.viral.ExportVideos(global.out, report.Records); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d videos to %s\n", len(report.Records), global.out)
	return nil
}
