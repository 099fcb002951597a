package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloo-solutions/shopmate/internal/config"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/logger"
	"github.com/cloo-solutions/shopmate/internal/telemetry"
)

type rootOptions struct {
	json     bool
	envFiles []string
	logLevel string
}

// RootCmd creates the shopmate command. Without a subcommand it starts the
// interactive menu.
func RootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "shopmate",
		Short: "Shopping assistant for Musinsa",
		Long: `shopmate searches the web for fashion products, biased toward Musinsa.

It compares products by price and rating, recommends products for a taste
description, summarizes review pros and cons and runs a guided taste menu.
Run it without a subcommand for the interactive menu.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.json {
				return errors.New("--json requires a subcommand")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				return app.Menu(ctx)
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.json, "json", false, "Print results as JSON")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "Dotenv files to load (default .env)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
	AddHelpJSONFlag(cmd)

	cmd.AddCommand(CompareCmd(opts))
	cmd.AddCommand(RecommendCmd(opts))
	cmd.AddCommand(ReviewsCmd(opts))
	cmd.AddCommand(TasteCmd(opts))

	return cmd
}

// CompareCmd creates the compare command.
func CompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <product> <product>...",
		Short: "Compare products by price and rating",
		Long: `Compares two or more products by price, rating and value score.

Products may be passed as separate arguments or as one argument joined by
와/과, vs or commas, e.g. "나이키 에어포스 1와 아디다스 슈퍼스타".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, ", ")
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				return app.Compare(ctx, query)
			})
		},
	}
}

// RecommendCmd creates the recommend command.
func RecommendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <taste>",
		Short: "Recommend products for a taste description",
		Long:  "Parses styles, brands and budget from a free-form description and recommends the best matching products.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				return app.Recommend(ctx, input)
			})
		},
	}
}

// ReviewsCmd creates the reviews command.
func ReviewsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <product>",
		Short: "Summarize review pros and cons",
		Long:  "Collects marketplace reviews of a product and summarizes their pros and cons by topic.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product := strings.Join(args, " ")
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				return app.Reviews(ctx, product)
			})
		},
	}
}

// TasteCmd creates the taste command.
func TasteCmd(opts *rootOptions) *cobra.Command {
	var (
		keywords []string
		query    string
	)

	cmd := &cobra.Command{
		Use:   "taste",
		Short: "Recommend marketplace products for taste keywords",
		Long: `Ranks marketplace product pages against taste keywords.

Without --keyword or --query the guided questions are asked interactively.
Products are judged by OpenAI when OPENAI_API_KEY is set and by keyword
matching otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				req := domain.TasteRequest{Keywords: keywords, NaturalQuery: query}
				if len(keywords) == 0 && strings.TrimSpace(query) == "" {
					var err error
					if req, err = app.AskTaste(ctx); err != nil {
						return err
					}
				}
				return app.Taste(ctx, req)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Taste keyword (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-form taste description")

	return cmd
}

// withApp loads configuration, starts logging and telemetry, and runs fn
// with a fully built App.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *App) error) error {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	shutdown, err := telemetry.Init(telemetry.Config{
		DSN:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		Release:          "shopmate@" + cmd.Root().Version,
		TracesSampleRate: cfg.SentryTracesSampleRate,
	}, log)
	if err != nil {
		return err
	}
	defer shutdown()

	// Keep stdout machine readable in JSON mode.
	promptOut := cmd.OutOrStdout()
	if opts.json {
		promptOut = cmd.ErrOrStderr()
	}
	prompter := NewPrompter(cmd.InOrStdin(), promptOut)
	out := NewOutput(cmd.OutOrStdout(), opts.json)

	ctx := cmd.Context()
	app, err := Build(ctx, cfg, log, prompter, out)
	if err != nil {
		return err
	}
	return fn(ctx, app)
}
