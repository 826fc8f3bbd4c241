package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/tugboatctl/tugboat/pkg/cli/config"
	"github.com/tugboatctl/tugboat/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "tugboat",
		Usage:   "Promote a tagged version from built to public: build, draft, publish",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			// One id per invocation so phases of the same release can be
			// correlated across logs.
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			// No command is a usage error, not a success.
			if err := cli.ShowAppHelp(c); err != nil {
				return err
			}
			return goerr.New("no command specified")
		},
		Commands: []*cli.Command{
			cmdBuild(),
			cmdDraft(),
			cmdPublish(),
			cmdVersion(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Release workflow failed", slog.Any("error", err))
		printHint(err)
		return err
	}

	return nil
}

// printHint surfaces the remediation hint attached to workflow errors so
// the operator sees the corrective command without digging through logs.
func printHint(err error) {
	hint, ok := goerr.Values(err)["hint"].(string)
	if !ok || hint == "" {
		return
	}
	color.New(color.FgYellow).Fprintf(os.Stderr, "hint: %s\n", hint)
}

// noArgs rejects positional arguments; phase commands take none.
func noArgs(c *cli.Command) error {
	if c.Args().Len() > 0 {
		return goerr.New("this command takes no arguments",
			goerr.V("args", c.Args().Slice()))
	}
	return nil
}
