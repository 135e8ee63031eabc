// Package cli wires the fundraiser command: configuration, logging, catalog
// loading and the interactive command loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"Fundraiser/internal/catalog"
	"Fundraiser/internal/config"
	"Fundraiser/internal/console"
	"Fundraiser/internal/ledger"
	"Fundraiser/pkg/kit"
)

const (
	service = "fundraiser"
	usage   = "usage: fundraiser item-file member-file"
)

var errUsage = errors.New(usage)

type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, streams Streams) int {
	cmd := NewRootCommand(streams)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(streams.Err, err)
		return 1
	}
	return 0
}

func NewRootCommand(streams Streams) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fundraiser item-file member-file",
		Short: "Record fundraiser sales and print item and member reports",
		Long: `fundraiser loads an item catalog and a member roster, then reads commands
from standard input:

  sale <member-id> <item-id> <quantity>
  list items | list item names | list members | list member names
  list topsellers | list member <member-id>
  search item [text] | search member [text]
  quit`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], args[1], streams)
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	f := cmd.Flags()
	f.String(config.KeyConfigFile, "", "YAML config file")
	f.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	f.String(config.KeyLogFormat, config.DefaultLogFormat, "log format (json, console)")
	f.String(config.KeyMetricsFile, "", "write command metrics to this file on exit")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, itemPath, memberPath string, streams Streams) error {
	log, err := kit.NewLogger(service, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := catalog.Load(itemPath, memberPath)
	if err != nil {
		logLoadError(log, err)
		return err
	}
	log.Debug("catalog loaded",
		zap.Int("items", len(store.Items())),
		zap.Int("members", len(store.Members())),
	)

	reg := prometheus.NewRegistry()
	in := &console.Interpreter{
		Ledger:  ledger.New(store),
		Out:     streams.Out,
		Log:     log,
		Metrics: kit.NewMetrics(reg),
	}

	err = in.Run(ctx, streams.In)
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		err = nil
	}

	if cfg.MetricsFile != "" {
		if werr := kit.WriteTextfile(cfg.MetricsFile, reg); werr != nil {
			log.Warn("write metrics failed", zap.String("path", cfg.MetricsFile), zap.Error(werr))
		}
	}
	return err
}

func logLoadError(log *zap.Logger, err error) {
	var le *catalog.LoadError
	if !errors.As(err, &le) {
		log.Error("load failed", zap.Error(err))
		return
	}
	log.Error("load failed",
		zap.String("file", string(le.Kind)),
		zap.String("path", le.Path),
		zap.Int("line", le.Line),
		zap.Error(le.Err),
	)
}
