// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/juan-28/entertainment-analysis/internal/api"
	"github.com/juan-28/entertainment-analysis/internal/config"
	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/pipeline"
	"github.com/juan-28/entertainment-analysis/internal/runstate"
	"github.com/juan-28/entertainment-analysis/internal/supervisor"
	"github.com/juan-28/entertainment-analysis/internal/supervisor/services"
)

var commands = []string{"normalize", "merge", "run", "serve", "status"}

const usage = `usage: pipeline [-config path] [-limit n] <normalize|merge|run|serve|status>`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pipeline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	limit := fs.Int("limit", 20, "number of runs printed by status")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	command := fs.Arg(0)
	if !slices.Contains(commands, command) {
		fmt.Fprintf(stderr, "pipeline: unknown command %q\n", command)
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "pipeline: %v\n", err)
		return 1
	}
	logging.Init(cfg.Logging.ToLogging())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case "normalize", "merge", "run":
		err = runStages(ctx, cfg, command)
	case "serve":
		err = serve(ctx, cfg)
	default:
		err = status(ctx, cfg, stdout, *limit)
	}
	if err != nil {
		logging.Error().Err(err).Str("command", command).Msg("Command failed")
		return 1
	}
	return 0
}

func openStore(cfg *config.Config) (runstate.Store, error) {
	if cfg.State.Path == "" {
		return runstate.NewMemoryStore(), nil
	}
	return runstate.OpenBadger(cfg.State.Path)
}

func runStages(ctx context.Context, cfg *config.Config, command string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close run history")
		}
	}()

	engine, closeEngine, err := pipeline.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeEngine(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close merge engine")
		}
	}()

	runner := pipeline.NewRunner(cfg, store, engine)
	ctx = logging.ContextWithNewRunID(ctx)
	logging.Ctx(ctx).Info().
		Str("command", command).
		Str("engine", engine.Name()).
		Strs("profiles", cfg.Normalize.Profiles).
		Msg("Pipeline starting")

	switch command {
	case "normalize":
		_, err = runner.Normalize(ctx)
	case "merge":
		_, err = runner.Merge(ctx)
	default:
		_, err = runner.Run(ctx)
	}
	if err != nil && pipeline.IsInputError(err) {
		logging.Ctx(ctx).Error().Msg("Input data is malformed; fix the reported row and rerun")
	}
	return err
}

func serve(ctx context.Context, cfg *config.Config) error {
	path := cfg.Outputs.FinalPath
	handler := api.NewHandler(nil, api.WithQueryCache(cfg.Server.QueryCacheSize, cfg.Server.QueryCacheTTL))

	var loaded os.FileInfo
	if info, err := os.Stat(path); err == nil {
		if err := handler.Reload(path); err != nil {
			return err
		}
		loaded = info
	} else {
		logging.Warn().Err(err).Str("path", path).Msg("Dashboard data not available yet; serving degraded")
	}

	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
		Timeout:           cfg.Server.Timeout,
	})
	server := &http.Server{
		Addr:              cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))
	if cfg.Server.ReloadInterval > 0 {
		tree.AddDataService(services.NewDashboardReloadService(path, cfg.Server.ReloadInterval, handler, loaded))
	}

	err := tree.Serve(ctx)
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info().Msg("Server stopped")
	return nil
}

func status(ctx context.Context, cfg *config.Config, out io.Writer, limit int) error {
	if cfg.State.Path == "" {
		return errors.New("status needs a persistent run history; set STATE_PATH")
	}
	store, err := runstate.OpenBadger(cfg.State.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	return printRuns(out, runs)
}

func printRuns(out io.Writer, runs []runstate.RunStats) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTAGE\tSTARTED\tDURATION\tIN\tOUT\tDROPPED\tSTATUS\tERROR")
	for i := range runs {
		r := &runs[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.RunID,
			r.Stage,
			r.StartedAt.Local().Format(time.DateTime),
			r.Duration().Round(time.Millisecond),
			r.RowsIn,
			r.RowsOut,
			r.RowsDropped,
			r.Status,
			r.Error,
		)
	}
	return tw.Flush()
}
