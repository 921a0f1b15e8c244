package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/export"
	"github.com/ytget/yt-liked-searcher/internal/library"
	"github.com/ytget/yt-liked-searcher/internal/model"
	"github.com/ytget/yt-liked-searcher/internal/platform"
)

// cliFlags holds the parsed command line
type cliFlags struct {
	refresh    bool
	clearCache bool
	query      string
	sortField  string
	descending bool
	export     string
	open       int
	limit      int
	verbose    bool
	opts       config.Options
}

func parseFlags(args []string, opts config.Options, output io.Writer) (cliFlags, error) {
	f := cliFlags{opts: opts}
	var format string

	fs := flag.NewFlagSet("yt-liked-search", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&f.refresh, "refresh", false, "load the liked list from YouTube instead of the cache")
	fs.BoolVar(&f.clearCache, "clear-cache", false, "delete the cache file and exit")
	fs.StringVar(&f.query, "query", "", "only show videos whose title, channel or description contains this text")
	fs.StringVar(&f.sortField, "sort", "", "sort by title, channel, date or description")
	fs.BoolVar(&f.descending, "desc", false, "sort in descending order")
	fs.StringVar(&f.export, "export", "", "write the results or all videos to the export directory (results|all)")
	fs.IntVar(&f.open, "open", 0, "open the Nth listed video in the browser")
	fs.IntVar(&f.limit, "limit", 0, "print at most this many rows (0 prints all)")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	fs.StringVar(&f.opts.CacheFile, "cache", opts.CacheFile, "cache file")
	fs.StringVar(&f.opts.ClientSecretFile, "client-secret", opts.ClientSecretFile, "OAuth client secret file")
	fs.StringVar(&f.opts.TokenFile, "token", opts.TokenFile, "OAuth token file")
	fs.StringVar(&f.opts.ExportDir, "export-dir", opts.ExportDir, "export directory")
	fs.StringVar(&format, "format", string(opts.ExportFormat), "export format (json|yaml)")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 && f.query == "" {
		f.query = fs.Arg(0)
	}

	parsed, err := export.ParseFormat(format)
	if err != nil {
		return f, err
	}
	f.opts.ExportFormat = parsed

	if f.sortField != "" {
		if _, err := model.ParseSortField(f.sortField); err != nil {
			return f, err
		}
	} else if f.descending {
		f.sortField = string(model.SortByDate)
	}
	switch f.export {
	case "", "results", "all":
	default:
		return f, fmt.Errorf("unknown export target %q, want results or all", f.export)
	}
	if f.open < 0 || f.limit < 0 {
		return f, errors.New("-open and -limit must not be negative")
	}
	return f, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func main() {
	f, err := parseFlags(os.Args[1:], config.FromEnv(), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, f, os.Stdout, os.Stderr, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, f cliFlags, stdout, stderr io.Writer, logger *zap.Logger) error {
	opts := f.opts
	remote := library.NewYouTubeSource(func() config.Options { return opts }, platform.OpenURLInBrowser, logger)
	lib := library.NewFromOptions(opts, remote, logger)
	return execute(ctx, f, lib, stdout, stderr)
}

// execute runs the requested actions against lib
func execute(ctx context.Context, f cliFlags, lib *library.Service, stdout, stderr io.Writer) error {
	if f.clearCache {
		err := lib.ClearCache()
		if errors.Is(err, library.ErrNoCache) {
			fmt.Fprintln(stdout, "No cache file found.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Cache cleared.")
		return nil
	}

	if f.refresh {
		fmt.Fprintln(stderr, "Loading liked videos...")
		res, err := lib.Refresh(ctx, func(loaded int) {
			fmt.Fprintf(stderr, "Loading... %d videos loaded\n", loaded)
		})
		if err != nil {
			return err
		}
		if res.CacheErr != nil {
			fmt.Fprintf(stderr, "warning: cache not saved: %v\n", res.CacheErr)
		}
	} else {
		_, found, err := lib.LoadFromCache()
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s\n", apperrors.UserMessage(err))
		}
		if !found {
			return errors.New("no cached videos, run with -refresh to load them from YouTube")
		}
	}

	if f.query != "" {
		lib.Search(f.query)
	}
	if f.sortField != "" {
		field := model.SortField(f.sortField)
		lib.SortBy(field)
		if f.descending {
			lib.SortBy(field)
		}
	}

	view := lib.View()
	if err := writeTable(stdout, view, f.limit); err != nil {
		return err
	}
	fmt.Fprintln(stdout, lib.Summary())

	switch f.export {
	case "results":
		path, err := lib.ExportResults()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d videos exported to %s\n", len(view), path)
	case "all":
		path, err := lib.ExportAll()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "All %d liked videos exported to %s\n", len(lib.All()), path)
	}

	if f.open > 0 {
		if f.open > len(view) {
			return fmt.Errorf("-open %d: only %d videos listed", f.open, len(view))
		}
		v := view[f.open-1]
		fmt.Fprintf(stdout, "Opening %s\n", v.Link())
		return platform.OpenURLInBrowser(v.Link())
	}
	return nil
}
