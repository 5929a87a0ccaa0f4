// Package main is the entry point for the kite editor.
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

	"golang.org/x/term"

	"github.com/dshills/kite/internal/app"
	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kite must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}

	logger, closer, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	sess, err := openSession(cfg, f.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	watcher, err := app.NewFileWatcher(app.DefaultDebounceDelay, logger)
	if err != nil {
		// Editing works without change notifications.
		logger.Warn("file watcher unavailable: %v", err)
	}

	tb, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	opts := app.Options{
		Renderer: renderer.Options{
			ShowLineNumbers: cfg.Editor.LineNumbers,
			TabWidth:        cfg.Editor.TabWidth,
			ScrollOff:       cfg.Editor.ScrollOff,
		},
		Logger:  logger,
		Watcher: watcher,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logger.Info("kite %s starting", version)
	err = app.New(sess, tb, opts).Run(ctx)
	switch {
	case err == nil, errors.Is(err, app.ErrQuit):
		logger.Info("exit")
		return 0
	case errors.Is(err, context.Canceled):
		logger.Info("terminated by signal")
		return 1
	default:
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags() flags {
	var f flags
	var showVersion bool

	flag.StringVar(&f.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&f.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kite - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kite [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("kite %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		f.file = flag.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: kite edits one file at a time")
		flag.Usage()
		os.Exit(2)
	}

	return f
}

// openLogger returns the configured logger. Logging is off unless a log file
// is set; the terminal belongs to the editor.
func openLogger(cfg config.LogConfig) (*app.Logger, io.Closer, error) {
	if cfg.File == "" {
		return app.NullLogger, io.NopCloser(nil), nil
	}
	logger, closer, err := app.OpenLogFile(cfg.File, app.ParseLogLevel(cfg.Level))
	if err != nil {
		return nil, nil, err
	}
	return logger.WithSession(), closer, nil
}

func openSession(cfg *config.Config, path string) (*session.Session, error) {
	km, err := cfg.NormalKeymap()
	if err != nil {
		return nil, err
	}
	interrupt, err := cfg.InterruptEvent()
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithKeymap(km),
		session.WithInterruptKey(interrupt),
		session.WithTabWidth(cfg.Editor.TabWidth),
	}
	if path == "" {
		return session.New(opts...), nil
	}
	return session.Open(path, opts...)
}
