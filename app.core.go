package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"
)

type AppProvider interface {
	Run() error
	Clean()
}

type App struct {
	logger   *zap.Logger
	config   *Config
	console  *Console
	cleanups []func()
}

// Options holds the values provided on the command line and at build time.
type Options struct {
	ConfigFile string
	EnvFile    string
	GitCommit  string
	GitTag     string
	BuildTime  string
}

// NewApp provides an instance of App.
func NewApp(opts Options) (AppProvider, error) {
	config, err := LoadAndInitConfigs(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// Setup the logging module. Files are only written when a folder is set.
	clock := NewClock(config.IsProduction)
	var logWriter *RSyncWrite
	if len(config.LogFolder) != 0 {
		logWriter = NewRSyncWriter(config, clock)
	}
	logger, flusher := SetupLogging(config, logWriter, NewTickClock(clock))

	// Use git commit in case the tag is not set.
	version := config.GitTag
	if version == "" {
		version = config.GitCommit
	}
	logger = logger.With(zap.String("app.session", NewIDsHandler().Generate(SessionIDPrefix)))
	logger.Info("library manager starting",
		zap.String("app.version", version),
		zap.Bool("app.container", IsAppRunningInDocker()),
		zap.String("app.runtime", runtime.Version()),
		zap.String("app.platform", runtime.GOOS+"/"+runtime.GOARCH),
	)

	// Setup the catalog and the console driving it.
	catalog := NewCatalog(logger, NewMemoryBookStorage(logger))
	prompter := NewLinerPrompter(&config.Console)
	console := NewConsole(logger, &config.Console, catalog, prompter, os.Stdout)

	cleanups := []func(){
		func() {
			if err := prompter.Close(); err != nil {
				logger.Error("failed to restore terminal", zap.Error(err))
			}
		},
		func() {
			if err := flusher(); err != nil {
				fmt.Fprintln(os.Stderr, "error during logs flushing: ", err)
			}
		},
	}
	if logWriter != nil {
		cleanups = append(cleanups, func() {
			if err := logWriter.Close(); err != nil {
				fmt.Fprintln(os.Stderr, "error during closing of log file: ", err)
			}
		})
	}

	return &App{
		logger:   logger,
		config:   config,
		console:  console,
		cleanups: cleanups,
	}, nil
}

// Run starts the console session and waits for it to end or for
// an interruption signal. A console blocked on reading is not waited
// for once the signal arrived.
func (app *App) Run() error {
	defer app.Clean()
	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.console.Run(nCtx)
	}()

	select {
	case err := <-errc:
		app.logger.Info("library manager stopped", zap.Error(err))
		return err
	case <-nCtx.Done():
		app.logger.Info("library manager stopping. reason: requested to stop")
		return nil
	}
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}
