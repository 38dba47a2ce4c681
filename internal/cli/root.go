// Package cli implements the lazypager command-line interface.
//
// The root command loads the per-directory config, applies flag overrides,
// and runs the pager TUI. The log is written to a file because the TUI owns
// the terminal; --verbose enables debug output from the paging engine.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lazypager/internal/config"
	"lazypager/internal/eventbus"
	"lazypager/internal/pages"
	"lazypager/internal/ui"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options holds the root command flags
type options struct {
	dir      string
	vertical bool
	circular bool
	autoplay time.Duration
	logFile  string
	verbose  bool
}

// Execute runs the lazypager CLI
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "lazypager [dir]",
		Short:        "Page through a directory of text files",
		Long:         `lazypager shows the text and markdown files of a directory as pages you can swipe through with the keyboard or mouse.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.dir = args[0]
			}
			return run(cmd, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lazypager %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "directory of pages (default: current directory)")
	flags.BoolVar(&opts.vertical, "vertical", false, "page vertically instead of horizontally")
	flags.BoolVar(&opts.circular, "circular", false, "wrap around after the last page")
	flags.DurationVar(&opts.autoplay, "autoplay", 0, "advance every period, e.g. 5s (0 disables)")
	flags.StringVar(&opts.logFile, "log-file", DefaultLogFile, "log file path (empty disables logging)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// applyOverrides copies explicitly set flags over the file config
func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("vertical") {
		if opts.vertical {
			cfg.Direction = "vertical"
		} else {
			cfg.Direction = "horizontal"
		}
	}
	if flags.Changed("circular") {
		cfg.Circular = opts.circular
	}
	if flags.Changed("autoplay") {
		cfg.Autoplay.Enabled = opts.autoplay > 0
		if opts.autoplay > 0 {
			cfg.Autoplay.Period = opts.autoplay.String()
		}
	}
}

// resolveDir returns the absolute pages directory
func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to open pages directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func run(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()

	dir, err := resolveDir(opts.dir)
	if err != nil {
		return err
	}

	logger, closeLog := openLog(opts.logFile, opts.verbose)
	defer closeLog()
	logger.Info("starting", "version", version, "dir", dir)

	bus := eventbus.NewWithLogger(logger)
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(dir, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cmd, cfg, opts)
	if !filepath.IsAbs(cfg.PagesDir) {
		cfg.PagesDir = filepath.Join(dir, cfg.PagesDir)
	}
	logger.Debug("config loaded", "path", configSvc.Path(), "pages", cfg.PagesDir,
		"direction", cfg.Direction, "circular", cfg.Circular, "autoplay", cfg.Autoplay.Enabled)

	writer := newSessionWriter(configSvc, cfg, bus, logger)
	unsubscribe := writer.subscribe()
	defer unsubscribe()

	model := ui.NewModel(bus, cfg, pages.NewSource(cfg.PagesDir, logger), logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	// Forward events the UI reacts to
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	defer bus.Subscribe(eventbus.EventError, forward)()
	defer bus.Subscribe(eventbus.EventReloadRequested, forward)()

	stopHUP := watchHangup(ctx, bus, logger)
	defer stopHUP()

	_, runErr := p.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = ctx.Err()
	}

	unsubscribe()
	if err := writer.record(model.Status()); err != nil {
		logger.Error("failed to save session", "err", err)
	}
	logger.Info("exiting", "page", model.Status().CurrentPage)

	if runErr != nil {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

// watchHangup turns SIGHUP into a reload request
func watchHangup(ctx context.Context, bus eventbus.EventBus, logger *log.Logger) func() {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-hup:
				logger.Info("reload requested by SIGHUP")
				bus.Publish(eventbus.ReloadRequestedEvent{})
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(hup)
		close(done)
	}
}
