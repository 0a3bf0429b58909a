package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/nhmoon/internal/clierr"
	"github.com/twiced-technology-gmbh/nhmoon/internal/tui"
	"github.com/twiced-technology-gmbh/nhmoon/internal/watcher"
)

// envDebug names the environment variable holding the debug log path.
const envDebug = "NHMOON_DEBUG"

func runTUI(_ *cobra.Command, args []string) error {
	center, err := startDate(args)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // file descriptors fit in int
		return clierr.New(clierr.NotATerminal,
			"stdout is not a terminal (use 'nhmoon list' for plain output)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := debugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := tui.NewCalendar(cfg, center)
	if err != nil {
		return err
	}
	model.SetLogger(logger)
	if flagToday.set {
		fixed := flagToday.d
		model.SetNow(func() time.Time {
			return time.Date(fixed.Year(), fixed.Month(), fixed.Day(), 12, 0, 0, 0, time.Local)
		})
	}
	p := tea.NewProgram(model,
		tea.WithOutput(model.Output()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, model, p, logger)

	logger.Debug("starting", "center", center.String(), "config", cfg.Path(), "found", cfg.Found())
	_, err = p.Run()
	return err
}

// debugLogger opens the debug log named by NHMOON_DEBUG. Without it, log
// records are discarded.
func debugLogger() (*slog.Logger, func(), error) {
	path := os.Getenv(envDebug)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "nhmoon")
	if err != nil {
		return nil, nil, clierr.Newf(clierr.InternalError, "opening debug log: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func startTUIWatcher(ctx context.Context, model *tui.Calendar, p *tea.Program, logger *slog.Logger) {
	paths := model.WatchPaths()
	if len(paths) == 0 {
		return
	}
	w, err := watcher.New(paths, func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		logger.Debug("config watcher disabled", "err", err)
		return // non-fatal: TUI works without live reload
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		p.Send(tui.ErrMsg(err))
	})
}
