package tui

import (
	"errors"
	"os"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/config"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels an interactive form.
var ErrAborted = errors.New("aborted by user")

// ConfigInitForm walks the user through the sync settings and returns the
// updated config. Nothing is saved; the caller decides.
func ConfigInitForm(current *config.Config) (*config.Config, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	cfg := *current
	src := cfg.SourcePath()
	wl := cfg.WhitelistPath()
	column := cfg.ColumnName()
	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}

	logLevel := config.Lookup("log-level")

	err := runForm(accessible,
		huh.NewGroup(
			huh.NewInput().
				Title("Source spreadsheet").
				Description("Form export to read serials from (.xlsx or .csv)").
				Value(&src).
				Validate(notBlank("source")),
			huh.NewInput().
				Title("Serial column").
				Description("Header of the column holding submitted serials").
				Value(&column).
				Validate(notBlank("column")),
			huh.NewInput().
				Title("Whitelist file").
				Description("Allow-list that tokens are merged into").
				Value(&wl).
				Validate(notBlank("whitelist")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&level).
				Validate(logLevel.Check),
		),
	)
	if err != nil {
		return nil, err
	}

	cfg.Source = strings.TrimSpace(src)
	cfg.Column = strings.TrimSpace(column)
	cfg.Whitelist = strings.TrimSpace(wl)
	logLevel.Set(&cfg, level)
	return &cfg, nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
