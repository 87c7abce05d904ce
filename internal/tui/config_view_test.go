package tui

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/wlsync/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and runs any returned save command.
func send(t *testing.T, m configViewModel, msg tea.Msg) configViewModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(configViewModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case configSavedMsg, configSaveErrorMsg:
		next, _ = m.Update(out)
		m = next.(configViewModel)
	}
	return m
}

func indexOfKey(t *testing.T, name string) int {
	t.Helper()
	for i, k := range config.Keys {
		if k.Name == name {
			return i
		}
	}
	t.Fatalf("key %q not registered", name)
	return -1
}

func TestConfigView_EditAndSave(t *testing.T) {
	cfg := &config.Config{}
	var saved *config.Config
	m := newConfigViewModel(cfg, "/tmp/config.json")
	m.save = func(c *config.Config) error {
		saved = c
		return nil
	}

	for range indexOfKey(t, "column") {
		m = send(t, m, keyMsg("down"))
	}
	m = send(t, m, keyMsg("enter"))
	if !m.editing {
		t.Fatal("expected edit mode after enter")
	}
	m.editor.SetValue("Serial")
	m = send(t, m, keyMsg("enter"))

	if saved == nil || saved.Column != "Serial" {
		t.Fatalf("expected column saved as %q, got %+v", "Serial", saved)
	}
	if m.editing {
		t.Error("expected edit mode to end after save")
	}
	if m.status != "Configuration saved" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestConfigView_RejectsInvalidValue(t *testing.T) {
	cfg := &config.Config{}
	m := newConfigViewModel(cfg, "")
	m.save = func(*config.Config) error {
		t.Fatal("save should not be called for an invalid value")
		return nil
	}

	for range indexOfKey(t, "log-level") {
		m = send(t, m, keyMsg("down"))
	}
	m = send(t, m, keyMsg("enter"))
	m.editor.SetValue("chatty")
	m = send(t, m, keyMsg("enter"))

	if !m.isError || !strings.Contains(m.status, "unknown log level") {
		t.Errorf("expected validation error, got status %q", m.status)
	}
	if cfg.LogLevel != "" {
		t.Errorf("expected log level untouched, got %q", cfg.LogLevel)
	}
}

func TestConfigView_SaveError(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, "")
	m.save = func(*config.Config) error { return errors.New("disk full") }

	m = send(t, m, keyMsg("enter"))
	m.editor.SetValue("x.xlsx")
	m = send(t, m, keyMsg("enter"))

	if !m.isError || !strings.Contains(m.status, "disk full") {
		t.Errorf("expected save error status, got %q", m.status)
	}
}

func TestConfigView_ViewShowsDefaults(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, "/tmp/config.json")
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	if !strings.Contains(out, "WhiteList.config") {
		t.Errorf("expected default whitelist path in view, got:\n%s", out)
	}
}
