package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/wlsync/internal/config"
)

func TestGet_Whitelist_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "whitelist")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Whitelist_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Whitelist: "/etc/device/WhiteList.config"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "whitelist")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "/etc/device/WhiteList.config") {
		t.Errorf("expected configured path, got: %s", stdout)
	}
}

func TestGet_AllValues_NonInteractive(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Column: "Serial"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	if !strings.Contains(stdout, "column: Serial") {
		t.Errorf("expected column value, got: %s", stdout)
	}
	if !strings.Contains(stdout, "source: (not set)") {
		t.Errorf("expected unset source, got: %s", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
