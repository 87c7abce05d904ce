package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/logging"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "whitelist").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate, when set, rejects values before they are stored.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "source",
		Description: "Spreadsheet holding submitted serials (.xlsx or .csv)",
		Get:         func(cfg *Config) string { return cfg.Source },
		Set:         func(cfg *Config, v string) { cfg.Source = v },
	},
	{
		Name:        "whitelist",
		Description: "Allow-list file that sync merges tokens into",
		Get:         func(cfg *Config) string { return cfg.Whitelist },
		Set:         func(cfg *Config, v string) { cfg.Whitelist = v },
	},
	{
		Name:        "column",
		Description: "Header of the column holding serial numbers",
		Get:         func(cfg *Config) string { return cfg.Column },
		Set:         func(cfg *Config, v string) { cfg.Column = v },
	},
	{
		Name:        "log-level",
		Description: "Log verbosity: debug, info, warn or error",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = strings.ToLower(strings.TrimSpace(v)) },
		Validate: func(v string) error {
			_, err := logging.ParseLevel(v)
			return err
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// Check validates value against the key's validator, if it has one.
func (k *KeySpec) Check(value string) error {
	if k.Validate == nil {
		return nil
	}
	return k.Validate(value)
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
