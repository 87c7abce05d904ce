package whitelist

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/wlsync/internal/config"
	"nathanbeddoewebdev/wlsync/internal/util"

	"github.com/google/go-cmp/cmp"
)

func setupWhitelist(t *testing.T, content string) string {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	path := filepath.Join(t.TempDir(), "WhiteList.config")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write whitelist: %v", err)
	}
	return path
}

func execWhitelist(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestList_Table(t *testing.T) {
	path := setupWhitelist(t, "# header\n\nbb\naa\n")

	stdout, stderr, err := execWhitelist(t, "list", "--whitelist", path)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if stdout != "aa\nbb\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if !strings.Contains(stderr, "2 token(s)") {
		t.Errorf("expected count on stderr, got %q", stderr)
	}
}

func TestList_JSON(t *testing.T) {
	path := setupWhitelist(t, "ff01\n")

	stdout, _, err := execWhitelist(t, "list", "--whitelist", path, "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var got listOutput
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := listOutput{Path: path, Count: 1, Tokens: []string{"ff01"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_Listed(t *testing.T) {
	path := setupWhitelist(t, "abcd12\n")

	stdout, _, err := execWhitelist(t, "check", "AB.CD.12", "--whitelist", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(stdout, "listed (abcd12)") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestCheck_NotListed(t *testing.T) {
	path := setupWhitelist(t, "abcd12\n")

	stdout, _, err := execWhitelist(t, "check", "ff", "xyz", "--whitelist", path)

	var exitErr *util.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected exit status 1, got %v", err)
	}
	if !strings.Contains(stdout, "ff: not listed (ff)") {
		t.Errorf("expected not-listed line, got %q", stdout)
	}
	if !strings.Contains(stdout, "xyz: no valid token") {
		t.Errorf("expected invalid line, got %q", stdout)
	}
}
