package normalize

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execNormalize(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), err
}

func TestNormalize_Args(t *testing.T) {
	stdout, err := execNormalize(t, "", "AB.CD.12", "xyz")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), stdout)
	}
	if f := strings.Fields(lines[2]); len(f) != 2 || f[1] != "abcd12" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if f := strings.Fields(lines[3]); len(f) != 2 || f[1] != "-" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestNormalize_StdinJSON(t *testing.T) {
	stdout, err := execNormalize(t, "12-ab-34\n\n....\n", "-o", "json")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	var got []Result
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	want := []Result{
		{Input: "12-ab-34", Token: "12ab34", Valid: true},
		{Input: "....", Valid: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}
