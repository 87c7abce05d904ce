package auditlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wlsync.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "wlsync sync",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestSave_RoundTripsRunDetails(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Timestamp:  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Command:    "wlsync sync",
		Args:       "--dry-run",
		Source:     "data/form.xlsx",
		Whitelist:  "WhiteList.config",
		Status:     "updated",
		Extracted:  7,
		Added:      2,
		Total:      40,
		Outcome:    OutcomeSuccess,
		DurationMs: 31,
	}
	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := r.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if diff := cmp.Diff(*entry, entries[0]); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "wlsync sync",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByCommand(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "wlsync sync", Outcome: OutcomeSuccess},
		{Command: "wlsync whitelist check", Outcome: OutcomeSuccess},
		{Command: "wlsync sync", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	syncEntries, err := r.ListByCommand("wlsync sync", 10)
	if err != nil {
		t.Fatalf("ListByCommand failed: %v", err)
	}
	if len(syncEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(syncEntries))
	}
	for _, entry := range syncEntries {
		if entry.Command != "wlsync sync" {
			t.Errorf("expected command 'wlsync sync', got %q", entry.Command)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "wlsync sync",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "wlsync sync",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestWithMetadata_Merges(t *testing.T) {
	ctx := WithMetadata(context.Background(), Metadata{Source: "a.xlsx", Whitelist: "w.config"})
	ctx = WithMetadata(ctx, Metadata{Status: "updated", Added: 3})

	got := MetadataFromContext(ctx)
	want := Metadata{Source: "a.xlsx", Whitelist: "w.config", Status: "updated", Added: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}

	var entry AuditEntry
	got.Apply(&entry)
	if entry.Source != "a.xlsx" || entry.Added != 3 {
		t.Errorf("Apply did not copy fields: %+v", entry)
	}
}
