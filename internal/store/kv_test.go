package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "tracker.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	return db, path
}

func TestDBGetMissingKey(t *testing.T) {
	db, _ := openTestDB(t)
	defer db.Close()

	_, ok, err := db.Get(context.Background(), KeyData)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Get reported ok for a key that was never written")
	}
}

func TestDBSetOverwritesAndSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	db, path := openTestDB(t)

	if err := db.Set(ctx, KeySettings, `{"startDate":"2026-02-18"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, KeySettings, `{"startDate":"2026-02-19"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, ok, err := db.Get(ctx, KeySettings)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got != `{"startDate":"2026-02-19"}` {
		t.Fatalf("Get = %q, want the last written value", got)
	}

	at, err := db.UpdatedAt(ctx, KeySettings)
	if err != nil {
		t.Fatalf("UpdatedAt: %v", err)
	}
	if at.IsZero() {
		t.Fatal("UpdatedAt is zero for a written key")
	}
}

func TestMemorySetErr(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetErr = errors.New("quota exceeded")

	if err := m.Set(ctx, KeyData, "{}"); err == nil {
		t.Fatal("Set succeeded with SetErr configured")
	}
	if _, ok, _ := m.Get(ctx, KeyData); ok {
		t.Fatal("failed Set still stored a value")
	}

	m.SetErr = nil
	if err := m.Set(ctx, KeyData, "{}"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if m.Writes != 1 {
		t.Fatalf("Writes = %d, want 1", m.Writes)
	}
}

func TestDBUpdatedAtMalformedTimestamp(t *testing.T) {
	ctx := context.Background()
	db, _ := openTestDB(t)
	defer db.Close()

	if _, err := db.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		KeyData, "{}", "last tuesday"); err != nil {
		t.Fatalf("seeding row: %v", err)
	}

	at, err := db.UpdatedAt(ctx, KeyData)
	if err == nil {
		t.Fatalf("UpdatedAt = %s, want an error for a malformed timestamp", at)
	}
	if !at.IsZero() {
		t.Fatalf("UpdatedAt returned %s alongside an error", at)
	}
}
