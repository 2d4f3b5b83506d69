package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupGateway(t *testing.T) *SQLiteGateway {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner-test.db")
	gw, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite gateway: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestSaveAndLoadDocument(t *testing.T) {
	gw := setupGateway(t)
	ctx := context.Background()

	doc := []byte(`[{"id":"t1","title":"Read Ch.3"}]`)
	if err := gw.Save(ctx, KeyTasks, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := gw.Load(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, got)
	}
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	gw := setupGateway(t)
	ctx := context.Background()

	if err := gw.Save(ctx, KeyStats, []byte(`{"streakDays":1}`)); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := gw.Save(ctx, KeyStats, []byte(`{"streakDays":2}`)); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := gw.Load(ctx, KeyStats)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"streakDays":2}` {
		t.Fatalf("expected full overwrite, got %s", got)
	}
}

func TestLoadMissingKeyReturnsNotFound(t *testing.T) {
	gw := setupGateway(t)
	if _, err := gw.Load(context.Background(), KeyGoals); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
