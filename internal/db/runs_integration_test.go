//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean up test data before each test
	ctx := context.Background()
	_, _ = db.pool.Exec(ctx, "DELETE FROM sourcing_runs WHERE request LIKE '%integration-test%'")

	return db
}

func TestIntegration_SourcingRun_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	runID, err := db.CreateRun(ctx, "integration-test: find 2 senior React developers", []string{"React", "Node.js"}, "senior", 2)
	if err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	defer func() { _ = db.DeleteRun(ctx, runID) }()

	t.Run("get run", func(t *testing.T) {
		run, err := db.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run == nil {
			t.Fatal("GetRun returned nil for existing run")
		}
		if run.Status != RunStatusRunning {
			t.Errorf("Status = %q, want %q", run.Status, RunStatusRunning)
		}
		if run.Quantity != 2 {
			t.Errorf("Quantity = %d, want 2", run.Quantity)
		}
	})

	t.Run("update counts", func(t *testing.T) {
		if err := db.UpdateRunCounts(ctx, runID, 5, 12, 8); err != nil {
			t.Fatalf("UpdateRunCounts failed: %v", err)
		}
		run, err := db.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run.QueryCount != 5 || run.ResultCount != 12 || run.CandidateCount != 8 {
			t.Errorf("counts = %d/%d/%d, want 5/12/8", run.QueryCount, run.ResultCount, run.CandidateCount)
		}
	})

	t.Run("save and get shortlist", func(t *testing.T) {
		entries := []ShortlistEntry{
			{Name: "Jane Smith", Skills: StringArray{"React"}, RiskScore: 2, MatchScore: 1.8, ProfileURL: "https://www.upwork.com/freelancers/jane"},
			{Name: "Carlos Ortega", Skills: StringArray{"Node.js"}, RiskScore: 3, MatchScore: 2.6},
		}
		if err := db.SaveShortlist(ctx, runID, entries); err != nil {
			t.Fatalf("SaveShortlist failed: %v", err)
		}

		got, err := db.GetShortlist(ctx, runID)
		if err != nil {
			t.Fatalf("GetShortlist failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len(shortlist) = %d, want 2", len(got))
		}
		if got[0].Rank != 1 || got[0].Name != "Jane Smith" {
			t.Errorf("first entry = %d/%q, want 1/Jane Smith", got[0].Rank, got[0].Name)
		}
	})

	t.Run("complete run", func(t *testing.T) {
		if err := db.CompleteRun(ctx, runID, RunStatusCompleted); err != nil {
			t.Fatalf("CompleteRun failed: %v", err)
		}
		run, err := db.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run.Status != RunStatusCompleted {
			t.Errorf("Status = %q, want %q", run.Status, RunStatusCompleted)
		}
		if run.CompletedAt == nil {
			t.Error("CompletedAt not set after CompleteRun")
		}
	})

	t.Run("list filtered", func(t *testing.T) {
		runs, err := db.ListRunsFiltered(ctx, RunFilters{Query: "integration-test", Status: RunStatusCompleted})
		if err != nil {
			t.Fatalf("ListRunsFiltered failed: %v", err)
		}
		found := false
		for _, r := range runs {
			if r.ID == runID {
				found = true
			}
		}
		if !found {
			t.Error("completed run not returned by filtered list")
		}
	})

	t.Run("list recent", func(t *testing.T) {
		runs, err := db.ListRuns(ctx, 100)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		found := false
		for _, r := range runs {
			if r.ID == runID {
				found = true
			}
		}
		if !found {
			t.Error("run not returned by recent list")
		}
	})
}

func TestIntegration_GetRun_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	run, err := db.GetRun(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run != nil {
		t.Errorf("GetRun returned %+v for missing run, want nil", run)
	}
}
