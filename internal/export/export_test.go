package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tracklet/internal/export"
	"tracklet/internal/scheduler"
)

func finishedTasks() []scheduler.Task {
	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	a := scheduler.NewTask(1, "write spec", 30)
	a.MarkActive(base)
	a.MarkFinished(base.Add(90 * time.Second))

	b := scheduler.NewTask(2, "review", 15)
	b.MarkActive(base.Add(2 * time.Minute))
	b.MarkFinished(base.Add(2 * time.Minute))

	return []scheduler.Task{a, b}
}

func TestRender_JSON(t *testing.T) {
	data, err := export.Render(finishedTasks(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []struct {
		ID              int    `json:"id"`
		Description     string `json:"description"`
		EstimateMinutes int    `json:"estimate_minutes"`
		Status          string `json:"status"`
		StartedAt       string `json:"started_at"`
		FinishedAt      string `json:"finished_at"`
		ActualSeconds   int64  `json:"actual_seconds"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, data)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 1 || records[0].Description != "write spec" || records[0].ActualSeconds != 90 {
		t.Errorf("unexpected first record %+v", records[0])
	}
	if records[0].StartedAt != "2026-08-23 10:00:00" || records[0].FinishedAt != "2026-08-23 10:01:30" {
		t.Errorf("unexpected timestamps %+v", records[0])
	}
	if records[1].ActualSeconds != 0 {
		t.Errorf("expected 0 actual seconds for instant finish, got %d", records[1].ActualSeconds)
	}
}

func TestRender_JSONEmptyLog(t *testing.T) {
	data, err := export.Render(nil, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty array, got %q", data)
	}
}

func TestRender_CSV(t *testing.T) {
	data, err := export.Render(finishedTasks(), "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v\n%s", err, data)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	header := []string{"id", "description", "estimate_minutes", "status", "started_at", "finished_at", "actual_seconds"}
	for i, col := range header {
		if rows[0][i] != col {
			t.Errorf("expected header column %q, got %q", col, rows[0][i])
		}
	}
	if rows[1][0] != "1" || rows[1][1] != "write spec" || rows[1][6] != "90" {
		t.Errorf("unexpected first row %v", rows[1])
	}
}

func TestRender_PDF(t *testing.T) {
	data, err := export.Render(finishedTasks(), "pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected a pdf document, got prefix %q", data[:min(8, len(data))])
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := export.Render(finishedTasks(), "yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format yaml") {
		t.Errorf("unexpected error %v", err)
	}
}
