// Package export renders the finished tasks log as a report. A report is a
// snapshot for reading elsewhere; tracker state itself is never persisted.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tracklet/internal/output"
	"tracklet/internal/scheduler"
)

// record is the serialized form of a finished task.
type record struct {
	ID              int    `json:"id"`
	Description     string `json:"description"`
	EstimateMinutes int    `json:"estimate_minutes"`
	Status          string `json:"status"`
	StartedAt       string `json:"started_at,omitempty"`
	FinishedAt      string `json:"finished_at,omitempty"`
	ActualSeconds   int64  `json:"actual_seconds"`
}

func toRecord(t scheduler.Task) record {
	r := record{
		ID:              t.ID,
		Description:     t.Description,
		EstimateMinutes: t.Estimate,
		Status:          string(t.Status),
	}
	if !t.StartTime.IsZero() {
		r.StartedAt = t.StartTime.Format(scheduler.TimeLayout)
	}
	if !t.FinishTime.IsZero() {
		r.FinishedAt = t.FinishTime.Format(scheduler.TimeLayout)
	}
	if secs, ok := t.ActualSeconds(); ok {
		r.ActualSeconds = secs
	}
	return r
}

// Render serializes the finished log in the requested format.
// Supported formats: json, csv, pdf.
func Render(tasks []scheduler.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		records := make([]record, 0, len(tasks))
		for _, t := range tasks {
			records = append(records, toRecord(t))
		}
		return json.MarshalIndent(records, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "description", "estimate_minutes", "status", "started_at", "finished_at", "actual_seconds"})
		for _, t := range tasks {
			r := toRecord(t)
			_ = w.Write([]string{
				strconv.Itoa(r.ID),
				r.Description,
				strconv.Itoa(r.EstimateMinutes),
				r.Status,
				r.StartedAt,
				r.FinishedAt,
				strconv.FormatInt(r.ActualSeconds, 10),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Finished Tasks Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			line := t.Details()
			if secs, ok := t.ActualSeconds(); ok {
				line += output.Actual(secs)
			}
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
