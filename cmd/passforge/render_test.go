package main

import (
	"strings"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

func TestStrengthBadge(t *testing.T) {
	for _, label := range []string{"weak", "medium", "strong"} {
		if got := strengthBadge(label); !strings.Contains(got, label) {
			t.Errorf("badge for %s should contain the label, got %q", label, got)
		}
	}
}

func TestRenderGenerateResult(t *testing.T) {
	out := renderGenerateResult(model.GenerateResponse{
		ID:       "3f2c9e1a-59ab-4f10-9d7a-1be02a6e4f5c",
		Password: "K7#mPx!q2Lw9Zr4t",
		Strength: "strong",
		Length:   16,
		PoolSize: 88,
	})

	for _, want := range []string{"K7#mPx!q2Lw9Zr4t", "strong", "length: 16", "pool: 88"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	if got, want := renderHistory(nil), "No history records.\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHistoryTable(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	out := renderHistory([]model.HistoryItemResponse{
		{
			ID:        "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			Password:  "Abc123!x",
			Strength:  "medium",
			Length:    8,
			CreatedAt: created,
		},
	})

	wants := []string{
		"2026-03-01 10:30:00",
		"medium",
		"Abc123!x",
		"a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		"PASSWORD",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestRenderStats(t *testing.T) {
	out := renderStats(model.Stats{
		TotalGenerated:        5,
		GeneratedToday:        2,
		GeneratedThisWeek:     4,
		AverageLength:         13.6,
		AverageResponseTimeMS: 1.25,
		StrengthDistribution:  map[string]int{"weak": 1, "strong": 4},
	})

	wants := []string{
		"Total generated:  5",
		"Generated today:  2",
		"Last 7 days:      4",
		"13.6",
		"1.25 ms",
		"weak 1",
		"strong 4",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}

	if strings.Contains(out, "medium") {
		t.Errorf("zero-count label should be omitted, got: %s", out)
	}
	if strings.Index(out, "weak") > strings.Index(out, "strong") {
		t.Errorf("expected weak before strong in distribution, got: %s", out)
	}
}

func TestRenderStatsEmptyHistory(t *testing.T) {
	out := renderStats(model.Stats{StrengthDistribution: map[string]int{}})

	if !strings.Contains(out, "Total generated:  0") {
		t.Errorf("expected zero total, got: %s", out)
	}
	if strings.Contains(out, "Strength:") {
		t.Errorf("empty distribution should not print a strength line, got: %s", out)
	}
}
