package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("77")).Bold(true)

	passwordStyle = lipgloss.NewStyle().Bold(true)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// strengthBadge renders a strength label in its color.
func strengthBadge(strength string) string {
	switch strength {
	case "strong":
		return strongStyle.Render(strength)
	case "medium":
		return mediumStyle.Render(strength)
	default:
		return weakStyle.Render(strength)
	}
}

// renderGenerateResult formats a generation result for the terminal.
func renderGenerateResult(resp model.GenerateResponse) string {
	var b strings.Builder
	b.WriteString(passwordStyle.Render(resp.Password))
	b.WriteString("\n")
	fmt.Fprintf(&b, "strength: %s  length: %d  pool: %d\n", strengthBadge(resp.Strength), resp.Length, resp.PoolSize)
	return b.String()
}

// renderHistory formats history records as a table, newest first.
func renderHistory(items []model.HistoryItemResponse) string {
	if len(items) == 0 {
		return "No history records.\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("CREATED (UTC)", "STRENGTH", "LEN", "PASSWORD", "ID")
	for _, item := range items {
		t.Row(
			item.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			item.Strength,
			strconv.Itoa(item.Length),
			item.Password,
			item.ID,
		)
	}
	return t.String() + "\n"
}

// renderStats formats the statistics summary block.
func renderStats(stats model.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total generated:  %d\n", stats.TotalGenerated)
	fmt.Fprintf(&b, "Generated today:  %d\n", stats.GeneratedToday)
	fmt.Fprintf(&b, "Last 7 days:      %d\n", stats.GeneratedThisWeek)
	fmt.Fprintf(&b, "Average length:   %.1f\n", stats.AverageLength)
	fmt.Fprintf(&b, "Average time:     %.2f ms\n", stats.AverageResponseTimeMS)

	if len(stats.StrengthDistribution) > 0 {
		parts := make([]string, 0, len(stats.StrengthDistribution))
		for _, label := range []string{"weak", "medium", "strong"} {
			if n, ok := stats.StrengthDistribution[label]; ok {
				parts = append(parts, fmt.Sprintf("%s %d", strengthBadge(label), n))
			}
		}
		fmt.Fprintf(&b, "Strength:         %s\n", strings.Join(parts, "  "))
	}
	return b.String()
}
