package scan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hexvar-cli/hexvar/artifact"
	"github.com/hexvar-cli/hexvar/color"
	"github.com/hexvar-cli/hexvar/style"
	"github.com/hexvar-cli/hexvar/util"
)

// Summarize renders the post-scan banner: files scanned, distinct literals,
// total occurrences, and the canonical group count after deduplication.
func Summarize(report *artifact.Report) string {
	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Purple).
		Padding(0, 2)

	title := style.New().Bold(true).Foreground(color.HiPurple).Render("hexvar summary")

	if report.Summary.UniqueColors == 0 {
		body := style.Faint(fmt.Sprintf("No hex codes found in %s.",
			util.Quantify(report.Summary.FilesScanned, "file", "files")))
		return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	}

	rows := []struct {
		label string
		value int
	}{
		{"Files scanned", report.Summary.FilesScanned},
		{"Unique hex codes", report.Summary.UniqueColors},
		{"Total occurrences", report.Summary.TotalOccurrences},
		{"Canonical groups", report.Summary.Clusters},
	}

	var b strings.Builder
	b.WriteString(title)
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(style.Faint(fmt.Sprintf("%-18s", row.label)))
		b.WriteString(style.Bold(fmt.Sprintf("%d", row.value)))
	}

	return box.Render(b.String())
}
