package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	ruleStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// Fancy renders g for humans: digits separated into boxes, empty cells
// shown as dots, the whole grid framed. Purely presentational; it
// makes no validity judgement. Grids with broken shapes render as-is.
func Fancy(g Grid) string {
	n := len(g)
	if n == 0 {
		return frameStyle.Render("")
	}
	box, err := BoxSize(n)
	if err != nil {
		box = n // degenerate shape: render without box rules
	}
	width := len(fmt.Sprint(n))

	var rows []string
	for r := 0; r < n; r++ {
		if r > 0 && box < n && r%box == 0 {
			rows = append(rows, ruleStyle.Render(horizontalRule(n, box, width)))
		}
		var b strings.Builder
		for c := 0; c < len(g[r]); c++ {
			if c > 0 && box < n && c%box == 0 {
				b.WriteString(ruleStyle.Render(" │"))
			}
			if c > 0 {
				b.WriteByte(' ')
			}
			v := g[r][c]
			if v == Empty {
				b.WriteString(emptyStyle.Render(strings.Repeat(".", width)))
			} else {
				b.WriteString(fmt.Sprintf("%*d", width, v))
			}
		}
		rows = append(rows, b.String())
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}

func horizontalRule(n, box, width int) string {
	cell := strings.Repeat("─", width)
	var parts []string
	for s := 0; s < box; s++ {
		segment := make([]string, box)
		for i := range segment {
			segment[i] = cell
		}
		parts = append(parts, strings.Join(segment, "─"))
	}
	return strings.Join(parts, "─┼─")
}
