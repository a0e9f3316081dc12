package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/velocity/internal/velocity"
)

// FormatVelocity renders the result line, without a trailing newline.
// The format is fixed; scripts parse it.
func FormatVelocity(v float64) string {
	return fmt.Sprintf("\n=== Weekly Velocity: %.3f ===", v)
}

// FormatBreakdown renders every factor behind a velocity score as a table.
func FormatBreakdown(b velocity.Breakdown) string {
	factors := []struct {
		label string
		value float64
	}{
		{"Hyperfocus utilization", b.UHF},
		{"Quality blend", b.Quality},
		{"Reading ratio", b.Reading},
		{"Burnout penalty", b.Burnout},
		{"Momentum", b.Momentum},
		{"Load convexity", b.LoadConvexity},
	}

	rows := make([][]string, 0, len(factors)+2)
	for _, f := range factors {
		rows = append(rows, []string{f.label, FactorColor(f.value).Render(fmt.Sprintf("%.4f", f.value))})
	}
	rows = append(rows,
		[]string{Dim("Raw product"), Dim(fmt.Sprintf("%.4f", b.Raw))},
		[]string{Bold("Velocity"), Bold(fmt.Sprintf("%.4f", b.Velocity))},
	)

	var sb strings.Builder
	sb.WriteString(Header("Velocity breakdown"))
	sb.WriteString("\n")
	sb.WriteString(RenderTable([]string{"FACTOR", "VALUE"}, rows))
	if b.Raw > b.Velocity {
		sb.WriteString(Dim("Raw product exceeded 1 and was clamped."))
		sb.WriteString("\n")
	}
	return sb.String()
}
