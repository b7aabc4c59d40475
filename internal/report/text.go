package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathdevth/bananabrix/internal/engine"
	"github.com/mathdevth/bananabrix/internal/ripeness"
)

// NotFoundMessage asks the user for a better photograph.
const NotFoundMessage = "No banana found in the image. Please retake the photo against a plain background."

func row(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), value)
}

// Render writes a human readable card for one result.
func Render(w io.Writer, r *engine.Result) error {
	var lines []string
	title := "Banana ripeness"
	if r.Path != "" {
		title += " · " + r.Path
	}
	lines = append(lines, titleStyle.Render(title), "")

	switch {
	case r.Error != "":
		lines = append(lines, warnStyle.Render("error: "+r.Error))
	case !r.Found:
		lines = append(lines, warnStyle.Render(NotFoundMessage))
	default:
		lines = append(lines,
			row("Mean color", fmt.Sprintf("R %.2f  G %.2f  B %.2f", r.R, r.G, r.B)),
			row("Region", fmt.Sprintf("%d px", r.Area)),
			row("Brix", valueStyle.Render(fmt.Sprintf("%.2f °Bx", r.Brix))),
			row("Tier", tierStyle(r.Tier).Render(fmt.Sprintf("%d/%d  %s", r.Tier, ripeness.TierCount, r.Label))),
			row("Ripeness", fmt.Sprintf("%s %.1f%%", bar(r.Percentage, 20), r.Percentage)),
			"",
			r.Advice,
		)
		if a := r.Allowance; a != nil {
			lines = append(lines, "",
				row("Daily sugar", fmt.Sprintf("%.1f g", a.DailyGrams)),
				row("This banana", fmt.Sprintf("%.1f g", a.BananaSugarGrams)),
				row("Of budget", allowanceStyle(a.PercentOfAllowance).Render(fmt.Sprintf("%.1f%%", a.PercentOfAllowance))),
			)
		}
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return err
}

func allowanceStyle(pct float64) lipgloss.Style {
	if pct > 50 {
		return warnStyle
	}
	return okStyle
}

func bar(pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return okStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// RenderSummary writes the one-line batch summary and the tier histogram.
func RenderSummary(w io.Writer, s engine.Summary) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.String()))
	b.WriteString("\n")
	for i, n := range s.Tiers {
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %d\n", tierStyle(i+1).Render(fmt.Sprintf("tier %d", i+1)), n)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTiers writes the tier table.
func RenderTiers(w io.Writer) error {
	var b strings.Builder
	lower := math.Inf(-1)
	for _, t := range ripeness.Tiers {
		fmt.Fprintf(&b, "%s  %-14s %s\n",
			tierStyle(t.Level).Render(fmt.Sprintf("%d", t.Level)),
			interval(lower, t.Max),
			t.Label,
		)
		b.WriteString(keyStyle.Width(0).Render("   "+t.Advice) + "\n")
		lower = t.Max
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func interval(lower, upper float64) string {
	switch {
	case math.IsInf(lower, -1):
		return fmt.Sprintf("≤ %.1f", upper)
	case math.IsInf(upper, 1):
		return fmt.Sprintf("> %.1f", lower)
	default:
		return fmt.Sprintf("(%.1f, %.1f]", lower, upper)
	}
}

// SummaryLine is a compact single-line description of a result.
func SummaryLine(r *engine.Result) string {
	if !r.Found {
		return "bananabrix: not found"
	}
	line := fmt.Sprintf("bananabrix: brix=%.2f tier=%d ripeness=%.0f%% rgb=(%.0f,%.0f,%.0f)",
		r.Brix, r.Tier, r.Percentage, r.R, r.G, r.B)
	if r.Allowance != nil {
		line += fmt.Sprintf(" sugar=%.1fg/%.1fg", r.Allowance.BananaSugarGrams, r.Allowance.DailyGrams)
	}
	return line
}
