package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/velocity/internal/cli/formatter"
	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// weekFormValues holds the raw text of each form field. Parsing happens after
// the form completes so blank and invalid answers follow the same zero rule
// as line prompts.
type weekFormValues struct {
	HyperfocusWeekday string
	HyperfocusWeekend string
	BookPages         string
	SideSkillDays     string
	ConstraintDays    string
	Load              string
}

func (v weekFormValues) record() domain.WeekRecord {
	return domain.WeekRecord{
		HyperfocusHoursWeekday: parseUint8OrZero(v.HyperfocusWeekday),
		HyperfocusHoursWeekend: parseUint8OrZero(v.HyperfocusWeekend),
		BookPages:              parseUint8OrZero(v.BookPages),
		SideSkillsDays:         parseUint8OrZero(v.SideSkillDays),
		ConstraintsDays:        parseUint8OrZero(v.ConstraintDays),
		Load:                   parseLoadOrZero(v.Load),
	}
}

func velocityHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// countInput returns a huh.Input for a whole-number field. There is no
// validation; blank or invalid answers count as 0.
func countInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("blank or invalid counts as 0").
		Placeholder(placeholder).
		Value(value)
}

func weekForm(values *weekFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			countInput(promptHyperfocusWeekday, "10", &values.HyperfocusWeekday),
			countInput(promptHyperfocusWeekend, "5", &values.HyperfocusWeekend),
			countInput(promptBookPages, "125", &values.BookPages),
		),
		huh.NewGroup(
			countInput(promptSideSkillDays, "7", &values.SideSkillDays),
			countInput(promptConstraintDays, "7", &values.ConstraintDays),
			countInput(promptLoad, "0.5", &values.Load),
		),
	).WithTheme(velocityHuhTheme()).WithShowHelp(false)
}

// collectWeekRecordForm runs the interactive form on the terminal.
func collectWeekRecordForm(ctx context.Context) (domain.WeekRecord, error) {
	var values weekFormValues
	if err := weekForm(&values).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.WeekRecord{}, errors.New("week form cancelled")
		}
		return domain.WeekRecord{}, fmt.Errorf("running week form: %w", err)
	}
	return values.record(), nil
}
