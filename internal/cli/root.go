package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/velocity/internal/cli/formatter"
	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/alexanderramin/velocity/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment probes used by the CLI.
type App struct {
	Velocity service.VelocityService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// collectForm replaces the huh form in tests.
	collectForm func(ctx context.Context) (domain.WeekRecord, error)
}

// NewRootCmd creates the "velocity" command. Without flags it prompts for
// the six weekly observations on stdin and prints one result line.
func NewRootCmd(app *App) *cobra.Command {
	var (
		breakdown   bool
		interactive bool
	)

	root := &cobra.Command{
		Use:   "velocity",
		Short: "Compute weekly velocity from six weekly observations",
		Long: `Prompts for weekday and weekend hyperfocus hours, book pages read,
side-skill days, constraint days and work/school load, then prints the
weekly velocity score in [0, 1]. Invalid or blank answers count as 0.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			record, err := app.collect(ctx, cmd, interactive)
			if err != nil {
				return err
			}

			result, err := app.Velocity.Evaluate(ctx, record)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatVelocity(result.Velocity))
			if breakdown {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatBreakdown(*result))
			}
			return nil
		},
	}

	root.Flags().BoolVar(&breakdown, "breakdown", false, "Also print every factor behind the score")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect answers with a form when stdin is a terminal")

	return root
}

func (app *App) collect(ctx context.Context, cmd *cobra.Command, interactive bool) (domain.WeekRecord, error) {
	if interactive && app.IsInteractive != nil && app.IsInteractive() {
		form := app.collectForm
		if form == nil {
			form = collectWeekRecordForm
		}
		return form(ctx)
	}
	return collectWeekRecordIO(cmd.InOrStdin(), cmd.OutOrStdout()), nil
}
