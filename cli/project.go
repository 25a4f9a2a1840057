package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"track-roi/domain"
	"track-roi/report"
	"track-roi/service"
)

type projectOptions struct {
	title        string
	investment   float64
	genre        string
	dailyStreams int64
	markets      []string
	scenario     string
	months       int
	asJSON       bool
}

func newProjectCommand(root *rootOptions) *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the 36-month return of a track investment",
		Example: `  track-roi project --genre Pop --daily-streams 10000 --markets US,DE,GB --scenario stable --investment 50000
  track-roi project --scenario high_growth --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.title, "title", "", "track title shown in the report")
	f.Float64Var(&opts.investment, "investment", 50000, "upfront investment")
	f.StringVar(&opts.genre, "genre", "Phonk", "track genre")
	f.Int64Var(&opts.dailyStreams, "daily-streams", 10000, "baseline daily streams on Spotify")
	f.StringSliceVar(&opts.markets, "markets", []string{"US", "DE", "GB"}, "comma-separated country codes")
	f.StringVar(&opts.scenario, "scenario", string(domain.ScenarioStable), "declining, stable, modest_growth or high_growth")
	f.IntVar(&opts.months, "months", 0, "months shown in the table (default from projection.table_months)")
	f.BoolVar(&opts.asJSON, "json", false, "print the full projection as JSON")

	return cmd
}

func runProject(cmd *cobra.Command, root *rootOptions, opts projectOptions) error {
	req, err := service.PrepareRequest(domain.InvestmentRequest{
		Title:        opts.title,
		Investment:   opts.investment,
		Genre:        opts.genre,
		DailyStreams: opts.dailyStreams,
		Markets:      opts.markets,
		Scenario:     domain.Scenario(opts.scenario),
	})
	if err != nil {
		return err
	}

	result, err := service.NewProjectionService().Project(req)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	months := opts.months
	if months == 0 && root.cfg != nil {
		months = root.cfg.Projection.TableMonths
	}
	return report.Write(cmd.OutOrStdout(), req, result, report.Options{TableMonths: months})
}
