// Package report renders a projection as plain text for terminals.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"track-roi/domain"
)

const DefaultTableMonths = 12

type Options struct {
	TableMonths int // rows of the monthly table; DefaultTableMonths when zero
}

// Write renders the summary, the first months of the series and the
// platform breakdown of result.
func Write(w io.Writer, req domain.InvestmentRequest, result domain.ProjectionResult, opts Options) error {
	p := message.NewPrinter(language.English)

	rows := opts.TableMonths
	if rows <= 0 {
		rows = DefaultTableMonths
	}
	if rows > len(result.Months) {
		rows = len(result.Months)
	}

	title := req.Title
	if title == "" {
		title = "Untitled track"
	}

	var b strings.Builder
	p.Fprintf(&b, "%s (%s, %s)\n", title, req.Genre, req.Scenario)
	p.Fprintf(&b, "Markets: %s (%s)\n", strings.Join(req.Markets, ", "), result.Rates.MarketTier.Label())
	p.Fprintf(&b, "Blended rate: %.4f per stream (reference %.4f x %.2f genre)\n\n",
		result.Rates.BlendedRate, result.Rates.MeanRate, result.Rates.GenreMultiplier)

	p.Fprintf(&b, "Investment:       %d\n", int64(req.Investment))
	p.Fprintf(&b, "Final revenue:    %d\n", int64(result.FinalRevenue))
	p.Fprintf(&b, "ROI:              %s\n", formatROI(result))
	p.Fprintf(&b, "Break-even:       %s\n", formatBreakEven(result.BreakEvenMonth))
	p.Fprintf(&b, "Total streams:    %d\n", result.TotalStreams)
	p.Fprintf(&b, "Suggested price:  %d\n", int64(result.SuggestedPrice))
	p.Fprintf(&b, "Price assessment: %s\n\n", result.PriceAssessment.Label())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tStreams\tRevenue\tCumulative\tProfit\t")
	for _, m := range result.Months[:rows] {
		p.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n",
			m.Month, m.Streams, int64(m.Revenue), int64(m.CumulativeRevenue), int64(m.Profit))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Platform\tRevenue\tShare\t")
	for _, pr := range result.PlatformBreakdown {
		p.Fprintf(tw, "%s\t%d\t%.0f%%\t\n", pr.Platform, int64(pr.Revenue), pr.Percentage)
	}
	return tw.Flush()
}

func formatROI(result domain.ProjectionResult) string {
	if !result.ROIApplicable {
		return "n/a (no investment)"
	}
	return fmt.Sprintf("%.1f%%", result.FinalROI)
}

func formatBreakEven(month *int) string {
	if month == nil {
		return "never within 36 months"
	}
	return fmt.Sprintf("month %d", *month)
}

// WriteCatalog lists the reference tables a request can use.
func WriteCatalog(w io.Writer, c domain.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "GENRE\tMULTIPLIER\t")
	for _, g := range c.Genres {
		fmt.Fprintf(tw, "%s\t%.2f\t\n", g.Name, g.Multiplier)
	}

	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "MARKET\tNAME\tRATE\t")
	for _, m := range c.Markets {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t\n", m.Code, m.Name, m.Rate)
	}

	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "SCENARIO\tPEAK\tPEAK MONTH\tDECAY\t")
	for _, s := range c.Scenarios {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%.2f\t\n", s.Key, s.PeakMultiplier, s.PeakMonth, s.DecayRate)
	}

	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "PLATFORM\tSHARE\t")
	for _, p := range c.Platforms {
		fmt.Fprintf(tw, "%s\t%.0f%%\t\n", p.Name, p.Share*100)
	}

	return tw.Flush()
}
