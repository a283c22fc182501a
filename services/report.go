package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cuisine-scene/models"
)

// ReportPrinter writes the human-readable run output.
type ReportPrinter struct {
	out     io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	bold    lipgloss.Style
	good    lipgloss.Style
	muted   lipgloss.Style
	caser   cases.Caser
}

func NewReportPrinter(out io.Writer) *ReportPrinter {
	r := lipgloss.NewRenderer(out)
	return &ReportPrinter{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		bold:    r.NewStyle().Bold(true),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		muted:   r.NewStyle().Faint(true),
		caser:   cases.Title(language.English),
	}
}

func (p *ReportPrinter) Intro() {
	fmt.Fprintln(p.out, p.title.Render("Is your home state a diverse foodie mecca?"))
	fmt.Fprintln(p.out, "I have set out to find the most diverse dining capitals in America.")
}

func (p *ReportPrinter) Confirm(loc models.Locality) {
	fmt.Fprintf(p.out, "Nice! Lets find out if %s is a diverse foodie mecca\n", p.bold.Render(loc.String()))
}

func (p *ReportPrinter) Recommendations(loc models.Locality, recs []models.Recommendation) {
	fmt.Fprintf(p.out, "\n%s\n", p.heading.Render("Here are some recommendations of highly rated restaurants in "+loc.String()+":"))
	if len(recs) == 0 {
		fmt.Fprintln(p.out, p.muted.Render("  No recommendations available"))
		return
	}
	for _, r := range recs {
		fmt.Fprintf(p.out, "  %s - %s stars\n", r.Name, p.good.Render(formatRating(r.Rating)))
	}
}

// CategoryCount prints the per-category line as soon as a count is known.
func (p *ReportPrinter) CategoryCount(loc models.Locality, c models.CategoryCount) {
	cuisine := p.caser.String(c.Category)
	if !c.Known {
		fmt.Fprintf(p.out, "The number of %s restaurants in %s is unknown.\n", cuisine, loc)
		return
	}
	fmt.Fprintf(p.out, "There is %d %s restaurants in %s.\n", c.Count, cuisine, loc)
}

// Summary prints the total and the aggregated table.
func (p *ReportPrinter) Summary(loc models.Locality, agg *models.Aggregate) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(p.out, "\n%s\n", p.title.Render(sep))
	fmt.Fprintf(p.out, "There is over %s restaurants in %s.\n", p.bold.Render(fmt.Sprint(agg.Total)), loc)
	fmt.Fprintf(p.out, "%s\n", p.title.Render(sep))

	fmt.Fprintf(p.out, "  %-16s %22s %12s\n", "Cuisine Type", "Number of Restaurants", "Percentage")
	fmt.Fprintf(p.out, "  %s\n", thin)
	for _, row := range agg.Rows {
		fmt.Fprintf(p.out, "  %-16s %22d %11.2f%%\n", row.Category, row.Count, row.Percentage)
	}
	if len(agg.Excluded) > 0 {
		fmt.Fprintf(p.out, "  %s\n", thin)
		fmt.Fprintln(p.out, p.muted.Render("  Unknown (excluded): "+strings.Join(agg.Excluded, ", ")))
	}
	fmt.Fprintln(p.out)
}

// formatRating prints 4.5 as "4.5" and 4 as "4.0".
func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}
