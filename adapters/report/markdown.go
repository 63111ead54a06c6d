// Package report renders a stored reading into shareable artifacts: an
// HTML report built from markdown templates and an xlsx score workbook.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"selfchart/domain/survey"
	"selfchart/internal/norms"
	"selfchart/models"
)

// Renderer builds the text report for a reading.
type Renderer struct{}

// NewRenderer creates a report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Markdown assembles the full report as markdown.
func (r *Renderer) Markdown(reading *models.Reading) string {
	var b strings.Builder

	b.WriteString("# Your Reading\n\n")
	if reading.Name != "" {
		fmt.Fprintf(&b, "Prepared for **%s**.\n\n", reading.Name)
	}

	trait := reading.Trait.TraitProfile
	if len(trait.Scores) > 0 {
		b.WriteString("## Trait Scores\n\n")
		b.WriteString("| Trait | Percentile | Band |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, t := range survey.Traits {
			if score, ok := trait.Scores[t]; ok {
				fmt.Fprintf(&b, "| %s | %.0f | %s |\n", t, score.Percentile, score.Band)
			}
		}
		b.WriteString("\n")

		if summary := norms.Compare(trait); len(summary.Comparisons) > 0 {
			b.WriteString("## Against the Population\n\n")
			for _, c := range summary.Comparisons {
				fmt.Fprintf(&b, "- %s: %.0fth percentile (z = %+.2f)\n", c.Trait, c.Percentile, c.ZScore)
			}
			b.WriteString("\n")
		}
	}
	if trait.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", trait.Summary)
	}

	ch := reading.Chart.ChartProfile
	b.WriteString("## Your Chart\n\n")
	fmt.Fprintf(&b, "- Type: **%s**\n", ch.Type)
	fmt.Fprintf(&b, "- Authority: **%s**\n", ch.Authority)
	fmt.Fprintf(&b, "- Profile: **%s**\n", ch.Profile)
	fmt.Fprintf(&b, "- Definition: **%s**\n\n", ch.Definition)

	if len(reading.Insights.Report) > 0 {
		b.WriteString("## Integration\n\n")
		for _, line := range reading.Insights.Report {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the markdown report to HTML.
func (r *Renderer) HTML(reading *models.Reading) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(r.Markdown(reading)))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags,
	})
	return markdown.Render(doc, renderer)
}
