package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// ReportRenderOptions holds configuration for rendering a projection report.
type ReportRenderOptions struct {
	SkipCharts bool // Do not render the sensitivity charts section.
	SkipDetail bool // Do not render the year by year ledger section.
}

// reportSections maps each section template used by report.md to its file.
var reportSections = []struct{ name, file string }{
	{"report_title", "report_title.md"},
	{"report_assumptions", "report_assumptions.md"},
	{"report_summary", "report_summary.md"},
	{"report_warnings", "report_warnings.md"},
	{"report_disclaimer", "report_disclaimer.md"},
	{"report_charts", "report_charts.md"},
	{"report_detail", "report_detail.md"},
}

// RenderReport renders the Report struct to a markdown string. Errors are
// rendered in place of the report.
func RenderReport(r *Report, opts ReportRenderOptions) string {
	skipped := map[string]bool{
		"report_charts": opts.SkipCharts,
		"report_detail": opts.SkipDetail,
	}
	tmpl, err := reportTemplate(skipped)
	if err != nil {
		return err.Error()
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("error rendering report: %v", err)
	}
	return b.String()
}

// reportTemplate parses report.md and its sections. A skipped section is
// defined empty, so report.md can always include it.
func reportTemplate(skipped map[string]bool) (*template.Template, error) {
	layout, err := fs.ReadFile(templates, "report.md")
	if err != nil {
		return nil, fmt.Errorf("error reading report template: %w", err)
	}
	tmpl, err := template.New("report").Parse(string(layout))
	if err != nil {
		return nil, fmt.Errorf("error parsing report template: %w", err)
	}
	for _, section := range reportSections {
		var content []byte
		if !skipped[section.name] {
			if content, err = fs.ReadFile(templates, section.file); err != nil {
				return nil, fmt.Errorf("error reading section %q: %w", section.file, err)
			}
		}
		if _, err := tmpl.New(section.name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("error parsing section %q: %w", section.file, err)
		}
	}
	return tmpl, nil
}
