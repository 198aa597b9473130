package report

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/sectionizer"
	"github.com/clearform/sf86gen/pkg/validation"
)

//go:embed templates/*.tpl
var defaultTemplates embed.FS

// Format selects the output flavour of a report.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// Option configures a Renderer.
type Option func(*Renderer) error

// WithFS replaces the embedded template tree. Template names keep the
// <report>.<format>.tpl convention.
func WithFS(files fs.FS) Option {
	return func(r *Renderer) error {
		if files == nil {
			return fmt.Errorf("report: nil template fs")
		}
		r.set = pongo2.NewSet("report", pongo2.NewFSLoader(files))
		return nil
	}
}

// Renderer renders reports from a pongo2 template set. Parsed templates are
// cached; the renderer is safe for concurrent use.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New builds a renderer over the embedded default templates.
func New(options ...Option) (*Renderer, error) {
	sub, err := fs.Sub(defaultTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("report: embedded templates: %w", err)
	}
	r := &Renderer{
		set:       pongo2.NewSet("report", pongo2.NewFSLoader(sub)),
		templates: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Validation renders a set of per-section validation results.
func (r *Renderer) Validation(results []validation.Result, format Format) (string, error) {
	errors, warnings := 0, 0
	for _, res := range results {
		errors += len(res.Errors)
		warnings += len(res.Warnings)
	}
	return r.render("validation", format, pongo2.Context{
		"results":  results,
		"valid":    validation.AllValid(results),
		"errors":   errors,
		"warnings": warnings,
	})
}

// Coverage renders a mapping coverage report.
func (r *Renderer) Coverage(report fieldmap.CoverageReport, format Format) (string, error) {
	sections := make([]int, 0, len(report.PerSection))
	for section := range report.PerSection {
		sections = append(sections, section)
	}
	sort.Ints(sections)

	type sectionRow struct {
		Section int
		PDF     int
		Mapped  int
	}
	rows := make([]sectionRow, 0, len(sections))
	for _, section := range sections {
		cov := report.PerSection[section]
		rows = append(rows, sectionRow{Section: section, PDF: cov.PDF, Mapped: cov.Mapped})
	}

	return r.render("coverage", format, pongo2.Context{
		"total":    report.TotalPDF,
		"mapped":   len(report.Mapped),
		"unmapped": report.Unmapped,
		"dangling": report.Dangling,
		"ratio":    fmt.Sprintf("%.1f%%", report.MappedRatio()*100),
		"rows":     rows,
	})
}

// Distribution renders a sectionizer distribution table. Section titles come
// from the section registry.
func (r *Renderer) Distribution(dist map[int]int, format Format) (string, error) {
	type row struct {
		Section int
		Title   string
		Count   int
	}
	rows := make([]row, 0, len(dist))
	total := 0
	for _, section := range sortedKeys(dist) {
		title := ""
		if info, ok := sectionizer.Info(section); ok {
			title = info.Title
		}
		rows = append(rows, row{Section: section, Title: title, Count: dist[section]})
		total += dist[section]
	}
	return r.render("distribution", format, pongo2.Context{
		"rows":         rows,
		"total":        total,
		"unclassified": dist[0],
	})
}

func (r *Renderer) render(report string, format Format, ctx pongo2.Context) (string, error) {
	switch format {
	case FormatText, FormatHTML:
	case "":
		format = FormatText
	default:
		return "", fmt.Errorf("report: unknown format %q", format)
	}

	name := fmt.Sprintf("%s.%s.tpl", report, format)
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("report: execute %q: %w", name, err)
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func sortedKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
