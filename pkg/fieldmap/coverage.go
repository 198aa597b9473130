package fieldmap

import (
	"sort"

	"github.com/clearform/sf86gen/pkg/catalog"
)

// CoverageReport compares the resolver's bindings with the catalog's field
// inventory. Mapped names exist in both; Unmapped names exist in the PDF but
// have no logical binding; Dangling bindings point at PDF fields that the
// catalog does not contain and would silently drop during a fill.
type CoverageReport struct {
	TotalPDF   int
	Mapped     []string
	Unmapped   []string
	Dangling   []string
	PerSection map[int]SectionCoverage
}

// SectionCoverage summarises one section's counts.
type SectionCoverage struct {
	PDF    int
	Mapped int
}

// MappedRatio reports the fraction of PDF fields with a logical binding.
func (r CoverageReport) MappedRatio() float64 {
	if r.TotalPDF == 0 {
		return 0
	}
	return float64(len(r.Mapped)) / float64(r.TotalPDF)
}

// Coverage computes a coverage report for the resolver against a catalog.
func (r *Resolver) Coverage(cat *catalog.Catalog) CoverageReport {
	report := CoverageReport{
		TotalPDF:   cat.Len(),
		PerSection: make(map[int]SectionCoverage),
	}

	bound := make(map[string]struct{})
	for _, name := range r.Names() {
		bound[name] = struct{}{}
		if _, ok := cat.Lookup(name); ok {
			report.Mapped = append(report.Mapped, name)
		} else {
			report.Dangling = append(report.Dangling, name)
		}
	}

	for _, section := range cat.Sections() {
		cov := SectionCoverage{}
		for _, def := range cat.Section(section) {
			cov.PDF++
			if _, ok := bound[def.Name]; ok {
				cov.Mapped++
			} else {
				report.Unmapped = append(report.Unmapped, def.Name)
			}
		}
		report.PerSection[section] = cov
	}

	sort.Strings(report.Mapped)
	sort.Strings(report.Unmapped)
	sort.Strings(report.Dangling)
	return report
}
