package report

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/validation"
)

func TestValidationText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	results := []validation.Result{
		{Section: "section11", Valid: false, Errors: []validation.Issue{
			{Path: "section11.residences.entries[0].toDate", Message: "toDate precedes fromDate"},
		}},
		{Section: "section1", Valid: true},
	}

	out, err := r.Validation(results, FormatText)
	if err != nil {
		t.Fatalf("Validation: %v", err)
	}
	for _, fragment := range []string{"FAIL", "1 error(s)", "[section11] invalid", "toDate precedes fromDate", "[section1] ok"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestValidationHTML(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Validation([]validation.Result{{Section: "section1", Valid: true}}, FormatHTML)
	if err != nil {
		t.Fatalf("Validation: %v", err)
	}
	if !strings.Contains(out, "<html>") || !strings.Contains(out, "PASS") {
		t.Fatalf("unexpected html output:\n%s", out)
	}
}

func TestCoverageText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := fieldmap.CoverageReport{
		TotalPDF: 4,
		Mapped:   []string{"a", "b", "c"},
		Unmapped: []string{"form1[0].Section11[0].TextField11[9]"},
		Dangling: []string{"form1[0].Gone[0].TextField11[0]"},
		PerSection: map[int]fieldmap.SectionCoverage{
			11: {PDF: 4, Mapped: 3},
		},
	}

	out, err := r.Coverage(report, FormatText)
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	for _, fragment := range []string{"3/4", "75.0%", "section 11: 3/4", "Unbound pdf fields", "Bindings missing"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestDistributionText(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Distribution(map[int]int{13: 120, 11: 72, 0: 3}, FormatText)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	for _, fragment := range []string{"195 fields", "3 unclassified", "section 11 (Where You Have Lived): 72", "section 13 (Employment Activities): 120"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Validation(nil, Format("yaml")); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestWithFSOverride(t *testing.T) {
	custom := fstest.MapFS{
		"validation.text.tpl": &fstest.MapFile{
			Data: []byte("custom: {{ errors }} problem(s)"),
		},
	}

	r, err := New(WithFS(custom))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Validation([]validation.Result{
		{Section: "section1", Errors: []validation.Issue{{Message: "boom"}}},
	}, FormatText)
	if err != nil {
		t.Fatalf("Validation: %v", err)
	}
	if out != "custom: 1 problem(s)" {
		t.Fatalf("override not used: %q", out)
	}
}
