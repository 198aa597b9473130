package sectionizer

import (
	"regexp"
	"testing"

	"github.com/clearform/sf86gen/pkg/catalog"
)

func TestClassify_SubformPatterns(t *testing.T) {
	s := New()

	cases := []struct {
		name    string
		section int
		rule    string
	}{
		{"form1[0].Sections1-6[0].TextField11[0]", 1, "identity-block"},
		{`form1[0].Section9\.1-9\.4[0].TextField11[4]`, 9, "section9-subsections"},
		{"form1[0].Sections7-9[0].RadioButtonList[1]", 9, "contact-citizenship-block"},
		{"form1[0].Sections7-9[0].p3-t68[0]", 7, "contact-block-phone"},
		{"form1[0].Section11-3[0].TextField11[0]", 11, "section11"},
		{"form1[0].section13_2[0].TextField11[3]", 13, "section13"},
		{"form1[0].section13_1-2[0].RadioButtonList[0]", 13, "section13"},
		{"form1[0].Section16_3[0].TextField11[22]", 16, "section16"},
		{"form1[0].Section16_3[0].#area[1].From_Datefield_Name_2[2]", 16, "section16"},
		{"form1[0].Section17_1[0].TextField11[0]", 17, "section17"},
		{"form1[0].Section20a2[0].TextField11[5]", 20, "section20"},
		{"form1[0].Section29_2[0].RadioButtonList[0]", 29, "section29"},
		{"form1[0].ContinuationSheet1[0].TextField11[0]", 30, "continuation"},
	}

	for _, tc := range cases {
		res := s.Classify(tc.name)
		if res.Section != tc.section {
			t.Errorf("Classify(%q).Section = %d, want %d", tc.name, res.Section, tc.section)
		}
		if res.Rule != tc.rule {
			t.Errorf("Classify(%q).Rule = %q, want %q", tc.name, res.Rule, tc.rule)
		}
	}
}

func TestClassify_GenericNumberFallback(t *testing.T) {
	s := New()

	res := s.Classify("form1[0].Section30[0].RadioButtonList[0]")
	if res.Section != 30 {
		t.Fatalf("expected section 30, got %+v", res)
	}
	if res.Rule != "generic-number" {
		t.Fatalf("expected generic-number rule, got %+v", res)
	}
}

func TestClassify_Unknown(t *testing.T) {
	s := New()

	res := s.Classify("form1[0].Mystery[0].TextField11[0]")
	if res.Section != 0 || res.Confidence != 0 {
		t.Fatalf("expected unknown result, got %+v", res)
	}
}

func TestClassifyDef_PageFallback(t *testing.T) {
	s := New()

	res := s.ClassifyDef(catalog.Def{Name: "form1[0].Mystery[0].TextField11[0]", Page: 39})
	if res.Section != 16 {
		t.Fatalf("expected page fallback to section 16, got %+v", res)
	}
	if res.Rule != "page-span" || res.Confidence >= 0.5 {
		t.Fatalf("expected low-confidence page rule, got %+v", res)
	}
}

func TestWithRules_TakesPriority(t *testing.T) {
	custom := Rule{
		Name:       "override",
		Pattern:    regexp.MustCompile(`Sections1-6\[`),
		Section:    2,
		Confidence: 1,
	}
	s := New(WithRules(custom))

	res := s.Classify("form1[0].Sections1-6[0].From_Datefield_Name_2[0]")
	if res.Section != 2 || res.Rule != "override" {
		t.Fatalf("expected custom rule to win, got %+v", res)
	}
}

func TestClassifyAll(t *testing.T) {
	cat := catalog.New()
	err := cat.Add(catalog.SectionDocument{
		Metadata: catalog.SectionMetadata{Section: 11},
		Fields: []catalog.Def{
			{ID: "1", Name: "form1[0].Section11[0].TextField11[0]", Type: catalog.TypeText},
			{ID: "2", Name: "form1[0].Mystery[0].TextField11[9]", Type: catalog.TypeText, Page: 39},
		},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	results := New().ClassifyAll(cat)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if got := results["form1[0].Section11[0].TextField11[0]"]; got.Section != 11 {
		t.Fatalf("expected section 11, got %+v", got)
	}
	if got := results["form1[0].Mystery[0].TextField11[9]"]; got.Section != 16 || got.Rule != "page-span" {
		t.Fatalf("expected page fallback to section 16, got %+v", got)
	}
}

func TestRegistry(t *testing.T) {
	all := Registry()
	if len(all) != 30 {
		t.Fatalf("expected 30 sections, got %d", len(all))
	}
	for i, info := range all {
		if info.Number != i+1 {
			t.Fatalf("registry out of order at %d: %+v", i, info)
		}
		if info.FirstPage < 1 || info.LastPage < info.FirstPage {
			t.Fatalf("bad page span for section %d: %+v", info.Number, info)
		}
	}

	info, ok := Info(16)
	if !ok || info.Key != "section16" || info.MaxEntries != 3 {
		t.Fatalf("unexpected section 16 metadata: %+v", info)
	}
	if _, ok := Info(31); ok {
		t.Fatal("expected no metadata for section 31")
	}
}

func TestDistribution(t *testing.T) {
	cat := catalog.New()
	err := cat.Add(catalog.SectionDocument{
		Metadata: catalog.SectionMetadata{Section: 13},
		Fields: []catalog.Def{
			{ID: "1", Name: "form1[0].section13_2[0].TextField11[0]", Type: catalog.TypeText},
			{ID: "2", Name: "form1[0].section13_2[0].TextField11[1]", Type: catalog.TypeText},
			{ID: "3", Name: "form1[0].Mystery[0].TextField11[9]", Type: catalog.TypeText},
		},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	dist := New().Distribution(cat)
	if dist[13] != 2 {
		t.Fatalf("expected 2 fields in section 13, got %d", dist[13])
	}
	if dist[0] != 1 {
		t.Fatalf("expected 1 unclassified field, got %d", dist[0])
	}
	if got := Sections(dist); len(got) != 2 || got[0] != 0 || got[1] != 13 {
		t.Fatalf("unexpected section list %v", got)
	}
}
