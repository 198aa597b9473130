package fill

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/clearform/sf86gen/pkg/catalog"
	"github.com/clearform/sf86gen/pkg/field"
	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
)

func newTestPlanner(t *testing.T, options ...PlannerOption) *Planner {
	t.Helper()
	resolver, err := fieldmap.DefaultResolver()
	if err != nil {
		t.Fatalf("build resolver: %v", err)
	}
	return NewPlanner(resolver, options...)
}

func TestBuild_ResolvesLeaves(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section13.nonFederalEmployment.entries[0].employerName", "Acme Corp")
	mustSet(t, doc, "section1.fullName.lastName", "Doe")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(plan.Fields) != 2 {
		t.Fatalf("expected 2 field writes, got %d", len(plan.Fields))
	}
	if got := findValue(plan, "form1[0].section13_2[0].TextField11[0]"); got != "Acme Corp" {
		t.Fatalf("employerName write = %q", got)
	}
	if got := findValue(plan, "form1[0].Sections1-6[0].TextField11[0]"); got != "Doe" {
		t.Fatalf("lastName write = %q", got)
	}
}

func TestBuild_SortedAndDeterministic(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section11.residences.entries[1].city", "Richmond")
	mustSet(t, doc, "section11.residences.entries[0].city", "Norfolk")
	mustSet(t, doc, "section11.residences.entries[0].street", "1 Elm St")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(plan.Fields); i++ {
		if plan.Fields[i-1].Name >= plan.Fields[i].Name {
			t.Fatalf("plan not sorted: %q before %q", plan.Fields[i-1].Name, plan.Fields[i].Name)
		}
	}
}

func TestBuild_UnmappedCollected(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section1.fullName.lastName", "Doe")
	mustSet(t, doc, "section1.fullName.nickname", "D")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(plan.Unmapped) != 1 || plan.Unmapped[0] != "section1.fullName.nickname" {
		t.Fatalf("unexpected unmapped set %v", plan.Unmapped)
	}
	if len(plan.Fields) != 1 {
		t.Fatalf("expected 1 mapped write, got %d", len(plan.Fields))
	}
}

func TestBuild_EntryOverflowFails(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section11.residences.entries[4].city", "Overflow")

	if _, err := p.Build(doc); err == nil {
		t.Fatal("expected entry overflow to abort the plan")
	}
}

func TestBuild_RadioExportDefaults(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section11.residences.entries[0].isCurrent", "YES")
	mustSet(t, doc, "section11.residences.entries[1].isCurrent", "NO")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := findValue(plan, "form1[0].Section11[0].RadioButtonList[0]"); got != "1" {
		t.Fatalf("YES export = %q, want 1", got)
	}
	if got := findValue(plan, "form1[0].Section11-2[0].RadioButtonList[0]"); got != "2" {
		t.Fatalf("NO export = %q, want 2", got)
	}
}

func TestBuild_RadioExportFromCatalog(t *testing.T) {
	cat := catalog.New()
	err := cat.Add(catalog.SectionDocument{
		Metadata: catalog.SectionMetadata{Section: 11},
		Fields: []catalog.Def{{
			ID:      "radio-1",
			Name:    "form1[0].Section11[0].RadioButtonList[0]",
			Type:    catalog.TypeRadio,
			Options: []string{"Yes_Option", "No_Option"},
		}},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	p := newTestPlanner(t, WithCatalog(cat))
	doc := formdata.New()
	mustSet(t, doc, "section11.residences.entries[0].isCurrent", "YES")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := findValue(plan, "form1[0].Section11[0].RadioButtonList[0]"); got != "Yes_Option" {
		t.Fatalf("catalog export = %q", got)
	}
}

func TestBuild_MaxLengthTruncates(t *testing.T) {
	cat := catalog.New()
	err := cat.Add(catalog.SectionDocument{
		Metadata: catalog.SectionMetadata{Section: 1},
		Fields: []catalog.Def{{
			ID:        "last-name",
			Name:      "form1[0].Sections1-6[0].TextField11[0]",
			Type:      catalog.TypeText,
			MaxLength: 5,
		}},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	p := newTestPlanner(t, WithCatalog(cat))
	doc := formdata.New()
	mustSet(t, doc, "section1.fullName.lastName", "Featherstonehaugh")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := findValue(plan, "form1[0].Sections1-6[0].TextField11[0]"); got != "Feath" {
		t.Fatalf("truncated value = %q", got)
	}
	if len(plan.Warnings) != 1 || !strings.Contains(plan.Warnings[0], "truncated") {
		t.Fatalf("expected truncation warning, got %v", plan.Warnings)
	}
}

func TestStagePlan_KindRouting(t *testing.T) {
	plan := &Plan{Fields: []FieldValue{
		{Name: "form1[0].A[0].TextField11[0]", Value: "text", Kind: field.KindText},
		{Name: "form1[0].A[0].RadioButtonList[0]", Value: "1", Kind: field.KindRadio},
		{Name: "form1[0].A[0].DropDownList4[0]", Value: "United States", Kind: field.KindCountry},
		{Name: "form1[0].A[0].#field[18]", Value: "true", Kind: field.KindCheckbox},
	}}

	path, err := stagePlan(plan)
	if err != nil {
		t.Fatalf("stagePlan: %v", err)
	}
	defer os.Remove(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read staged plan: %v", err)
	}
	var file formFile
	if err := json.Unmarshal(raw, &file); err != nil {
		t.Fatalf("decode staged plan: %v", err)
	}
	if len(file.Forms) != 1 {
		t.Fatalf("expected a single form block, got %d", len(file.Forms))
	}
	block := file.Forms[0]
	if len(block.TextFields) != 1 || len(block.RadioGroups) != 1 ||
		len(block.ComboBoxes) != 1 || len(block.CheckBoxes) != 1 {
		t.Fatalf("unexpected routing: %+v", block)
	}
	if !block.CheckBoxes[0].Value {
		t.Fatal("checkbox value should be true")
	}
}

type fakeFiller struct {
	filled   *Plan
	template string
	output   string
}

func (f *fakeFiller) Fill(_ context.Context, templatePath, outputPath string, plan *Plan) error {
	f.template = templatePath
	f.output = outputPath
	f.filled = plan
	return nil
}

func (f *fakeFiller) Export(context.Context, string) (map[string]string, error) {
	values := make(map[string]string)
	if f.filled != nil {
		for _, fv := range f.filled.Fields {
			values[fv.Name] = fv.Value
		}
	}
	return values, nil
}

func TestFillerRoundTripThroughFake(t *testing.T) {
	p := newTestPlanner(t)
	doc := formdata.New()
	mustSet(t, doc, "section16.peopleWhoKnowYou.entries[2].lastName", "Nguyen")

	plan, err := p.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var filler Filler = &fakeFiller{}
	if err := filler.Fill(context.Background(), "template.pdf", "out.pdf", plan); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	values, err := filler.Export(context.Background(), "out.pdf")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := values["form1[0].Section16_3[0].TextField11[22]"]; got != "Nguyen" {
		t.Fatalf("round trip value = %q", got)
	}
}

func findValue(plan *Plan, name string) string {
	for _, fv := range plan.Fields {
		if fv.Name == name {
			return fv.Value
		}
	}
	return ""
}

func mustSet(t *testing.T, doc *formdata.Document, path string, value any) {
	t.Helper()
	if err := doc.Set(path, value); err != nil {
		t.Fatalf("Set(%s): %v", path, err)
	}
}
