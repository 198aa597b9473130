package fieldmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/clearform/sf86gen/pkg/field"
)

func defaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := DefaultResolver()
	if err != nil {
		t.Fatalf("build default resolver: %v", err)
	}
	return r
}

func TestResolve_KnownPaths(t *testing.T) {
	r := defaultResolver(t)

	cases := []struct {
		path string
		want string
	}{
		// Identity block shares the Sections1-6 subform.
		{"section1.fullName.lastName", "form1[0].Sections1-6[0].TextField11[0]"},
		{"section2.dateOfBirth.date", "form1[0].Sections1-6[0].From_Datefield_Name_2[0]"},
		{"section3.placeOfBirth.state", "form1[0].Sections1-6[0].School6_State[0]"},
		// Citizenship subsections keep the escaped dots of the real subform name.
		{"section9.naturalized.certificateNumber", `form1[0].Section9\.1-9\.4[0].TextField11[6]`},
		{"section9.derived.alienRegistrationNumber", `form1[0].Section9\.1-9\.4[0].TextField11[17]`},
		// Residence entries use subform-per-entry with indices restarting.
		{"section11.residences.entries[0].street", "form1[0].Section11[0].TextField11[0]"},
		{"section11.residences.entries[2].street", "form1[0].Section11-3[0].TextField11[0]"},
		{"section11.residences.entries[3].toDate", "form1[0].Section11-4[0].From_Datefield_Name_2[1]"},
		// Employment subforms are lowercase with -2 continuation entries.
		{"section13.nonFederalEmployment.entries[0].employerName", "form1[0].section13_2[0].TextField11[0]"},
		{"section13.nonFederalEmployment.entries[1].employerName", "form1[0].section13_2-2[0].TextField11[0]"},
		{"section13.federalEmployment.entries[0].supervisorEmail", "form1[0].section13_1[0].p3-t68[2]"},
		{"section13.employmentRecordIssues.hasGaps", "form1[0].section13_5[0].RadioButtonList[1]"},
		// Self-employment phone and email are plain text widgets.
		{"section13.selfEmployment.entries[0].businessPhone", "form1[0].section13_3[0].TextField11[6]"},
		{"section13.selfEmployment.entries[0].businessEmail", "form1[0].section13_3[0].TextField11[8]"},
		{"section13.selfEmployment.entries[1].businessExtension", "form1[0].section13_3-2[0].TextField11[7]"},
		// Section 16 persons stride through shared widget families.
		{"section16.peopleWhoKnowYou.entries[0].lastName", "form1[0].Section16_3[0].TextField11[0]"},
		{"section16.peopleWhoKnowYou.entries[1].lastName", "form1[0].Section16_3[0].TextField11[11]"},
		{"section16.peopleWhoKnowYou.entries[2].lastName", "form1[0].Section16_3[0].TextField11[22]"},
		{"section16.peopleWhoKnowYou.entries[2].email", "form1[0].Section16_3[0].TextField11[28]"},
		{"section16.peopleWhoKnowYou.entries[1].phone", "form1[0].Section16_3[0].p3-t68[2]"},
		{"section16.peopleWhoKnowYou.entries[2].suffix", "form1[0].Section16_3[0].suffix[2]"},
		// Dates known sit inside per-person #area containers.
		{"section16.peopleWhoKnowYou.entries[0].knownFromDate", "form1[0].Section16_3[0].#area[0].From_Datefield_Name_2[0]"},
		{"section16.peopleWhoKnowYou.entries[1].knownFromDate", "form1[0].Section16_3[0].#area[1].From_Datefield_Name_2[2]"},
		{"section16.peopleWhoKnowYou.entries[2].knownToDate", "form1[0].Section16_3[0].#area[2].From_Datefield_Name_2[5]"},
	}

	for _, tc := range cases {
		got, err := r.Resolve(tc.path)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolve_CitizenshipBindings(t *testing.T) {
	r := defaultResolver(t)

	// Spot checks against the per-field inventory of all 78 citizenship
	// widgets, covering every subsection group.
	cases := []struct {
		path string
		want string
	}{
		{"section9.bornToUSParents.documentType", "form1[0].Sections7-9[0].RadioButtonList[3]"},
		{"section9.bornToUSParents.documentNumber", "form1[0].Sections7-9[0].TextField11[4]"},
		{"section9.bornToUSParents.certificateNumber", "form1[0].Sections7-9[0].TextField11[12]"},
		{"section9.bornToUSParents.wasBornOnMilitaryInstallation", "form1[0].Sections7-9[0].RadioButtonList[2]"},
		{"section9.bornToUSParents.isIssueDateEstimated", "form1[0].Sections7-9[0].#field[25]"},
		{"section9.naturalized.courtName", `form1[0].Section9\.1-9\.4[0].TextField11[15]`},
		{"section9.naturalized.courtCity", `form1[0].Section9\.1-9\.4[0].TextField11[0]`},
		{"section9.naturalized.certificateNumber", `form1[0].Section9\.1-9\.4[0].TextField11[6]`},
		{"section9.naturalized.entryDate", `form1[0].Section9\.1-9\.4[0].From_Datefield_Name_2[4]`},
		{"section9.naturalized.priorCitizenship2", `form1[0].Section9\.1-9\.4[0].DropDownList15[1]`},
		{"section9.derived.permanentResidentCardNumber", `form1[0].Section9\.1-9\.4[0].TextField11[18]`},
		{"section9.derived.documentIssueDate", `form1[0].Section9\.1-9\.4[0].From_Datefield_Name_2[5]`},
		{"section9.nonUSCitizen.residenceStatus", `form1[0].Section9\.1-9\.4[0].TextField11[8]`},
		{"section9.nonUSCitizen.entryDate", `form1[0].Section9\.1-9\.4[0].From_Datefield_Name_2[1]`},
		{"section9.nonUSCitizen.hasAlienRegistration", `form1[0].Section9\.1-9\.4[0].RadioButtonList[0]`},
		{"section9.nonUSCitizen.entryState", `form1[0].Section9\.1-9\.4[0].School6_State[2]`},
	}

	for _, tc := range cases {
		got, err := r.Resolve(tc.path)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolve_ValueSuffixAccepted(t *testing.T) {
	r := defaultResolver(t)

	got, err := r.Resolve("section13.nonFederalEmployment.entries[0].employerName.value")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "form1[0].section13_2[0].TextField11[0]" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestReverseResolve(t *testing.T) {
	r := defaultResolver(t)

	cases := []struct {
		name string
		want string
	}{
		{"form1[0].Section16_3[0].TextField11[22]", "section16.peopleWhoKnowYou.entries[2].lastName"},
		{"form1[0].section13_2[0].TextField11[1]", "section13.nonFederalEmployment.entries[0].positionTitle"},
		{"form1[0].Section11-2[0].RadioButtonList[0]", "section11.residences.entries[1].isCurrent"},
		{"form1[0].Section16_3[0].#area[2].From_Datefield_Name_2[5]", "section16.peopleWhoKnowYou.entries[2].knownToDate"},
	}
	for _, tc := range cases {
		got, err := r.ReverseResolve(tc.name)
		if err != nil {
			t.Errorf("ReverseResolve(%q): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ReverseResolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}

	if _, err := r.ReverseResolve("form1[0].Section99[0].TextField11[0]"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestResolve_EntryOutOfRange(t *testing.T) {
	r := defaultResolver(t)

	_, err := r.Resolve("section16.peopleWhoKnowYou.entries[3].lastName")
	if !errors.Is(err, ErrEntryOutOfRange) {
		t.Fatalf("expected ErrEntryOutOfRange, got %v", err)
	}

	_, err = r.Resolve("section11.residences.entries[4].street")
	if !errors.Is(err, ErrEntryOutOfRange) {
		t.Fatalf("expected ErrEntryOutOfRange, got %v", err)
	}
}

func TestResolve_UnknownPathSuggestsNearest(t *testing.T) {
	r := defaultResolver(t)

	_, err := r.Resolve("section13.nonFederalEmployment.entries[0].employer")
	if !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath, got %v", err)
	}
	// The misspelled key should surface the real one in the message.
	if want := "employerName"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected suggestion containing %q in %q", want, err.Error())
	}
}

func TestResolver_Kind(t *testing.T) {
	r := defaultResolver(t)

	kind, err := r.Kind("section11.residences.entries[0].verifierPhone")
	if err != nil {
		t.Fatalf("kind: %v", err)
	}
	if kind != field.KindPhone {
		t.Fatalf("expected phone kind, got %q", kind)
	}
}

func TestRegister_RejectsSharedSubformWithoutStride(t *testing.T) {
	bad := &Table{
		Section: 99,
		Key:     "section99",
		Groups: []Group{
			{
				Key:      "entriesGroup",
				Entries:  2,
				Subforms: []string{"Section99[0]"},
				Fields: []Binding{
					{Field: "name", Widget: "TextField11", Index: 0, Kind: field.KindText},
				},
			},
		},
	}
	if _, err := NewResolver(bad); err == nil {
		t.Fatalf("expected validation error for missing stride")
	}
}

func TestRegister_FailedTableLeavesResolverClean(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	bad := &Table{
		Section: 40,
		Key:     "section40",
		Groups: []Group{
			{
				Key:      "g",
				Entries:  1,
				Subforms: []string{"S[0]"},
				Fields: []Binding{
					{Field: "a", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "b", Widget: "TextField11", Index: 0, Kind: field.KindText},
				},
			},
		},
	}
	if err := r.Register(bad); !errors.Is(err, ErrDuplicateBinding) {
		t.Fatalf("expected ErrDuplicateBinding, got %v", err)
	}

	// The failed registration must not leave partial state behind.
	if _, err := r.ReverseResolve("form1[0].S[0].TextField11[0]"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected no reverse binding after failure, got %v", err)
	}

	good := &Table{
		Section: 40,
		Key:     "section40",
		Groups: []Group{
			{
				Key:      "g",
				Entries:  1,
				Subforms: []string{"S[0]"},
				Fields: []Binding{
					{Field: "a", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "b", Widget: "TextField11", Index: 1, Kind: field.KindText},
				},
			},
		},
	}
	if err := r.Register(good); err != nil {
		t.Fatalf("corrected table rejected: %v", err)
	}

	name, err := r.Resolve("section40.g.a")
	if err != nil {
		t.Fatalf("resolve after re-register: %v", err)
	}
	if name != "form1[0].S[0].TextField11[0]" {
		t.Fatalf("unexpected name %q", name)
	}
	path, err := r.ReverseResolve(name)
	if err != nil || path != "section40.g.a" {
		t.Fatalf("ReverseResolve(%q) = %q, %v", name, path, err)
	}
}
