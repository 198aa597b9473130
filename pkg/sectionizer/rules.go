package sectionizer

import "regexp"

// Rule binds a field-name pattern to a section with a confidence weight.
// Rules are evaluated in order; the first match wins.
type Rule struct {
	Name       string
	Pattern    *regexp.Regexp
	Section    int
	Confidence float64
}

// defaultRules covers every subform family observed in the PDF field
// inventory. Shared-subform blocks get lower confidence because widget-level
// heuristics refine them afterwards.
func defaultRules() []Rule {
	return []Rule{
		// Escaped dots are literal characters inside the AcroForm name.
		{Name: "section9-subsections", Pattern: regexp.MustCompile(`Section9\\\.1-9\\\.4\[`), Section: 9, Confidence: 0.95},
		{Name: "identity-block", Pattern: regexp.MustCompile(`Sections1-6\[`), Section: 1, Confidence: 0.5},
		{Name: "contact-citizenship-block", Pattern: regexp.MustCompile(`Sections7-9\[`), Section: 9, Confidence: 0.4},
		{Name: "section10", Pattern: regexp.MustCompile(`Section10(-\d)?\[`), Section: 10, Confidence: 0.95},
		{Name: "section11", Pattern: regexp.MustCompile(`Section11(-\d)?\[`), Section: 11, Confidence: 0.95},
		{Name: "section12", Pattern: regexp.MustCompile(`Section12(-\d)?\[`), Section: 12, Confidence: 0.95},
		// Employment subforms are lowercase in the PDF.
		{Name: "section13", Pattern: regexp.MustCompile(`(?i)section13_\d(-\d)?\[`), Section: 13, Confidence: 0.95},
		{Name: "section14", Pattern: regexp.MustCompile(`Section14(_\d)?\[`), Section: 14, Confidence: 0.95},
		{Name: "section15", Pattern: regexp.MustCompile(`Section15(_\d)?\[`), Section: 15, Confidence: 0.95},
		{Name: "section16", Pattern: regexp.MustCompile(`Section16_\d\[`), Section: 16, Confidence: 0.95},
		{Name: "section17", Pattern: regexp.MustCompile(`Section17_\d\[`), Section: 17, Confidence: 0.95},
		{Name: "section18", Pattern: regexp.MustCompile(`Section18(_\d)?\[`), Section: 18, Confidence: 0.95},
		{Name: "section19", Pattern: regexp.MustCompile(`Section19_\d\[`), Section: 19, Confidence: 0.95},
		{Name: "section20", Pattern: regexp.MustCompile(`Section20[ab]\d?\[`), Section: 20, Confidence: 0.95},
		{Name: "section21", Pattern: regexp.MustCompile(`Section21[a-e]?\d?\[`), Section: 21, Confidence: 0.95},
		{Name: "section22", Pattern: regexp.MustCompile(`Section22(_\d)?\[`), Section: 22, Confidence: 0.95},
		{Name: "section23", Pattern: regexp.MustCompile(`Section23(_\d)?\[`), Section: 23, Confidence: 0.95},
		{Name: "section24", Pattern: regexp.MustCompile(`Section24(_\d)?\[`), Section: 24, Confidence: 0.95},
		{Name: "section25", Pattern: regexp.MustCompile(`Section25(_\d)?\[`), Section: 25, Confidence: 0.95},
		{Name: "section26", Pattern: regexp.MustCompile(`Section26(_\d+)?\[`), Section: 26, Confidence: 0.95},
		{Name: "section27", Pattern: regexp.MustCompile(`Section27(_\d)?\[`), Section: 27, Confidence: 0.95},
		{Name: "section28", Pattern: regexp.MustCompile(`Section28(_\d)?\[`), Section: 28, Confidence: 0.95},
		{Name: "section29", Pattern: regexp.MustCompile(`Section29(_\d)?\[`), Section: 29, Confidence: 0.95},
		{Name: "continuation", Pattern: regexp.MustCompile(`(?i)continuation\w*\[`), Section: 30, Confidence: 0.9},
	}
}

// genericSectionRe is the last-resort name heuristic: any subform segment
// carrying a leading section number.
var genericSectionRe = regexp.MustCompile(`(?i)\.section[s]?_?(\d{1,2})`)

// Widget-level refinements for the shared Sections7-9 subform: phone and
// email widgets belong to section 7 (contact information), passport fields
// to section 8.
var (
	contactWidgetRe  = regexp.MustCompile(`p3-t68\[|(?i)email`)
	passportWidgetRe = regexp.MustCompile(`(?i)passport`)
)
