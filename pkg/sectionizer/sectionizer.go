package sectionizer

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/catalog"
)

// Result is one classification outcome. Section 0 with zero confidence means
// the field could not be attributed to any section.
type Result struct {
	Section    int
	Confidence float64
	Rule       string
}

// Option customises a Sectionizer.
type Option func(*Sectionizer)

// WithLogger injects a zap logger for ambiguity and miss warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sectionizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRules prepends caller-supplied rules, which take priority over the
// built-in list.
func WithRules(rules ...Rule) Option {
	return func(s *Sectionizer) {
		s.rules = append(append([]Rule{}, rules...), s.rules...)
	}
}

// Sectionizer classifies AcroForm field names into SF-86 sections.
type Sectionizer struct {
	rules  []Rule
	pages  map[int][2]int
	logger *zap.Logger
}

// New constructs a Sectionizer with the built-in rule list.
func New(options ...Option) *Sectionizer {
	s := &Sectionizer{
		rules:  defaultRules(),
		pages:  sectionPageSpans(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Classify attributes a raw field name to a section using name patterns only.
func (s *Sectionizer) Classify(name string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Result{}
	}

	for _, rule := range s.rules {
		if !rule.Pattern.MatchString(trimmed) {
			continue
		}
		res := Result{Section: rule.Section, Confidence: rule.Confidence, Rule: rule.Name}
		if rule.Name == "contact-citizenship-block" {
			res = refineContactBlock(trimmed, res)
		}
		return res
	}

	if match := genericSectionRe.FindStringSubmatch(trimmed); match != nil {
		section, err := strconv.Atoi(match[1])
		if err == nil && section >= 1 && section <= 30 {
			return Result{Section: section, Confidence: 0.6, Rule: "generic-number"}
		}
	}

	s.logger.Debug("sectionizer: no name rule matched", zap.String("field", trimmed))
	return Result{}
}

// ClassifyAll classifies every field in a catalog, keyed by field name.
func (s *Sectionizer) ClassifyAll(cat *catalog.Catalog) map[string]Result {
	out := make(map[string]Result, cat.Len())
	for _, section := range cat.Sections() {
		for _, def := range cat.Section(section) {
			out[def.Name] = s.ClassifyDef(def)
		}
	}
	return out
}

// ClassifyDef attributes a catalog definition, falling back to the registry
// page spans when no name rule matches.
func (s *Sectionizer) ClassifyDef(def catalog.Def) Result {
	if res := s.Classify(def.Name); res.Section != 0 {
		return res
	}
	if def.Page > 0 {
		// Lowest section wins when spans overlap (the identity block shares
		// its pages across sections 1-6).
		for section := 1; section <= 30; section++ {
			span, ok := s.pages[section]
			if !ok {
				continue
			}
			if def.Page >= span[0] && def.Page <= span[1] {
				return Result{Section: section, Confidence: 0.3, Rule: "page-span"}
			}
		}
	}
	s.logger.Warn("sectionizer: unclassified field",
		zap.String("field", def.Name), zap.Int("page", def.Page))
	return Result{}
}

// Distribution counts classified fields per section across a catalog.
// Section 0 collects the unclassifiable remainder.
func (s *Sectionizer) Distribution(cat *catalog.Catalog) map[int]int {
	out := make(map[int]int)
	for _, section := range cat.Sections() {
		for _, def := range cat.Section(section) {
			res := s.ClassifyDef(def)
			out[res.Section]++
			if res.Section != 0 && res.Section != section && res.Confidence >= 0.9 {
				s.logger.Warn("sectionizer: catalog section disagrees with name rule",
					zap.String("field", def.Name),
					zap.Int("catalogSection", section),
					zap.Int("ruleSection", res.Section),
					zap.String("rule", res.Rule))
			}
		}
	}
	return out
}

// Sections lists the section numbers present in a distribution, sorted.
func Sections(distribution map[int]int) []int {
	out := make([]int, 0, len(distribution))
	for section := range distribution {
		out = append(out, section)
	}
	sort.Ints(out)
	return out
}

func refineContactBlock(name string, base Result) Result {
	switch {
	case passportWidgetRe.MatchString(name):
		return Result{Section: 8, Confidence: 0.7, Rule: "contact-block-passport"}
	case contactWidgetRe.MatchString(name):
		return Result{Section: 7, Confidence: 0.7, Rule: "contact-block-phone"}
	default:
		return base
	}
}

// sectionPageSpans flattens the registry page spans into a lookup table.
// Spans serve only as a low-confidence fallback.
func sectionPageSpans() map[int][2]int {
	out := make(map[int][2]int, len(registry))
	for _, info := range registry {
		out[info.Number] = [2]int{info.FirstPage, info.LastPage}
	}
	return out
}
