package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
)

// Rule is one cross-field check applied to a section of a document.
type Rule interface {
	Name() string
	Apply(doc *formdata.Document, table *fieldmap.Table, res *Result)
}

// BranchRule enforces a yes/no gate on a repeated group: when the controlling
// answer matches Expect, the group must hold at least one entry.
type BranchRule struct {
	Flag   string // logical path of the controlling answer
	Group  string // repeated group key within the same section
	Expect string // answer that requires entries, usually "YES"
}

func (r BranchRule) Name() string { return "branch" }

func (r BranchRule) Apply(doc *formdata.Document, table *fieldmap.Table, res *Result) {
	answer := stringAt(doc, r.Flag)
	if !strings.EqualFold(answer, r.Expect) {
		return
	}
	if doc.EntryCount(table.Key, r.Group) == 0 {
		res.addError(Issue{
			Path:    table.Key + "." + r.Group,
			Message: fmt.Sprintf("%s answered %s but no %s entries were provided", r.Flag, r.Expect, r.Group),
		})
	}
}

// RequiredIfRule requires sibling fields inside each entry whenever the
// entry's gate field matches Expect.
type RequiredIfRule struct {
	Group    string
	Flag     string // field key within the entry
	Expect   string
	Required []string // field keys that must be non-empty
}

func (r RequiredIfRule) Name() string { return "required-if" }

func (r RequiredIfRule) Apply(doc *formdata.Document, table *fieldmap.Table, res *Result) {
	group, ok := groupIn(table, r.Group)
	if !ok {
		return
	}
	forEachEntry(doc, table.Key, group, func(entry int) {
		if !strings.EqualFold(stringAt(doc, entryPath(table.Key, r.Group, entry, r.Flag)), r.Expect) {
			return
		}
		for _, key := range r.Required {
			path := entryPath(table.Key, r.Group, entry, key)
			if stringAt(doc, path) == "" {
				res.addError(Issue{
					Path:    path,
					Field:   key,
					Message: fmt.Sprintf("%s is required when %s is %s", key, r.Flag, r.Expect),
				})
			}
		}
	})
}

// DateOrderRule checks that a from/to date pair is ordered in every entry.
// An empty Group applies the rule to every group carrying both fields.
type DateOrderRule struct {
	Group string
	From  string
	To    string
}

func (r DateOrderRule) Name() string { return "date-order" }

func (r DateOrderRule) Apply(doc *formdata.Document, table *fieldmap.Table, res *Result) {
	for _, group := range table.Groups {
		if r.Group != "" && group.Key != r.Group {
			continue
		}
		if !hasField(group, r.From) || !hasField(group, r.To) {
			continue
		}
		forEachEntry(doc, table.Key, group, func(entry int) {
			fromPath := entryPath(table.Key, group.Key, entry, r.From)
			toPath := entryPath(table.Key, group.Key, entry, r.To)
			from, okFrom := parseDate(stringAt(doc, fromPath))
			to, okTo := parseDate(stringAt(doc, toPath))
			if !okFrom || !okTo {
				return
			}
			if from.After(to) {
				res.addError(Issue{
					Path:    toPath,
					Field:   r.To,
					Message: fmt.Sprintf("%s precedes %s", r.To, r.From),
				})
			}
		})
	}
}

// EntryCapRule rejects entry counts the PDF has no room for.
type EntryCapRule struct{}

func (EntryCapRule) Name() string { return "entry-cap" }

func (EntryCapRule) Apply(doc *formdata.Document, table *fieldmap.Table, res *Result) {
	for _, group := range table.Groups {
		if group.Entries <= 1 {
			continue
		}
		count := doc.EntryCount(table.Key, group.Key)
		if count > group.Entries {
			res.addError(Issue{
				Path:    table.Key + "." + group.Key,
				Message: fmt.Sprintf("%d entries provided but the form holds %d", count, group.Entries),
			})
		}
	}
}

// MutuallyExclusiveRule warns when conflicting answers coexist in an entry,
// such as a current-residence flag alongside an end date.
type MutuallyExclusiveRule struct {
	Group  string
	Flag   string
	Expect string
	Clears string // field that should be empty when the flag matches
}

func (r MutuallyExclusiveRule) Name() string { return "mutually-exclusive" }

func (r MutuallyExclusiveRule) Apply(doc *formdata.Document, table *fieldmap.Table, res *Result) {
	group, ok := groupIn(table, r.Group)
	if !ok {
		return
	}
	forEachEntry(doc, table.Key, group, func(entry int) {
		if !strings.EqualFold(stringAt(doc, entryPath(table.Key, r.Group, entry, r.Flag)), r.Expect) {
			return
		}
		path := entryPath(table.Key, r.Group, entry, r.Clears)
		if stringAt(doc, path) != "" {
			res.addWarning(Issue{
				Path:    path,
				Field:   r.Clears,
				Message: fmt.Sprintf("%s is set even though %s is %s", r.Clears, r.Flag, r.Expect),
			})
		}
	})
}

// DefaultRules returns the rule set applied to every section: entry caps,
// from/to ordering wherever a group carries the pair, and the gates the
// employment and residence sections depend on.
func DefaultRules() []Rule {
	return []Rule{
		EntryCapRule{},
		DateOrderRule{From: "fromDate", To: "toDate"},
		DateOrderRule{From: "benefitsStartDate", To: "benefitsEndDate"},
		DateOrderRule{From: "clearanceFromDate", To: "clearanceToDate"},
		DateOrderRule{From: "gapFromDate", To: "gapToDate"},
		RequiredIfRule{Group: "employmentRecordIssues", Flag: "hasGaps", Expect: "YES", Required: []string{"gapExplanation"}},
		RequiredIfRule{Group: "unemployment", Flag: "receivedBenefits", Expect: "YES", Required: []string{"benefitsStartDate"}},
		MutuallyExclusiveRule{Group: "residences", Flag: "isCurrent", Expect: "YES", Clears: "toDate"},
		MutuallyExclusiveRule{Group: "nonFederalEmployment", Flag: "isCurrentEmployment", Expect: "YES", Clears: "toDate"},
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01", "01/2006", "2006"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stringAt(doc *formdata.Document, path string) string {
	raw, ok := doc.Get(path)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return strings.TrimSpace(s)
}

func entryPath(section, group string, entry int, fieldKey string) string {
	p := fieldmap.Path{Section: section, Group: group, Entry: entry, Field: fieldKey}
	return p.String()
}

func groupIn(table *fieldmap.Table, key string) (fieldmap.Group, bool) {
	for _, g := range table.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return fieldmap.Group{}, false
}

func hasField(group fieldmap.Group, key string) bool {
	for _, b := range group.Fields {
		if b.Field == key {
			return true
		}
	}
	return false
}

// forEachEntry visits each populated entry index, or -1 once for single
// instance groups.
func forEachEntry(doc *formdata.Document, section string, group fieldmap.Group, visit func(entry int)) {
	if group.Entries <= 1 {
		visit(-1)
		return
	}
	count := doc.EntryCount(section, group.Key)
	for i := 0; i < count; i++ {
		visit(i)
	}
}
