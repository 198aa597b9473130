package validation

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/field"
	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
)

// Option customises a Validator.
type Option func(*Validator)

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// WithExtraRules appends rules to the default set.
func WithExtraRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = append(v.rules, rules...)
	}
}

// WithLogger injects a zap logger for unmapped-path warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator runs the schema, rule, and format layers over a document.
type Validator struct {
	resolver *fieldmap.Resolver
	rules    []Rule
	formats  formatChecker
	logger   *zap.Logger
}

type formatChecker interface {
	Var(field any, tag string) error
}

// New builds a validator bound to a resolver's mapping tables.
func New(resolver *fieldmap.Resolver, options ...Option) *Validator {
	v := &Validator{
		resolver: resolver,
		rules:    DefaultRules(),
		formats:  newFormatValidator(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// ValidateSection runs every layer against one section of the document.
func (v *Validator) ValidateSection(doc *formdata.Document, sectionKey string) Result {
	res := Result{Section: sectionKey, Valid: true}

	table, ok := v.resolver.Table(sectionKey)
	if !ok {
		res.addWarning(Issue{
			Path:    sectionKey,
			Message: fmt.Sprintf("no mapping table registered for %s; section skipped", sectionKey),
		})
		return res
	}

	CheckSchema(table, doc.Section(sectionKey), &res)
	for _, rule := range v.rules {
		rule.Apply(doc, table, &res)
	}
	v.checkFormats(doc, sectionKey, &res)
	return res
}

// ValidateAll validates every section present in the document.
func (v *Validator) ValidateAll(doc *formdata.Document) []Result {
	sections := doc.Sections()
	out := make([]Result, 0, len(sections))
	for _, sectionKey := range sections {
		out = append(out, v.ValidateSection(doc, sectionKey))
	}
	return out
}

// checkFormats walks the section's leaves and applies the format tag of each
// field's widget kind. Leaves on paths the resolver does not know produce
// warnings, never errors; the coverage report owns unmapped accounting.
func (v *Validator) checkFormats(doc *formdata.Document, sectionKey string, res *Result) {
	prefix := sectionKey + "."
	for path, raw := range doc.Flatten() {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}

		kind, err := v.resolver.Kind(path)
		if err != nil {
			if errors.Is(err, fieldmap.ErrEntryOutOfRange) {
				// EntryCapRule already reported the overflow.
				continue
			}
			v.logger.Debug("validation: leaf not bound to a pdf field", zap.String("path", path))
			res.addWarning(Issue{Path: path, Message: "no pdf field is bound to this path"})
			continue
		}

		tag := formatTag(kind)
		if kind == field.KindText && strings.HasSuffix(strings.ToLower(fieldKeyOf(path)), "zip") {
			tag = "omitempty,zip"
		}
		if kind == field.KindDate {
			if _, ok := parseDate(value); !ok && value != "" {
				res.addError(Issue{Path: path, Field: fieldKeyOf(path), Message: "unrecognised date format"})
			}
			continue
		}
		if tag == "" {
			continue
		}
		if err := v.formats.Var(value, tag); err != nil {
			res.addError(Issue{
				Path:    path,
				Field:   fieldKeyOf(path),
				Message: fmt.Sprintf("value %q fails %s format", value, strings.TrimPrefix(tag, "omitempty,")),
			})
		}
	}
}

func fieldKeyOf(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
