package fill

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/catalog"
	"github.com/clearform/sf86gen/pkg/field"
	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
)

// FieldValue is one fillable PDF field with its final export value.
type FieldValue struct {
	Name  string     `json:"name"`
	Value string     `json:"value"`
	Kind  field.Kind `json:"kind"`
}

// Plan is an ordered set of field writes plus the leaves that could not be
// bound. Unmapped paths never abort a fill; the caller decides whether a
// partial fill is acceptable.
type Plan struct {
	Fields   []FieldValue `json:"fields"`
	Unmapped []string     `json:"unmapped,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// PlannerOption customises a Planner.
type PlannerOption func(*Planner)

// WithCatalog supplies the field inventory used for export-value translation
// and max-length enforcement.
func WithCatalog(cat *catalog.Catalog) PlannerOption {
	return func(p *Planner) {
		p.catalog = cat
	}
}

// WithLogger injects a zap logger for unmapped-path reporting.
func WithLogger(logger *zap.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Planner builds fill plans against one resolver.
type Planner struct {
	resolver *fieldmap.Resolver
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

// NewPlanner constructs a planner bound to a resolver's mapping tables.
func NewPlanner(resolver *fieldmap.Resolver, options ...PlannerOption) *Planner {
	p := &Planner{resolver: resolver, logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Build resolves every leaf of the document into a field write. Output is
// sorted by PDF field name so repeated runs produce identical plans.
func (p *Planner) Build(doc *formdata.Document) (*Plan, error) {
	if doc == nil {
		return nil, fmt.Errorf("fill: nil document")
	}

	plan := &Plan{}
	for path, raw := range doc.Flatten() {
		name, err := p.resolver.Resolve(path)
		if err != nil {
			if errors.Is(err, fieldmap.ErrEntryOutOfRange) {
				return nil, fmt.Errorf("fill: %s: %w", path, err)
			}
			p.logger.Warn("fill: leaf has no pdf binding", zap.String("path", path))
			plan.Unmapped = append(plan.Unmapped, path)
			continue
		}

		kind, err := p.resolver.Kind(path)
		if err != nil {
			return nil, fmt.Errorf("fill: kind lookup for %s: %w", path, err)
		}

		value := stringify(raw, kind)
		value = p.translate(plan, name, kind, value)
		plan.Fields = append(plan.Fields, FieldValue{Name: name, Value: value, Kind: kind})
	}

	sort.Slice(plan.Fields, func(i, j int) bool { return plan.Fields[i].Name < plan.Fields[j].Name })
	sort.Strings(plan.Unmapped)
	return plan, nil
}

// translate applies the catalog's export values and length limits to one
// field write.
func (p *Planner) translate(plan *Plan, name string, kind field.Kind, value string) string {
	var def catalog.Def
	var known bool
	if p.catalog != nil {
		def, known = p.catalog.Lookup(name)
	}

	switch kind {
	case field.KindRadio:
		value = exportValue(def, known, value)
	case field.KindCheckbox:
		if isAffirmative(value) {
			value = "true"
		} else {
			value = "false"
		}
	case field.KindDropdown, field.KindCountry, field.KindState:
		if known && len(def.Options) > 0 && !containsFold(def.Options, value) {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("%s: %q is not one of the form's options", name, value))
		}
	}

	if known && def.MaxLength > 0 && len(value) > def.MaxLength {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("%s: value truncated to %d characters", name, def.MaxLength))
		value = value[:def.MaxLength]
	}
	return value
}

// exportValue maps a logical yes/no answer onto the radio group's export
// values. The government form exports "1" for the first option and "2" for
// the second; a catalog entry with explicit options overrides that default.
func exportValue(def catalog.Def, known bool, value string) string {
	options := []string{"1", "2"}
	if known && len(def.Options) > 0 {
		options = def.Options
	}
	if containsFold(options, value) {
		return value
	}
	switch {
	case isAffirmative(value):
		return options[0]
	case strings.EqualFold(value, "NO") || strings.EqualFold(value, "false"):
		if len(options) > 1 {
			return options[1]
		}
	}
	return value
}

func stringify(raw any, kind field.Kind) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		if v {
			return "YES"
		}
		return "NO"
	case float64:
		if kind == field.KindNumeric || v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isAffirmative(value string) bool {
	return strings.EqualFold(value, "YES") || strings.EqualFold(value, "true") || value == "1"
}

func containsFold(options []string, value string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}
