package fieldmap

import (
	"fmt"

	"github.com/clearform/sf86gen/pkg/field"
)

// Binding declares how one logical field key maps onto a widget inside its
// group's subform. Index is the widget index for the first entry; Stride is
// the per-entry advance when entries share a subform. Names, when set, lists
// one complete AcroForm name per entry and overrides computation entirely for
// irregular widgets.
type Binding struct {
	Field  string
	Widget string
	Index  int
	Stride int
	Kind   field.Kind
	Names  []string
}

// Group collects the bindings of one logical grouping inside a section, such
// as section13's nonFederalEmployment. Entries is the maximum entry count the
// PDF provides room for; 1 means the group is addressed without an entries[]
// segment. Subforms holds the per-entry subform prefix; a single element
// shared across multiple entries requires strides on the bindings.
type Group struct {
	Key      string
	Entries  int
	Subforms []string
	Fields   []Binding
}

// Table declares a whole section's logical-to-PDF binding.
type Table struct {
	Section int
	Key     string
	Title   string
	Groups  []Group
}

func (t *Table) validate() error {
	if t.Section <= 0 || t.Key == "" {
		return fmt.Errorf("fieldmap: table missing section number or key")
	}
	if len(t.Groups) == 0 {
		return fmt.Errorf("fieldmap: table %s has no groups", t.Key)
	}
	for _, g := range t.Groups {
		if g.Key == "" {
			return fmt.Errorf("fieldmap: table %s has a group without a key", t.Key)
		}
		entries := g.Entries
		if entries < 1 {
			return fmt.Errorf("fieldmap: group %s.%s must allow at least one entry", t.Key, g.Key)
		}
		if len(g.Subforms) == 0 {
			return fmt.Errorf("fieldmap: group %s.%s has no subform prefix", t.Key, g.Key)
		}
		if len(g.Subforms) > 1 && len(g.Subforms) != entries {
			return fmt.Errorf("fieldmap: group %s.%s declares %d subforms for %d entries",
				t.Key, g.Key, len(g.Subforms), entries)
		}
		for _, b := range g.Fields {
			if b.Field == "" {
				return fmt.Errorf("fieldmap: group %s.%s has a binding without a field key", t.Key, g.Key)
			}
			if len(b.Names) > 0 {
				if len(b.Names) != entries {
					return fmt.Errorf("fieldmap: binding %s.%s.%s declares %d explicit names for %d entries",
						t.Key, g.Key, b.Field, len(b.Names), entries)
				}
				continue
			}
			if b.Widget == "" {
				return fmt.Errorf("fieldmap: binding %s.%s.%s has neither widget nor explicit names",
					t.Key, g.Key, b.Field)
			}
			if entries > 1 && len(g.Subforms) == 1 && b.Stride == 0 {
				return fmt.Errorf("fieldmap: binding %s.%s.%s shares a subform across %d entries but has no stride",
					t.Key, g.Key, b.Field, entries)
			}
		}
	}
	return nil
}

// name computes the AcroForm field name for an entry of a binding.
func (g Group) name(b Binding, entry int) string {
	if len(b.Names) > 0 {
		return b.Names[entry]
	}
	prefix := g.Subforms[0]
	if len(g.Subforms) > 1 {
		prefix = g.Subforms[entry]
	}
	idx := b.Index + entry*b.Stride
	return fmt.Sprintf("form1[0].%s.%s[%d]", prefix, b.Widget, idx)
}
