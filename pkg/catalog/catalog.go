package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Def describes one AcroForm field in the reference catalog. Names follow the
// hierarchical scheme fixed by the government PDF, for example
// form1[0].Section13_2[0].TextField11[3].
type Def struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Page      int      `json:"page,omitempty" yaml:"page,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Options   []string `json:"options,omitempty" yaml:"options,omitempty"`
	Value     any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// Widget type names as emitted by the field extraction tooling.
const (
	TypeText     = "PDFTextField"
	TypeRadio    = "PDFRadioGroup"
	TypeCheckbox = "PDFCheckBox"
	TypeDropdown = "PDFDropdown"
)

// SectionDocument is the on-disk shape of one section's field inventory.
type SectionDocument struct {
	Metadata SectionMetadata `json:"metadata" yaml:"metadata"`
	Fields   []Def           `json:"fields" yaml:"fields"`
}

// SectionMetadata carries the header block of a section document.
type SectionMetadata struct {
	Section     int    `json:"section" yaml:"section"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	TotalFields int    `json:"totalFields,omitempty" yaml:"totalFields,omitempty"`
}

// Catalog is the merged, indexed field inventory across sections.
type Catalog struct {
	defs      []Def
	byName    map[string]int
	bySection map[int][]int
}

// New builds an empty catalog.
func New() *Catalog {
	return &Catalog{
		byName:    make(map[string]int),
		bySection: make(map[int][]int),
	}
}

// Add merges a section document into the catalog. Duplicate field names are
// rejected because the AcroForm namespace is flat and unique.
func (c *Catalog) Add(doc SectionDocument) error {
	if doc.Metadata.Section <= 0 {
		return fmt.Errorf("catalog: section document missing section number")
	}
	for _, def := range doc.Fields {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("catalog: section %d contains a field without a name", doc.Metadata.Section)
		}
		if _, exists := c.byName[name]; exists {
			return fmt.Errorf("catalog: duplicate field name %q", name)
		}
		def.Name = name
		c.byName[name] = len(c.defs)
		c.bySection[doc.Metadata.Section] = append(c.bySection[doc.Metadata.Section], len(c.defs))
		c.defs = append(c.defs, def)
	}
	return nil
}

// Lookup returns the definition for an exact AcroForm field name.
func (c *Catalog) Lookup(name string) (Def, bool) {
	idx, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return Def{}, false
	}
	return c.defs[idx], true
}

// Section returns all definitions recorded for the given section number.
func (c *Catalog) Section(section int) []Def {
	indices := c.bySection[section]
	if len(indices) == 0 {
		return nil
	}
	out := make([]Def, 0, len(indices))
	for _, idx := range indices {
		out = append(out, c.defs[idx])
	}
	return out
}

// Sections returns the sorted section numbers present in the catalog.
func (c *Catalog) Sections() []int {
	out := make([]int, 0, len(c.bySection))
	for section := range c.bySection {
		out = append(out, section)
	}
	sort.Ints(out)
	return out
}

// Names returns every field name in the catalog, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def.Name)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of fields in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}
