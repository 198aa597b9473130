package formdata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/clearform/sf86gen/pkg/fieldmap"
)

// Document is a mutable applicant data tree. The zero value is not usable;
// construct with New or FromJSON.
type Document struct {
	root map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{root: make(map[string]any)}
}

// FromJSON decodes a document, sanitising every string leaf.
func FromJSON(data []byte) (*Document, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("formdata: decode document: %w", err)
	}
	sanitizeTree(root)
	return &Document{root: root}, nil
}

// ToJSON encodes the document for persistence.
func (d *Document) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(d.root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("formdata: encode document: %w", err)
	}
	return out, nil
}

// Set writes a value at a logical path, creating intermediate containers and
// extending entry arrays as needed. String values are sanitised.
func (d *Document) Set(rawPath string, value any) error {
	p, err := fieldmap.ParsePath(rawPath)
	if err != nil {
		return err
	}
	if s, ok := value.(string); ok {
		value = SanitizeText(s)
	}

	leafOwner, err := d.containerFor(p, true)
	if err != nil {
		return err
	}
	leafOwner[p.Field] = value
	return nil
}

// Get reads the value at a logical path. A {"value": ...} wrapper leaf is
// unwrapped transparently.
func (d *Document) Get(rawPath string) (any, bool) {
	p, err := fieldmap.ParsePath(rawPath)
	if err != nil {
		return nil, false
	}
	leafOwner, err := d.containerFor(p, false)
	if err != nil {
		return nil, false
	}
	raw, ok := leafOwner[p.Field]
	if !ok {
		return nil, false
	}
	return unwrap(raw), true
}

// Delete removes the leaf at a logical path, if present.
func (d *Document) Delete(rawPath string) {
	p, err := fieldmap.ParsePath(rawPath)
	if err != nil {
		return
	}
	leafOwner, err := d.containerFor(p, false)
	if err != nil {
		return
	}
	delete(leafOwner, p.Field)
}

// AppendEntry adds an empty entry to a repeated group and returns its index.
func (d *Document) AppendEntry(section, group string) int {
	groupNode := childMap(d.root, section, true)
	groupMap := childMap(groupNode, group, true)
	entries, _ := groupMap["entries"].([]any)
	entries = append(entries, make(map[string]any))
	groupMap["entries"] = entries
	return len(entries) - 1
}

// EntryCount reports how many entries a repeated group currently holds.
func (d *Document) EntryCount(section, group string) int {
	groupNode := childMap(d.root, section, false)
	if groupNode == nil {
		return 0
	}
	groupMap := childMap(groupNode, group, false)
	if groupMap == nil {
		return 0
	}
	entries, _ := groupMap["entries"].([]any)
	return len(entries)
}

// Section returns a section subtree, or nil when absent.
func (d *Document) Section(key string) map[string]any {
	return childMap(d.root, key, false)
}

// Sections lists the section keys present in the document, sorted.
func (d *Document) Sections() []string {
	out := make([]string, 0, len(d.root))
	for key := range d.root {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Flatten walks the tree and returns every leaf keyed by its logical path.
// Wrapper leaves are unwrapped; nil and empty-string leaves are skipped.
func (d *Document) Flatten() map[string]any {
	out := make(map[string]any)
	for section, rawSection := range d.root {
		sectionMap, ok := rawSection.(map[string]any)
		if !ok {
			continue
		}
		for group, rawGroup := range sectionMap {
			groupMap, ok := rawGroup.(map[string]any)
			if !ok {
				continue
			}
			if entries, ok := groupMap["entries"].([]any); ok {
				for i, rawEntry := range entries {
					entryMap, ok := rawEntry.(map[string]any)
					if !ok {
						continue
					}
					for fieldKey, leaf := range entryMap {
						addLeaf(out, fieldmap.Path{Section: section, Group: group, Entry: i, Field: fieldKey}, leaf)
					}
				}
				continue
			}
			for fieldKey, leaf := range groupMap {
				addLeaf(out, fieldmap.Path{Section: section, Group: group, Entry: -1, Field: fieldKey}, leaf)
			}
		}
	}
	return out
}

// containerFor walks to the map owning the path's leaf. When create is true,
// missing intermediate containers are materialised.
func (d *Document) containerFor(p fieldmap.Path, create bool) (map[string]any, error) {
	sectionMap := childMap(d.root, p.Section, create)
	if sectionMap == nil {
		return nil, fmt.Errorf("formdata: section %q not present", p.Section)
	}
	groupMap := childMap(sectionMap, p.Group, create)
	if groupMap == nil {
		return nil, fmt.Errorf("formdata: group %q not present", p.Section+"."+p.Group)
	}
	if p.Entry < 0 {
		return groupMap, nil
	}

	entries, _ := groupMap["entries"].([]any)
	if p.Entry >= len(entries) {
		if !create {
			return nil, fmt.Errorf("formdata: entry %d not present in %s.%s", p.Entry, p.Section, p.Group)
		}
		for len(entries) <= p.Entry {
			entries = append(entries, make(map[string]any))
		}
		groupMap["entries"] = entries
	}
	entryMap, ok := entries[p.Entry].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("formdata: entry %d in %s.%s is not an object", p.Entry, p.Section, p.Group)
	}
	return entryMap, nil
}

func childMap(parent map[string]any, key string, create bool) map[string]any {
	if parent == nil {
		return nil
	}
	if existing, ok := parent[key].(map[string]any); ok {
		return existing
	}
	if !create {
		return nil
	}
	fresh := make(map[string]any)
	parent[key] = fresh
	return fresh
}

func addLeaf(out map[string]any, p fieldmap.Path, raw any) {
	value := unwrap(raw)
	if value == nil {
		return
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return
	}
	out[p.String()] = value
}

func unwrap(raw any) any {
	if wrapper, ok := raw.(map[string]any); ok {
		if inner, ok := wrapper["value"]; ok {
			return inner
		}
		return nil
	}
	return raw
}
