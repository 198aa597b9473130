package fieldmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/clearform/sf86gen/pkg/field"
)

// Sentinel errors returned by Resolve and ReverseResolve. Callers branch on
// these with errors.Is; the wrapped messages carry the offending path.
var (
	ErrUnknownPath      = errors.New("fieldmap: unknown logical path")
	ErrUnknownField     = errors.New("fieldmap: unknown pdf field name")
	ErrEntryOutOfRange  = errors.New("fieldmap: entry index out of range")
	ErrDuplicateBinding = errors.New("fieldmap: duplicate binding")
)

// Resolver answers logical-path-to-PDF-name lookups in both directions. It is
// safe for concurrent use after construction.
type Resolver struct {
	mu     sync.RWMutex
	tables map[string]*Table
	byPath map[string]resolved
	byName map[string]string
}

type resolved struct {
	name string
	kind field.Kind
}

// NewResolver builds a resolver from the supplied tables. Tables are
// validated and fully expanded up front so lookups are map reads.
func NewResolver(tables ...*Table) (*Resolver, error) {
	r := &Resolver{
		tables: make(map[string]*Table),
		byPath: make(map[string]resolved),
		byName: make(map[string]string),
	}
	for _, t := range tables {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a section table, expanding every group, entry, and binding
// into the forward and reverse indexes.
func (r *Resolver) Register(t *Table) error {
	if t == nil {
		return fmt.Errorf("fieldmap: nil table")
	}
	if err := t.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[t.Key]; exists {
		return fmt.Errorf("%w: table %q already registered", ErrDuplicateBinding, t.Key)
	}

	// Stage all writes first so a rejected table leaves the resolver
	// untouched.
	type pending struct {
		path string
		res  resolved
	}
	var additions []pending
	staged := make(map[string]struct{})
	for _, g := range t.Groups {
		for entry := 0; entry < g.Entries; entry++ {
			for _, b := range g.Fields {
				p := Path{Section: t.Key, Group: g.Key, Entry: entry, Field: b.Field}
				if g.Entries == 1 {
					p.Entry = -1
				}
				name := g.name(b, entry)
				if _, dup := r.byName[name]; dup {
					return fmt.Errorf("%w: pdf field %q bound twice", ErrDuplicateBinding, name)
				}
				if _, dup := staged[name]; dup {
					return fmt.Errorf("%w: pdf field %q bound twice", ErrDuplicateBinding, name)
				}
				staged[name] = struct{}{}
				additions = append(additions, pending{path: p.String(), res: resolved{name: name, kind: b.Kind}})
			}
		}
	}
	for _, add := range additions {
		r.byPath[add.path] = add.res
		r.byName[add.res.name] = add.path
	}
	r.tables[t.Key] = t
	return nil
}

// Resolve maps a logical path to the exact AcroForm field name.
func (r *Resolver) Resolve(rawPath string) (string, error) {
	p, err := ParsePath(rawPath)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if res, ok := r.byPath[p.String()]; ok {
		return res.name, nil
	}
	return "", r.explainMiss(p)
}

// Kind reports the widget kind declared for a logical path.
func (r *Resolver) Kind(rawPath string) (field.Kind, error) {
	p, err := ParsePath(rawPath)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if res, ok := r.byPath[p.String()]; ok {
		return res.kind, nil
	}
	return "", r.explainMiss(p)
}

// ReverseResolve maps an AcroForm field name back to its logical path.
func (r *Resolver) ReverseResolve(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if path, ok := r.byName[strings.TrimSpace(name)]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Table returns a registered section table by key.
func (r *Resolver) Table(key string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[key]
	return t, ok
}

// Tables lists the registered section tables ordered by section number.
func (r *Resolver) Tables() []*Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

// Paths returns every logical path known to the resolver, sorted.
func (r *Resolver) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byPath))
	for p := range r.byPath {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Names returns every bound AcroForm field name, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// explainMiss distinguishes entry-range misses from unknown paths and
// suggests the nearest known path for the latter. Callers hold the lock.
func (r *Resolver) explainMiss(p Path) error {
	t, ok := r.tables[p.Section]
	if !ok {
		return fmt.Errorf("%w: no table for section %q", ErrUnknownPath, p.Section)
	}
	for _, g := range t.Groups {
		if g.Key != p.Group {
			continue
		}
		if p.Entry >= g.Entries {
			return fmt.Errorf("%w: %s allows %d entries, got index %d",
				ErrEntryOutOfRange, p.Section+"."+p.Group, g.Entries, p.Entry)
		}
		if g.Entries > 1 && p.Entry < 0 {
			return fmt.Errorf("%w: %s is a repeated group, address it with entries[i]",
				ErrUnknownPath, p.Section+"."+p.Group)
		}
	}
	if suggestion := r.nearest(p.String()); suggestion != "" {
		return fmt.Errorf("%w: %q (closest known: %q)", ErrUnknownPath, p.String(), suggestion)
	}
	return fmt.Errorf("%w: %q", ErrUnknownPath, p.String())
}

func (r *Resolver) nearest(target string) string {
	best, bestLen := "", 0
	for candidate := range r.byPath {
		l := commonPrefixLen(candidate, target)
		if l > bestLen {
			best, bestLen = candidate, l
		}
	}
	if bestLen < len(target)/2 {
		return ""
	}
	return best
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
