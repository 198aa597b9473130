package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/catalog"
	"github.com/clearform/sf86gen/pkg/field"
	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
)

// WalkerOption customises a Walker.
type WalkerOption func(*Walker)

// WithCatalog lets the walker offer the form's real dropdown options and
// field labels instead of bare key names.
func WithCatalog(cat *catalog.Catalog) WalkerOption {
	return func(w *Walker) {
		w.catalog = cat
	}
}

// WithLogger injects a zap logger.
func WithLogger(logger *zap.Logger) WalkerOption {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Walker asks for a section's answers field by field and writes them into a
// document.
type Walker struct {
	resolver *fieldmap.Resolver
	driver   PromptDriver
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

// NewWalker builds a walker over a resolver's mapping tables.
func NewWalker(resolver *fieldmap.Resolver, driver PromptDriver, options ...WalkerOption) *Walker {
	w := &Walker{resolver: resolver, driver: driver, logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// FillSection prompts through every group of one section. Repeated groups
// loop until the user declines another entry or the form runs out of room.
// Empty answers leave the document untouched.
func (w *Walker) FillSection(ctx context.Context, doc *formdata.Document, sectionKey string) error {
	table, ok := w.resolver.Table(sectionKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sectionKey)
	}

	if table.Title != "" {
		if err := w.driver.Info(ctx, fmt.Sprintf("Section %d: %s", table.Section, table.Title)); err != nil {
			return err
		}
	}

	for _, group := range table.Groups {
		if group.Entries <= 1 {
			if err := w.fillEntry(ctx, doc, table.Key, group, -1); err != nil {
				return err
			}
			continue
		}
		for entry := 0; entry < group.Entries; entry++ {
			if err := w.driver.Info(ctx, fmt.Sprintf("%s, entry %d of up to %d", group.Key, entry+1, group.Entries)); err != nil {
				return err
			}
			if err := w.fillEntry(ctx, doc, table.Key, group, entry); err != nil {
				return err
			}
			if entry == group.Entries-1 {
				break
			}
			more, err := w.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Add another %s entry?", group.Key),
			})
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
	}
	return nil
}

func (w *Walker) fillEntry(ctx context.Context, doc *formdata.Document, sectionKey string, group fieldmap.Group, entry int) error {
	for _, binding := range group.Fields {
		path := fieldmap.Path{Section: sectionKey, Group: group.Key, Entry: entry, Field: binding.Field}.String()
		answer, err := w.ask(ctx, path, binding)
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) == "" {
			continue
		}
		if err := doc.Set(path, answer); err != nil {
			return fmt.Errorf("prompt: record %s: %w", path, err)
		}
	}
	return nil
}

func (w *Walker) ask(ctx context.Context, path string, binding fieldmap.Binding) (string, error) {
	message := w.label(path, binding)

	switch binding.Kind {
	case field.KindRadio, field.KindCheckbox:
		yes, err := w.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return "", err
		}
		if yes {
			return "YES", nil
		}
		return "NO", nil

	case field.KindTextarea:
		return w.driver.TextArea(ctx, TextAreaConfig{Message: message})

	case field.KindDate:
		return w.driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      "YYYY-MM or YYYY-MM-DD",
			Validator: validDate,
		})

	case field.KindDropdown, field.KindCountry, field.KindState:
		options := w.options(path)
		if len(options) == 0 {
			return w.driver.Input(ctx, InputConfig{Message: message})
		}
		idx, err := w.driver.Select(ctx, SelectConfig{Message: message, Options: options, PageSize: 10})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", nil
		}
		return options[idx], nil

	default:
		return w.driver.Input(ctx, InputConfig{Message: message})
	}
}

// label prefers the catalog's printed label over the binding's key name.
func (w *Walker) label(path string, binding fieldmap.Binding) string {
	if w.catalog != nil {
		if name, err := w.resolver.Resolve(path); err == nil {
			if def, ok := w.catalog.Lookup(name); ok && def.Label != "" {
				return def.Label
			}
		}
	}
	return binding.Field
}

func (w *Walker) options(path string) []string {
	if w.catalog == nil {
		return nil
	}
	name, err := w.resolver.Resolve(path)
	if err != nil {
		w.logger.Debug("prompt: path has no binding", zap.String("path", path))
		return nil
	}
	def, ok := w.catalog.Lookup(name)
	if !ok {
		return nil
	}
	return def.Options
}

var dateLayouts = []string{"2006-01-02", "2006-01", "01/2006", "2006"}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return fmt.Errorf("enter a date like 2015-06 or 2015-06-30")
}
