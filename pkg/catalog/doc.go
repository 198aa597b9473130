// Package catalog loads and indexes the PDF field reference catalog: the
// fixed inventory of AcroForm fields embedded in the government SF-86 PDF.
// The catalog is stored as one document per section (JSON or YAML) listing
// every field's name, object id, widget type, label, page, and options. All
// mapping and coverage work downstream resolves against this inventory.
package catalog
