// Package field defines the generic Field wrapper that pairs an application
// value with the metadata of the PDF form field it fills: the full AcroForm
// name, the numeric object id, the printed label, and the widget kind. Section
// data structures are built from these wrappers so a value never loses track
// of its destination in the PDF.
package field
