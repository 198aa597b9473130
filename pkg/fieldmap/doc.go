// Package fieldmap resolves logical form-data paths such as
// section13.nonFederalEmployment.entries[0].employerName to the exact
// AcroForm field names fixed by the government PDF, for example
// form1[0].section13_2[0].TextField11[0].
//
// The PDF encodes repeated entries in three different ways, all of which the
// mapping tables express declaratively:
//
//   - subform-per-entry: each entry gets its own subform, e.g. Section11[0],
//     Section11-2[0], Section11-3[0], Section11-4[0];
//   - widget-index ranges: entries share one subform and a widget family is
//     partitioned by index stride, e.g. the three Section16_3 persons occupy
//     TextField11[0..10], [11..21], and [22..32];
//   - widget-index maps: single-entry subsections address widgets by literal
//     index, e.g. the citizenship subsections inside Section9\.1-9\.4[0].
//
// A Resolver built from tables answers both directions: logical path to PDF
// name and PDF name back to logical path.
package fieldmap
