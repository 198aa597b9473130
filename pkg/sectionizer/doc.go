// Package sectionizer infers which SF-86 section a raw AcroForm field name
// belongs to. The PDF's subform names are the primary signal
// (form1[0].Section16_3[0]... clearly belongs to section 16) but several
// blocks share one subform across sections (Sections1-6, Sections7-9) and a
// few families use lowercase or escaped-dot names, so classification runs an
// ordered rule list with keyword refinements and a page-range fallback.
package sectionizer
