// Package fill turns an applicant document into a concrete AcroForm fill.
// A Planner resolves every document leaf to its PDF field name and export
// value; a Filler applies the resulting plan to the template PDF. The PDF
// engine sits behind the Filler interface so the planner and the command
// layer stay testable without a real form.
package fill
