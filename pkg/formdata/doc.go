// Package formdata holds in-progress applicant answers as a tree addressed
// by the same logical paths the mapping tables use. The JSON shape mirrors
// the per-section document the original browser client persisted: sections
// hold groups, repeated groups hold an entries array, and leaves are either
// bare values or {"value": ...} wrappers carrying field metadata.
//
// All string input is sanitised on the way in; the filled PDF must never
// carry markup pasted into a free-text answer.
package formdata
