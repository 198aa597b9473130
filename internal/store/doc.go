// Package store persists in-progress applicant documents as JSON drafts in a
// local sqlite database, the server-side counterpart of the browser client's
// IndexedDB autosave.
package store
