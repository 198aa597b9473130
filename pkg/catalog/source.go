package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceKind enumerates the supported catalog source strategies.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where a catalog document lives. The zero value is not a
// usable source; build one with the SourceFrom* constructors.
type Source struct {
	kind     SourceKind
	location string
}

// Kind reports the loading strategy for the source.
func (s Source) Kind() SourceKind { return s.kind }

// Location is the path, filesystem name, or URL the source points at.
func (s Source) Location() string { return s.location }

// SourceFromFile returns a Source pointing to an on-disk document.
func SourceFromFile(path string) Source {
	return Source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source identifying a document inside the loader's
// filesystem.
func SourceFromFS(name string) Source {
	return Source{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source for an HTTP endpoint, rejecting unparsable
// URLs up front.
func SourceFromURL(raw string) (Source, error) {
	if raw == "" {
		return Source{}, fmt.Errorf("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return Source{}, fmt.Errorf("catalog: invalid URL %q: %w", raw, err)
	}
	return Source{kind: SourceKindURL, location: raw}, nil
}
