package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoaderOptions configures how a Loader resolves sources. The defaults keep
// the loader offline; HTTP must be enabled explicitly.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; nil means the
	// operating system.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour. Nil means
	// HTTP sources are disabled unless AllowHTTPFallback is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote catalog documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// Loader fetches and decodes catalog documents from files, fs.FS entries, or
// HTTP endpoints.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	var opts LoaderOptions
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}

	var httpClient *http.Client
	switch {
	case opts.HTTPClient != nil:
		clone := *opts.HTTPClient
		if opts.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = opts.RequestTimeout
		}
		httpClient = &clone
	case opts.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: opts.RequestTimeout}
	}

	return &Loader{
		fs:        opts.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   opts.RequestTimeout,
	}
}

// Load fetches a single section document from the provided source.
func (l *Loader) Load(ctx context.Context, src Source) (SectionDocument, error) {
	if src.Kind() == "" {
		return SectionDocument{}, errors.New("catalog loader: empty source")
	}
	if err := ctx.Err(); err != nil {
		return SectionDocument{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if l.fs == nil {
			return SectionDocument{}, errors.New("catalog loader: fs source requires a filesystem")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	case SourceKindURL:
		if !l.allowHTTP {
			return SectionDocument{}, errors.New("catalog loader: http support disabled")
		}
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("catalog loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return SectionDocument{}, fmt.Errorf("catalog loader: read %s: %w", src.Location(), err)
	}

	doc, err := decode(src.Location(), data)
	if err != nil {
		return SectionDocument{}, err
	}
	return doc, nil
}

// LoadAll merges every supplied source into a single catalog.
func (l *Loader) LoadAll(ctx context.Context, sources ...Source) (*Catalog, error) {
	cat := New()
	for _, src := range sources {
		doc, err := l.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		if err := cat.Add(doc); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// LoadDir loads every section document (section-*.json, section-*.yaml) from
// the configured filesystem rooted at dir.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	fsys := l.fs
	if fsys == nil {
		fsys = os.DirFS(dir)
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("catalog loader: read dir: %w", err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "section-") {
			continue
		}
		switch path.Ext(name) {
		case ".json", ".yaml", ".yml":
			sources = append(sources, SourceFromFS(path.Join(dir, name)))
		}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("catalog loader: no section documents found")
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Location() < sources[j].Location()
	})

	scoped := &Loader{fs: fsys, http: l.http, allowHTTP: l.allowHTTP, timeout: l.timeout}
	return scoped.LoadAll(ctx, sources...)
}

func (l *Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func decode(location string, data []byte) (SectionDocument, error) {
	var doc SectionDocument
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return SectionDocument{}, fmt.Errorf("catalog loader: decode yaml %s: %w", location, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return SectionDocument{}, fmt.Errorf("catalog loader: decode json %s: %w", location, err)
		}
	}
	if len(doc.Fields) == 0 {
		return SectionDocument{}, fmt.Errorf("catalog loader: %s contains no fields", location)
	}
	return doc, nil
}
