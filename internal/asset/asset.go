// Package asset retrieves diagram documents for (template, angle) pairs from
// bundled storage or a network location, behind one loader interface.
package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bodymap/internal/taxonomy"
)

// ErrNotFound indicates no diagram asset exists for the requested view.
var ErrNotFound = errors.New("diagram asset not found")

// Loader retrieves the raw diagram markup for one (template, angle) pair.
// Implementations must honor context cancellation: the view controller
// supersedes in-flight loads when the selection changes.
type Loader interface {
	LoadDiagram(ctx context.Context, template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) ([]byte, error)
}

// Key derives the deterministic asset name for one view.
func Key(template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) string {
	return fmt.Sprintf("%s_%s.svg", template, angle)
}

// FSLoader serves diagram assets from a filesystem, typically the embedded
// bundle or a local directory.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over the given filesystem.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// LoadDiagram reads the asset for one view.
func (l *FSLoader) LoadDiagram(ctx context.Context, template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, Key(template, angle))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, Key(template, angle))
		}
		return nil, fmt.Errorf("read diagram %s: %w", Key(template, angle), err)
	}
	return data, nil
}

// HTTPLoader fetches diagram assets from a remote diagram pack.
type HTTPLoader struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPLoader creates a loader rooted at the given base URL.
func NewHTTPLoader(base string, log zerolog.Logger) *HTTPLoader {
	return &HTTPLoader{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

// LoadDiagram fetches the asset for one view. A 404 maps to ErrNotFound so
// callers treat missing remote assets like missing bundled ones.
func (l *HTTPLoader) LoadDiagram(ctx context.Context, template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) ([]byte, error) {
	url := l.base + "/" + Key(template, angle)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build diagram request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch diagram %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch diagram %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read diagram body: %w", err)
	}
	l.log.Debug().Str("url", url).Int("bytes", len(data)).Msg("diagram fetched")
	return data, nil
}
