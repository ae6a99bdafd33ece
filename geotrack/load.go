package geotrack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bgraf/kmroute/config"
)

// Loader fetches track resources and parses them by file extension.
type Loader struct {
	// BaseDirectory resolves relative file paths. Empty means the working directory.
	BaseDirectory  string
	GPXExtensions  []string
	NMEAExtensions []string
	Client         *http.Client
}

// NewLoader returns a loader configured from the current settings.
func NewLoader() *Loader {
	return &Loader{
		BaseDirectory:  config.RoutesDirectory(),
		GPXExtensions:  config.GPXExtensions(),
		NMEAExtensions: config.NMEAExtensions(),
		Client:         &http.Client{Timeout: config.FetchTimeout()},
	}
}

// LoadTrack loads resource with a loader built from the current settings.
func LoadTrack(ctx context.Context, resource string) (Track, error) {
	return NewLoader().Load(ctx, resource)
}

// Load fetches resource, either an http(s) URL or a file path, and parses it.
// Failures are reported as *LoadError.
func (l *Loader) Load(ctx context.Context, resource string) (Track, error) {
	content, ext, err := l.fetch(ctx, resource)
	if err != nil {
		return nil, unavailable(resource, err)
	}

	var points Track
	if slices.Contains(l.GPXExtensions, ext) {
		points, err = ParseGPX(content)
	} else if slices.Contains(l.NMEAExtensions, ext) {
		points, err = ParseNMEA(bytes.NewReader(content))
	} else {
		err = fmt.Errorf("unknown track extension '%s'", ext)
	}

	if err != nil {
		return nil, malformed(resource, err)
	}

	return points, nil
}

// Path resolves a file resource against the base directory. URLs are returned
// unchanged.
func (l *Loader) Path(resource string) string {
	if IsURL(resource) || filepath.IsAbs(resource) || l.BaseDirectory == "" {
		return resource
	}
	return filepath.Join(l.BaseDirectory, resource)
}

func (l *Loader) fetch(ctx context.Context, resource string) ([]byte, string, error) {
	if IsURL(resource) {
		u, err := url.Parse(resource)
		if err != nil {
			return nil, "", err
		}

		content, err := l.fetchURL(ctx, u)
		return content, strings.ToLower(path.Ext(u.Path)), err
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	filePath := l.Path(resource)
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", err
	}

	return content, strings.ToLower(filepath.Ext(filePath)), nil
}

func (l *Loader) fetchURL(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", u.Redacted(), resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return content, nil
}

// IsURL reports whether resource is fetched over HTTP rather than read from disk.
func IsURL(resource string) bool {
	lower := strings.ToLower(resource)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
