// Package cv fetches the owner's CV and stores it on disk. The payload is
// opaque to the page; only the headless command looks inside it.
package cv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kastheco/folio/config"
)

var (
	// ErrEmptyPayload is returned when a fetch succeeds with no bytes.
	ErrEmptyPayload = errors.New("cv payload is empty")
	// ErrNoSource is returned when neither a URL nor a path is configured.
	ErrNoSource = errors.New("no cv source configured")
)

// DefaultClient is used by HTTPFetcher when no client is given. Its timeout
// bounds a transfer that stalls after the headers arrive.
var DefaultClient = &http.Client{Timeout: 60 * time.Second}

// Fetcher returns the CV bytes.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher downloads the CV from URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
	// Progress, when set, is given the response length (-1 if unknown) and
	// returns a writer that receives a copy of the body as it arrives.
	Progress func(total int64) io.Writer
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build cv request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch cv: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch cv: unexpected status %s", resp.Status)
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	if f.Progress != nil {
		w = io.MultiWriter(&buf, f.Progress(resp.ContentLength))
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return nil, fmt.Errorf("read cv body: %w", err)
	}
	return buf.Bytes(), nil
}

// FileFetcher reads the CV from a local file.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read cv file: %w", err)
	}
	return data, nil
}

// NewFetcher picks a fetcher from the configuration. A URL wins over a path.
func NewFetcher(cfg config.CVConfig) (Fetcher, error) {
	switch {
	case cfg.URL != "":
		return &HTTPFetcher{URL: cfg.URL}, nil
	case cfg.Path != "":
		return &FileFetcher{Path: cfg.Path}, nil
	}
	return nil, ErrNoSource
}

// Download fetches the CV and writes it to dir/name, returning the path.
func Download(ctx context.Context, f Fetcher, dir, name string) (string, error) {
	data, err := f.Fetch(ctx)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp cv file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write cv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close cv: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move cv into place: %w", err)
	}
	return path, nil
}

// Info summarises a PDF payload.
type Info struct {
	Pages int
	Bytes int
}

// Inspect parses data as a PDF.
func Inspect(data []byte) (Info, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return Info{}, fmt.Errorf("pdfcpu read: %w", err)
	}
	return Info{Pages: ctx.PageCount, Bytes: len(data)}, nil
}
