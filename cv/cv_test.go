package cv

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/folio/config"
)

// minimalPDF builds a valid PDF with the given number of blank pages.
func minimalPDF(pages int) []byte {
	var b bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	b.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := ""
	for i := 0; i < pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))
	for i := 0; i < pages; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return b.Bytes()
}

func TestHTTPFetcher(t *testing.T) {
	payload := minimalPDF(1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cv.pdf" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(payload)
	}))
	defer srv.Close()

	t.Run("ok with progress", func(t *testing.T) {
		var seen bytes.Buffer
		var total int64
		f := &HTTPFetcher{URL: srv.URL + "/cv.pdf", Progress: func(n int64) io.Writer {
			total = n
			return &seen
		}}
		data, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, payload, data)
		assert.Equal(t, payload, seen.Bytes())
		assert.Equal(t, int64(len(payload)), total)
	})

	t.Run("bad status", func(t *testing.T) {
		f := &HTTPFetcher{URL: srv.URL + "/missing"}
		_, err := f.Fetch(context.Background())
		assert.ErrorContains(t, err, "404")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := (&HTTPFetcher{URL: srv.URL + "/cv.pdf"}).Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("default client is bounded", func(t *testing.T) {
		assert.Positive(t, DefaultClient.Timeout)
		assert.NotSame(t, http.DefaultClient, DefaultClient)
	})
}

type staticFetcher []byte

func (s staticFetcher) Fetch(context.Context) ([]byte, error) { return s, nil }

func TestDownload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")

	path, err := Download(context.Background(), staticFetcher("%PDF-data"), dir, "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cv.pdf"), path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-data", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is cleaned up")

	_, err = Download(context.Background(), staticFetcher(nil), dir, "empty.pdf")
	assert.ErrorIs(t, err, ErrEmptyPayload)
	assert.NoFileExists(t, filepath.Join(dir, "empty.pdf"))
}

func TestFileFetcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0644))

	data, err := (&FileFetcher{Path: path}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))

	_, err = (&FileFetcher{Path: path + ".missing"}).Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFetcher(t *testing.T) {
	f, err := NewFetcher(config.CVConfig{URL: "http://x/cv.pdf", Path: "/tmp/cv.pdf"})
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)

	f, err = NewFetcher(config.CVConfig{Path: "/tmp/cv.pdf"})
	require.NoError(t, err)
	assert.IsType(t, &FileFetcher{}, f)

	_, err = NewFetcher(config.CVConfig{})
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestInspect(t *testing.T) {
	info, err := Inspect(minimalPDF(2))
	require.NoError(t, err)
	assert.Equal(t, 2, info.Pages)

	_, err = Inspect([]byte("not a pdf"))
	assert.Error(t, err)
}
