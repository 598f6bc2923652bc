// Package server publishes the CV and the content document over HTTP so a
// remote folio can download them.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/log"
)

// Options configure the routes.
type Options struct {
	// CVPath is the PDF served at /cv.pdf. Empty disables the route.
	CVPath string
	// CVFileName is the name offered to browsers in Content-Disposition.
	CVFileName string
	Version    string
}

// NewRouter builds the gin engine.
func NewRouter(data *content.Data, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(log.InfoLog.Writer()), gin.RecoveryWithWriter(log.ErrorLog.Writer()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": opts.Version})
	})

	r.GET("/content.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, data)
	})

	r.GET("/cv.pdf", func(c *gin.Context) {
		if opts.CVPath == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "no cv configured"})
			return
		}
		if _, err := os.Stat(opts.CVPath); err != nil {
			log.WarningLog.Printf("cv not available at %s: %v", opts.CVPath, err)
			c.JSON(http.StatusNotFound, gin.H{"error": "cv not available"})
			return
		}
		name := opts.CVFileName
		if name == "" {
			name = filepath.Base(opts.CVPath)
		}
		c.FileAttachment(opts.CVPath, name)
	})

	return r
}

// Serve runs handler on addr until ctx is cancelled, then shuts down.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoLog.Printf("serving on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
