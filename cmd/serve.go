package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/server"
)

// portEnv overrides the configured serve port.
const portEnv = "FOLIO_PORT"

// loadEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolvePort picks the listen port: flag, then FOLIO_PORT, then config.
func resolvePort(cfg config.ServeConfig, flag int) (int, error) {
	if flag > 0 {
		return flag, nil
	}
	if v := os.Getenv(portEnv); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return 0, fmt.Errorf("%s must be a port number, got %q", portEnv, v)
		}
		return p, nil
	}
	return cfg.Port, nil
}

// serveOptions derives the router options from config. The served CV is the
// serve-specific path, falling back to the local CV source.
func serveOptions(cfg *config.Config, version string) server.Options {
	cvPath := cfg.Serve.CVPath
	if cvPath == "" {
		cvPath = cfg.CV.Path
	}
	return server.Options{CVPath: cvPath, CVFileName: cfg.CV.FileName, Version: version}
}

// NewServeCmd returns `folio serve`, which publishes the CV and content over
// HTTP until interrupted.
func NewServeCmd(version string) *cobra.Command {
	var (
		portFlag    int
		envFlag     string
		contentFlag string
	)
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the CV and content document over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()

			if err := loadEnv(envFlag); err != nil {
				return err
			}
			port, err := resolvePort(cfg.Serve, portFlag)
			if err != nil {
				return err
			}
			data, _ := LoadContentOrDefault(cfg, contentFlag)

			gin.SetMode(gin.ReleaseMode)
			router := server.NewRouter(data, serveOptions(cfg, version))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", port)
			fmt.Fprintf(cmd.OutOrStdout(), "serving on http://localhost%s\n", addr)
			log.InfoLog.Printf("serve: content=%q cv=%q", cfg.ContentPath, serveOptions(cfg, version).CVPath)
			return server.Serve(ctx, addr, router)
		},
	}
	serveCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "port to listen on (default: $FOLIO_PORT or serve.port)")
	serveCmd.Flags().StringVar(&envFlag, "env-file", ".env", "dotenv file to load before starting")
	serveCmd.Flags().StringVar(&contentFlag, "content", "", "content document to serve (default: content_path)")
	return serveCmd
}

