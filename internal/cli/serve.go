package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/campshare/campshare/internal/config"
	"github.com/campshare/campshare/internal/geocode"
	"github.com/campshare/campshare/internal/imagestore"
	"github.com/campshare/campshare/internal/logging"
	"github.com/campshare/campshare/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  "Start the CampShare HTTP server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from CS_HTTP_PORT)")

	return cmd
}

func runServe(port int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	geocoder, err := geocode.NewClient(cfg.Geocoder.URL, cfg.Geocoder.Key)
	if err != nil {
		return err
	}

	images, err := imagestore.NewMinioStore(
		cfg.Images.Endpoint, cfg.Images.AccessKey, cfg.Images.SecretKey,
		cfg.Images.Bucket, cfg.Images.UseSSL,
	)
	if err != nil {
		return err
	}

	srv, err := web.NewServer(database, geocoder, images, cfg.Server.BaseURL)
	if err != nil {
		return err
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(srv))
}
