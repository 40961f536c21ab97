package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mtsuhr/coffee-shop-env/envserver"
	"github.com/ory/graceful"
	"github.com/spf13/cobra"
	"github.com/ugent-library/zaphttp"
	"github.com/ugent-library/zaphttp/zapchi"
)

func init() {
	rootCmd.AddCommand(serverCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "serve the environment to the front end",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEnvironment()
		if err != nil {
			return err
		}

		envServer, err := envserver.NewServer(envserver.Config{
			Environment: cfg,
			Logger:      logger,
			CacheSize:   config.CacheSize,
		})
		if err != nil {
			return err
		}

		mux := chi.NewMux()
		mux.Use(middleware.RequestID)
		mux.Use(middleware.RealIP)
		mux.Use(zaphttp.SetLogger(logger.Desugar(), zapchi.RequestID))
		mux.Use(middleware.RequestLogger(zapchi.LogFormatter()))
		mux.Use(middleware.Recoverer)

		envServer.Mount(mux)

		addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
		srv := graceful.WithDefaults(&http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		})

		logger.Infof("starting server at %s (production=%t, build %s)", addr, cfg.Production, envServer.BuildID())
		if err := graceful.Graceful(srv.ListenAndServe, srv.Shutdown); err != nil {
			return err
		}
		logger.Info("gracefully stopped server")
		return nil
	},
}
