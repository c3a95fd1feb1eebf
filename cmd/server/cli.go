// Command line of Callboard: serving is the default, version is the only subcommand.

package main

import (
	"Callboard/internal/broadcast"
	"Callboard/internal/config"
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/pkg/cleanup"
	"Callboard/pkg/log"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile, port string

	root := &cobra.Command{
		Use:           "callboard",
		Short:         "Relay voice-agent call events to live dashboards",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgerr := config.Load(envFile)
			if cfgerr != nil {
				return cfgerr
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cfg)
		},
	}
	root.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment, missing is fine")
	root.Flags().StringVar(&port, "port", "", "listen port, overrides PORT")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of Callboard",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "callboard v%s\n", Version)
		},
	})
	return root
}

// serve runs Callboard until a termination signal. Only a failure to bind the port is returned.
func serve(cfg entity.Config) error {
	logger := log.New(cfg.Env, Version)
	logger.Info().Msgf("Welcome to Callboard: v%s", Version)
	logger.Info().Msgf("Callboard Environment: %s", cfg.Env)
	for _, warning := range config.Warnings(cfg) {
		logger.Warn().Msg(warning)
	}

	// This is the preferred mode used by gin server in DEV environment.
	if cfg.Env == "DEV" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	collector := metrics.NewCollector()
	hub := broadcast.NewService(logger, collector, cfg.PingInterval)

	srv := &http.Server{
		Addr:              cfg.Addr + ":" + cfg.Port,
		Handler:           NewServer(cfg, hub, collector, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, lsterr := net.Listen("tcp", srv.Addr)
	if lsterr != nil {
		logger.Error().Err(lsterr).Str("addr", srv.Addr).Msg("Couldn't bind the listening port.")
		return lsterr
	}
	logger.Info().Str("addr", listener.Addr().String()).Msg("Callboard is listening")

	// Serve is a blocking operation, putting it a goroutine
	go func() {
		if srverr := srv.Serve(listener); srverr != nil && !errors.Is(srverr, http.ErrServerClosed) {
			logger.Fatal().Err(srverr).Msg("HTTP server stopped unexpectedly.")
		}
	}()

	// Graceful shutdown of Callboard triggered due to system interruptions.
	wait := cleanup.GracefulShutdown(context.Background(), logger, cfg.ShutdownTimeout, map[string]cleanup.Operation{
		"Broadcaster": hub.Close,
		"Gin":         srv.Shutdown,
	})
	<-wait
	return nil
}
