package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"numbersense/classify-api/common/config"
	"numbersense/classify-api/common/logging"
	"numbersense/classify-api/common/models"
	"numbersense/classify-api/common/numbers"
)

// @title       Number Classification API
// @version     1.0
// @description Classifies integers and returns a fun fact about them
// @BasePath    /

const serviceName = "classify-api"

var cfgFile string

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Number classification API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.classify-api/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newServeCmd(), newClassifyCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <number>",
		Short: "Classify a single number and print the JSON result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc, _ := newService(cfg, nil)
			ctx := logger.WithContext(cmd.Context())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			result, err := svc.Classify(ctx, args[0])
			if err != nil {
				if errors.Is(err, numbers.ErrInvalidInput) {
					_ = enc.Encode(models.ErrorResponse{Number: args[0], Error: true, Message: invalidInputMessage})
				}
				return err
			}
			return enc.Encode(result)
		},
	}
	cmd.Flags().Bool("offline", false, "skip the trivia service lookup")
	_ = viper.BindPFlag("trivia.offline", cmd.Flags().Lookup("offline"))
	return cmd
}

// loadConfig reads the configuration and points the global logger at logOut.
func loadConfig(logOut io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	if viper.GetBool("trivia.offline") {
		cfg.Trivia.Enabled = false
	}
	logger := logging.Setup(logOut, cfg.Log.Level, cfg.Log.Format)
	return cfg, logger, nil
}

func runServe(ctx context.Context, logOut io.Writer) error {
	cfg, _, err := loadConfig(logOut)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	svc, registry := newService(cfg, &http.Client{})
	var gatherer prometheus.Gatherer
	if registry != nil {
		gatherer = registry
	}
	srv := newHTTPServer(cfg.Server, newRouter(cfg, svc, gatherer))

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Bool("trivia", cfg.Trivia.Enabled).
			Bool("parity_template", cfg.Facts.ParityTemplate).
			Msg("Starting classify API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.Server.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			log.Info().Msg("Shutting down classify API server...")
			return srv.Shutdown(ctx)
		},
	})

	if code := <-wait; code != 0 {
		return fmt.Errorf("shutdown exited with code %d", code)
	}
	log.Info().Msg("Classify API server exited")
	return nil
}
