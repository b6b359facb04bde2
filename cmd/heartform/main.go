package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alias1177/heartform/internal/config"
	"github.com/Alias1177/heartform/internal/endpoint"
	"github.com/Alias1177/heartform/internal/form"
	"github.com/Alias1177/heartform/internal/predictor"
	"github.com/Alias1177/heartform/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	setupLogger("info", zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	setupLogger(cfg.LogLevel, zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// app carries the resolved settings shared by every subcommand
type app struct {
	cfg        *models.Config
	origin     string
	backendURL string
}

func newRootCmd(cfg *models.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "heartform",
		Short: "Heart disease risk check form",
		Long: `heartform collects the 13 clinical inputs of the heart disease model,
sends them to the prediction service and shows the risk classification.

Run without a subcommand for the interactive form.`,
		SilenceUsage: true,
		RunE:         a.runTUI,
	}

	root.PersistentFlags().StringVar(&a.origin, "origin", cfg.PageOrigin,
		`origin the form is served from ("null" for a local file)`)
	root.PersistentFlags().StringVar(&a.backendURL, "backend-url", cfg.BackendURL,
		"prediction URL of the standalone backend")

	root.AddCommand(
		&cobra.Command{Use: "tui", Short: "Open the interactive form", RunE: a.runTUI},
		newPredictCmd(a),
		newResolveCmd(a),
		newPingCmd(a),
	)
	return root
}

func (a *app) resolver() (endpoint.Resolver, error) {
	return endpoint.NewResolver(a.backendURL)
}

// mount builds a form with its controller attached
func (a *app) mount(client models.PredictionClient) (*form.Form, *form.Controller, error) {
	resolver, err := a.resolver()
	if err != nil {
		return nil, nil, err
	}

	f := form.NewHeartForm()
	ctrl := form.NewController(f, client, form.Options{
		Origin:     a.origin,
		Resolver:   resolver,
		ClearDelay: a.cfg.ValidationClearDelay,
	})
	if err := ctrl.Mount(); err != nil {
		return nil, nil, fmt.Errorf("mounting form controller: %w", err)
	}
	return f, ctrl, nil
}

func (a *app) client() *predictor.Client {
	return predictor.NewClientFromConfig(a.cfg)
}
