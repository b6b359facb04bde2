package main

import (
	"io"
	"os"

	"github.com/Alias1177/heartform/internal/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	// the terminal belongs to the form, so logs go to a file
	var w io.Writer = io.Discard
	if a.cfg.LogFile != "" {
		file, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer file.Close()
			w = file
		}
	}
	setupLogger(a.cfg.LogLevel, w)

	f, ctrl, err := a.mount(a.client())
	if err != nil {
		return err
	}
	defer ctrl.Unmount()

	var target string
	if resolver, err := a.resolver(); err == nil {
		target, _ = resolver.Target(a.origin)
	}

	log.Info().Str("origin", a.origin).Str("endpoint", target).Msg("Starting interactive form")
	return ui.Run(cmd.Context(), f, ui.Options{Endpoint: target})
}
