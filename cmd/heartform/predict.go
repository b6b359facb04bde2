package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alias1177/heartform/internal/endpoint"
	"github.com/Alias1177/heartform/internal/form"
	"github.com/Alias1177/heartform/internal/ui"
	"github.com/Alias1177/heartform/models"
	"github.com/spf13/cobra"
)

var errPredictionFailed = errors.New("prediction failed")

func newPredictCmd(a *app) *cobra.Command {
	values := make(map[string]*string, len(models.FieldNames))
	var wait bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Submit the form once with values from flags",
		Long: `Fills the form from flags, submits it once and prints the result panel.
Fields left out are sent empty, exactly as an empty input would be.

Example:
  heartform predict --age 63 --sex 1 --cp 3 --trestbps 145 --chol 233 --fbs 1 \
    --restecg 0 --thalach 150 --exang 0 --oldpeak 2.3 --slope 0 --ca 0 --thal 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := a.client()

			f, ctrl, err := a.mount(client)
			if err != nil {
				return err
			}
			defer ctrl.Unmount()

			for _, name := range models.FieldNames {
				if !cmd.Flags().Changed(name) {
					continue
				}
				if err := f.SetValue(name, *values[name]); err != nil {
					return err
				}
			}
			for _, el := range f.Elements() {
				if el.Invalid {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s=%q is outside the expected range\n", el.Name, el.Value)
				}
			}

			if wait {
				if err := a.waitForBackend(cmd, client); err != nil {
					return err
				}
			}

			f.Submit(ctx)
			panel := f.Result()
			fmt.Fprintln(cmd.OutOrStdout(), formatPanel(panel))
			if panel.IsError() {
				return errPredictionFailed
			}
			return nil
		},
	}

	for _, name := range models.FieldNames {
		values[name] = cmd.Flags().String(name, "", ui.Labels[name])
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the backend to come up before submitting")
	return cmd
}

// backendWaiter is the part of the prediction client used by ping and --wait
type backendWaiter interface {
	WaitReady(ctx context.Context, baseURL string, maxWait time.Duration) error
}

func (a *app) waitForBackend(cmd *cobra.Command, client backendWaiter) error {
	resolver, err := a.resolver()
	if err != nil {
		return err
	}
	target, err := resolver.Target(a.origin)
	if err != nil {
		return err
	}
	root, err := endpoint.Root(target)
	if err != nil {
		return err
	}

	if err := client.WaitReady(cmd.Context(), root, 0); err != nil {
		return fmt.Errorf("backend at %s not ready: %w", root, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "backend ready at %s\n", root)
	return nil
}

// formatPanel renders the result panel as plain text
func formatPanel(p form.Panel) string {
	var sb strings.Builder
	sb.WriteString("[" + string(p.Class) + "] ")
	if g := ui.Glyph(p.Icon); g != "" {
		sb.WriteString(g + " ")
	}
	sb.WriteString(p.Headline)
	if p.Detail != "" {
		sb.WriteString("\n" + p.Detail)
	}
	if p.Advice != "" {
		sb.WriteString("\n♥ " + p.Advice)
	}
	return sb.String()
}
