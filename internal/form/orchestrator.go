package form

import (
	"context"
	"fmt"

	"github.com/Alias1177/heartform/internal/endpoint"
	"github.com/Alias1177/heartform/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Orchestrator runs one submission end to end: lock the control, build the
// payload, call the service, render the outcome, restore the control.
type Orchestrator struct {
	form     *Form
	client   models.PredictionClient
	resolver endpoint.Resolver
	origin   string
	logger   zerolog.Logger
}

// NewOrchestrator creates an orchestrator for form. origin is the address the
// page was loaded from; resolver turns it into the prediction URL. A zero
// resolver means endpoint.Default.
func NewOrchestrator(form *Form, client models.PredictionClient, resolver endpoint.Resolver, origin string) *Orchestrator {
	if resolver.BackendURL == "" {
		resolver = endpoint.Default
	}
	return &Orchestrator{
		form:     form,
		client:   client,
		resolver: resolver,
		origin:   origin,
		logger:   log.With().Str("component", "orchestrator").Logger(),
	}
}

// Submit performs a single submission and returns the panel it rendered.
// The control is disabled only as a visual guard: concurrent calls are not
// rejected.
func (o *Orchestrator) Submit(ctx context.Context) Panel {
	o.form.SetSubmitControl(SubmitControl{Label: BusyLabel, Disabled: true, Busy: true})
	o.form.SetResult(ProcessingPanel())
	defer o.form.SetSubmitControl(SubmitControl{Label: SubmitLabel})

	payload := BuildPayload(o.form.Elements())

	panel, err := o.predict(ctx, payload)
	if err != nil {
		o.logger.Error().Err(err).Msg("Prediction request failed")
		panel = ConnectionErrorPanel()
	}

	o.form.SetResult(panel)
	return panel
}

func (o *Orchestrator) predict(ctx context.Context, payload models.SubmissionPayload) (panel Panel, err error) {
	// a panicking client is reported like a connection failure
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prediction client panic: %v", r)
		}
	}()

	target, err := o.resolver.Target(o.origin)
	if err != nil {
		return Panel{}, fmt.Errorf("resolving endpoint: %w", err)
	}

	o.logger.Debug().Str("origin", o.origin).Str("url", target).Int("fields", payload.Len()).Msg("Submitting form")

	outcome, err := o.client.Predict(ctx, target, payload)
	if err != nil {
		return Panel{}, err
	}

	switch res := outcome.(type) {
	case models.Prediction:
		o.logger.Info().Str("risk", string(res.Risk())).Float64("probability", res.Probability).Msg("Prediction rendered")
		return PredictionPanel(res), nil
	case models.Rejection:
		o.logger.Warn().Int("status", res.StatusCode).Str("error", res.Error).Msg("Prediction rejected")
		return RejectionPanel(res), nil
	default:
		return Panel{}, fmt.Errorf("unexpected outcome %T", outcome)
	}
}

// Handler adapts Submit to a form submit listener
func (o *Orchestrator) Handler() SubmitListener {
	return func(ctx context.Context) {
		o.Submit(ctx)
	}
}
