package form

import (
	"errors"
	"sync"
	"time"

	"github.com/Alias1177/heartform/internal/endpoint"
	"github.com/Alias1177/heartform/models"
)

// ErrAlreadyMounted is returned by a second Mount
var ErrAlreadyMounted = errors.New("controller already mounted")

// Controller binds the orchestrator and one validator listener per numeric
// input to a form.
type Controller struct {
	form         *Form
	orchestrator *Orchestrator
	validator    *Validator

	mu      sync.Mutex
	mounted bool
	detach  []func()
}

// Options configure a Controller
type Options struct {
	Origin     string
	Resolver   endpoint.Resolver
	ClearDelay time.Duration
}

// NewController creates an unmounted controller
func NewController(form *Form, client models.PredictionClient, opts Options) *Controller {
	return &Controller{
		form:         form,
		orchestrator: NewOrchestrator(form, client, opts.Resolver, opts.Origin),
		validator:    NewValidator(form, opts.ClearDelay),
	}
}

// Mount registers the handlers. It must be called once.
func (c *Controller) Mount() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mounted {
		return ErrAlreadyMounted
	}

	c.detach = append(c.detach, c.form.OnSubmit(c.orchestrator.Handler()))
	for _, el := range c.form.Elements() {
		if el.Type != TypeNumber || el.Name == "" {
			continue
		}
		c.detach = append(c.detach, c.form.OnInput(el.Name, c.validator.Validate))
	}
	c.mounted = true
	return nil
}

// Unmount removes the handlers and cancels pending marker clears
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}
	for _, fn := range c.detach {
		fn()
	}
	c.detach = nil
	c.validator.Stop()
	c.mounted = false
}

// Form returns the bound form
func (c *Controller) Form() *Form {
	return c.form
}

// Orchestrator returns the submit handler
func (c *Controller) Orchestrator() *Orchestrator {
	return c.orchestrator
}

// Validator returns the field validator
func (c *Controller) Validator() *Validator {
	return c.validator
}
