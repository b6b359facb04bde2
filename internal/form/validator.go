package form

import (
	"math"
	"sync"
	"time"

	"github.com/Alias1177/heartform/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClearDelay is how long an error marker stays visible
const DefaultClearDelay = 2000 * time.Millisecond

// fieldState tracks the pending marker clear of one field
type fieldState struct {
	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// Validator flags out-of-range numeric inputs. It only toggles the error
// marker; it never blocks submission or touches the payload.
type Validator struct {
	form   *Form
	delay  time.Duration
	logger zerolog.Logger

	mu     sync.Mutex
	fields map[string]*fieldState
}

// NewValidator creates a validator for form. A zero delay uses DefaultClearDelay.
func NewValidator(form *Form, delay time.Duration) *Validator {
	if delay <= 0 {
		delay = DefaultClearDelay
	}
	return &Validator{
		form:   form,
		delay:  delay,
		logger: log.With().Str("component", "validator").Logger(),
		fields: make(map[string]*fieldState),
	}
}

func (v *Validator) field(name string) *fieldState {
	v.mu.Lock()
	defer v.mu.Unlock()
	fs, ok := v.fields[name]
	if !ok {
		fs = &fieldState{}
		v.fields[name] = fs
	}
	return fs
}

// Validate re-checks the current value of name. Any pending clear for the
// field is superseded. A non-numeric value keeps its marker; an out-of-range
// number is unmarked again after the clear delay.
func (v *Validator) Validate(name string) {
	fs := v.field(name)
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.cancel()
	v.form.SetInvalid(name, false)

	el, ok := v.form.Element(name)
	if !ok {
		return
	}

	value := models.ParseFloat(el.Value)
	if math.IsNaN(value) {
		// stays marked until the next edit
		v.logger.Debug().Str("field", name).Str("value", el.Value).Msg("Field is not a number")
		v.form.SetInvalid(name, true)
		return
	}
	if InRange(name, value) {
		return
	}

	v.logger.Debug().Str("field", name).Str("value", el.Value).Msg("Field out of range")
	v.form.SetInvalid(name, true)

	gen := fs.gen
	fs.timer = time.AfterFunc(v.delay, func() {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		if fs.gen != gen {
			return
		}
		fs.timer = nil
		v.form.SetInvalid(name, false)
	})
}

// cancel stops the pending clear. Callers hold fs.mu.
func (fs *fieldState) cancel() {
	fs.gen++
	if fs.timer != nil {
		fs.timer.Stop()
		fs.timer = nil
	}
}

// Stop cancels every pending clear
func (v *Validator) Stop() {
	v.mu.Lock()
	fields := make([]*fieldState, 0, len(v.fields))
	for _, fs := range v.fields {
		fields = append(fields, fs)
	}
	v.mu.Unlock()

	for _, fs := range fields {
		fs.mu.Lock()
		fs.cancel()
		fs.mu.Unlock()
	}
}

// Pending reports whether a clear is scheduled for name
func (v *Validator) Pending(name string) bool {
	fs := v.field(name)
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.timer != nil
}
