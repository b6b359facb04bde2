// Package form models the heart check form as a small document (named
// elements, one submit control, one result panel) and binds the submit and
// validation handlers to it.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Alias1177/heartform/models"
)

// Element types
const (
	TypeNumber = "number"
	TypeSubmit = "submit"
)

// ErrUnknownElement is returned when no element has the requested name
var ErrUnknownElement = errors.New("unknown form element")

// Element is a single form control
type Element struct {
	Name    string
	Type    string
	Value   string
	Invalid bool // error marker
}

// SubmitControl is the button that triggers submission
type SubmitControl struct {
	Label    string
	Disabled bool
	Busy     bool
}

// State is a point-in-time copy of the whole form
type State struct {
	Elements []Element
	Submit   SubmitControl
	Result   Panel
}

// InputListener runs after an element's value changed
type InputListener func(name string)

// SubmitListener runs when the form is submitted
type SubmitListener func(ctx context.Context)

// Form holds the live state of the page. Listeners and watchers always run
// outside the lock so they may call back into the form.
type Form struct {
	mu       sync.Mutex
	elements []*Element
	submit   SubmitControl
	result   Panel

	nextID   int
	inputs   map[string]map[int]InputListener
	submits  map[int]SubmitListener
	watchers map[int]func()
}

// New creates a form from elements in document order
func New(elements ...Element) *Form {
	f := &Form{
		submit:   SubmitControl{Label: SubmitLabel},
		result:   IdlePanel(),
		inputs:   make(map[string]map[int]InputListener),
		submits:  make(map[int]SubmitListener),
		watchers: make(map[int]func()),
	}
	for _, el := range elements {
		el := el
		f.elements = append(f.elements, &el)
	}
	return f
}

// NewHeartForm creates the clinical form: one numeric input per field and a
// submit button.
func NewHeartForm() *Form {
	elements := make([]Element, 0, len(models.FieldNames)+1)
	for _, name := range models.FieldNames {
		elements = append(elements, Element{Name: name, Type: TypeNumber})
	}
	elements = append(elements, Element{Type: TypeSubmit})
	return New(elements...)
}

// Elements returns a copy of all elements in document order
func (f *Form) Elements() []Element {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyElements()
}

func (f *Form) copyElements() []Element {
	out := make([]Element, len(f.elements))
	for i, el := range f.elements {
		out[i] = *el
	}
	return out
}

// Element returns the first element called name
func (f *Form) Element(name string) (Element, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if el := f.find(name); el != nil {
		return *el, true
	}
	return Element{}, false
}

func (f *Form) find(name string) *Element {
	if name == "" {
		return nil
	}
	for _, el := range f.elements {
		if el.Name == name {
			return el
		}
	}
	return nil
}

// SetValue changes an element's value and fires its input listeners
func (f *Form) SetValue(name, value string) error {
	f.mu.Lock()
	el := f.find(name)
	if el == nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	el.Value = value
	listeners := make([]InputListener, 0, len(f.inputs[name]))
	for _, fn := range f.inputs[name] {
		listeners = append(listeners, fn)
	}
	f.mu.Unlock()

	f.notify()
	for _, fn := range listeners {
		fn(name)
	}
	return nil
}

// SetInvalid sets or clears the error marker of an element
func (f *Form) SetInvalid(name string, invalid bool) {
	f.mu.Lock()
	el := f.find(name)
	if el == nil || el.Invalid == invalid {
		f.mu.Unlock()
		return
	}
	el.Invalid = invalid
	f.mu.Unlock()
	f.notify()
}

// Submit fires the submit listeners on the calling goroutine
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	listeners := make([]SubmitListener, 0, len(f.submits))
	for _, fn := range f.submits {
		listeners = append(listeners, fn)
	}
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx)
	}
}

// SubmitControl returns the submit control state
func (f *Form) SubmitControl() SubmitControl {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submit
}

// SetSubmitControl replaces the submit control state
func (f *Form) SetSubmitControl(sc SubmitControl) {
	f.mu.Lock()
	f.submit = sc
	f.mu.Unlock()
	f.notify()
}

// Result returns the result panel
func (f *Form) Result() Panel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// SetResult replaces the result panel
func (f *Form) SetResult(p Panel) {
	f.mu.Lock()
	f.result = p
	f.mu.Unlock()
	f.notify()
}

// Snapshot copies the full form state
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Elements: f.copyElements(),
		Submit:   f.submit,
		Result:   f.result,
	}
}

// OnInput registers fn for value changes of name. The returned func removes it.
func (f *Form) OnInput(name string, fn InputListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	if f.inputs[name] == nil {
		f.inputs[name] = make(map[int]InputListener)
	}
	f.inputs[name][id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.inputs[name], id)
	}
}

// OnSubmit registers fn for submission. The returned func removes it.
func (f *Form) OnSubmit(fn SubmitListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.submits[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.submits, id)
	}
}

// Watch registers fn to run after every state change. The returned func removes it.
func (f *Form) Watch(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.watchers[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watchers, id)
	}
}

// listenerCount is used by tests to check mount/unmount bookkeeping
func (f *Form) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.submits)
	for _, m := range f.inputs {
		n += len(m)
	}
	return n
}

func (f *Form) notify() {
	f.mu.Lock()
	watchers := make([]func(), 0, len(f.watchers))
	for _, fn := range f.watchers {
		watchers = append(watchers, fn)
	}
	f.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}
