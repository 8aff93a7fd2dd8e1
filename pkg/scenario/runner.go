package scenario

import (
	"fmt"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
	"github.com/go-drift/headless/pkg/widget"
)

// Runner executes one scenario against a fresh runtime.
type Runner struct {
	runtime *engine.Runtime
	ids     map[string]entity.ID
	names   map[entity.ID]string

	clicks  int
	changes int
	closes  int
}

// Report summarizes a run.
type Report struct {
	Name    string
	Steps   []StepResult
	Clicks  int
	Changes int
	Closes  int
}

// StepResult records one executed step.
type StepResult struct {
	Index  int
	Verb   string
	Target string
	Err    error
}

// Failed reports whether any step failed.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// NewRunner creates a runner with its own runtime. Runners are single
// use: one scenario per runner.
func NewRunner() *Runner {
	r := &Runner{
		runtime: engine.NewRuntime(),
		ids:     make(map[string]entity.ID),
		names:   make(map[entity.ID]string),
	}
	r.runtime.OnActivated(func(entity.ID) { r.clicks++ })
	r.runtime.OnValueChanged(func(entity.ID, bool) { r.changes++ })
	return r
}

// Runtime returns the runner's runtime, e.g. for attaching a debug
// server before Run.
func (r *Runner) Runtime() *engine.Runtime {
	return r.runtime
}

// Entity returns the entity spawned for the named scenario widget.
func (r *Runner) Entity(name string) (entity.ID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Run spawns the scenario's widgets and executes its steps in order,
// stopping at the first failure. The returned report covers every step
// that ran; the error, if any, wraps the failing step's.
func (r *Runner) Run(s *Scenario) (*Report, error) {
	report := &Report{Name: s.Name}

	if err := r.spawnAll(s); err != nil {
		return report, err
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		verb, err := st.verb()
		if err != nil {
			return report, &errors.ScenarioError{Step: i + 1, Err: err}
		}
		result := StepResult{Index: i, Verb: verb, Target: r.stepTarget(st)}
		result.Err = r.runStep(st, verb)
		report.Steps = append(report.Steps, result)
		if result.Err != nil {
			report.Clicks, report.Changes, report.Closes = r.clicks, r.changes, r.closes
			return report, &errors.ScenarioError{Step: i + 1, Err: result.Err}
		}
	}

	report.Clicks, report.Changes, report.Closes = r.clicks, r.changes, r.closes
	return report, nil
}

// RunFile loads path and runs it, tagging failures with the file path.
func RunFile(path string) (*Report, error) {
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	report, err := NewRunner().Run(s)
	if err != nil {
		if serr, ok := err.(*errors.ScenarioError); ok {
			serr.Path = path
			return report, serr
		}
		return report, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

func (r *Runner) spawnAll(s *Scenario) error {
	for _, w := range s.Widgets {
		var id entity.ID
		var err error
		switch w.Kind {
		case "button":
			id, err = r.runtime.SpawnButton(w.Label, nil)
		case "checkbox":
			id, err = r.runtime.SpawnCheckbox(w.Label, &widget.Checkbox{Checked: w.Checked})
		case "barrier":
			barrier := &widget.Barrier{OnClose: func() { r.closes++ }}
			id, err = r.runtime.SpawnBarrier(barrier)
		default:
			err = fmt.Errorf("unknown kind %q", w.Kind)
		}
		if err != nil {
			return fmt.Errorf("spawn %q: %w", w.ID, err)
		}
		if w.Disabled {
			r.runtime.Store().SetDisabled(id, true)
		}
		r.ids[w.ID] = id
		r.names[id] = w.ID
	}
	return nil
}

func (r *Runner) runStep(st *Step, verb string) error {
	switch verb {
	case "tap":
		return r.pointerSequence(st.Tap, st.Behind,
			event.TypePointerDown, event.TypePointerClick, event.TypePointerUp)
	case "down":
		return r.pointerSequence(st.Down, st.Behind, event.TypePointerDown)
	case "up":
		return r.pointerSequence(st.Up, st.Behind, event.TypePointerUp)
	case "click":
		return r.pointerSequence(st.Click, st.Behind, event.TypePointerClick)
	case "drag-off":
		return r.pointerSequence(st.DragOff, st.Behind,
			event.TypePointerDown, event.TypePointerDragEnd)
	case "cancel":
		return r.pointerSequence(st.Cancel, st.Behind, event.TypePointerCancel)

	case "focus":
		id, err := r.resolve(st.Focus)
		if err != nil {
			return err
		}
		r.runtime.Focus().SetFocus(id)
		r.runtime.Focus().SetVisible(true)
		return nil
	case "key":
		return r.sendKey(st.Key, input.KeyStatePressed, false)
	case "key-repeat":
		return r.sendKey(st.KeyRepeat, input.KeyStatePressed, true)
	case "key-release":
		return r.sendKey(st.KeyRelease, input.KeyStateReleased, false)

	case "disable":
		return r.setDisabled(st.Disable, true)
	case "enable":
		return r.setDisabled(st.Enable, false)
	case "despawn":
		id, err := r.resolve(st.Despawn)
		if err != nil {
			return err
		}
		r.runtime.Despawn(id)
		return nil
	case "set-checked":
		id, err := r.resolve(st.SetChecked.Widget)
		if err != nil {
			return err
		}
		return r.runtime.SetChecked(id, st.SetChecked.Value)

	case "expect-clicks":
		return expectCount("clicks", r.clicks, *st.ExpectClicks)
	case "expect-changes":
		return expectCount("changes", r.changes, *st.ExpectChanges)
	case "expect-closes":
		return expectCount("closes", r.closes, *st.ExpectCloses)
	case "expect-focus":
		return r.expectFocus(st.ExpectFocus)
	case "expect-checked":
		id, err := r.resolve(st.ExpectChecked.Widget)
		if err != nil {
			return err
		}
		cb, ok := r.runtime.Store().Checkbox(id)
		if !ok {
			return fmt.Errorf("%q is not a checkbox", st.ExpectChecked.Widget)
		}
		if cb.Checked != st.ExpectChecked.Value {
			return fmt.Errorf("%q checked = %v, want %v",
				st.ExpectChecked.Widget, cb.Checked, st.ExpectChecked.Value)
		}
		return nil
	}
	return fmt.Errorf("unknown verb %q", verb)
}

func (r *Runner) pointerSequence(name string, behind []string, types ...event.Type) error {
	target, err := r.resolve(name)
	if err != nil {
		return err
	}
	path := make([]entity.ID, 0, len(behind))
	for _, b := range behind {
		id, err := r.resolve(b)
		if err != nil {
			return err
		}
		path = append(path, id)
	}
	for _, t := range types {
		r.runtime.Dispatch(event.NewPointer(t, target, input.PointerEvent{ID: 1}, path...))
	}
	return nil
}

func (r *Runner) sendKey(name string, state input.KeyState, repeat bool) error {
	kev, err := parseKey(name)
	if err != nil {
		return err
	}
	kev.State = state
	kev.Repeat = repeat
	target := r.runtime.Focus().Focused()
	if target.IsNone() {
		return fmt.Errorf("key %q: nothing focused", name)
	}
	r.runtime.Dispatch(event.NewKey(target, kev))
	return nil
}

func (r *Runner) setDisabled(name string, disabled bool) error {
	id, err := r.resolve(name)
	if err != nil {
		return err
	}
	r.runtime.Store().SetDisabled(id, disabled)
	return nil
}

func (r *Runner) expectFocus(name string) error {
	focused := r.runtime.Focus().Focused()
	if name == "none" {
		if !focused.IsNone() {
			return fmt.Errorf("focus = %q, want none", r.names[focused])
		}
		return nil
	}
	id, err := r.resolve(name)
	if err != nil {
		return err
	}
	if focused != id {
		got := "none"
		if !focused.IsNone() {
			got = fmt.Sprintf("%q", r.names[focused])
		}
		return fmt.Errorf("focus = %s, want %q", got, name)
	}
	return nil
}

func (r *Runner) resolve(name string) (entity.ID, error) {
	id, ok := r.ids[name]
	if !ok {
		return entity.None, fmt.Errorf("unknown widget %q", name)
	}
	return id, nil
}

func (r *Runner) stepTarget(st *Step) string {
	for _, s := range []string{
		st.Tap, st.Down, st.Up, st.Click, st.DragOff, st.Cancel,
		st.Focus, st.Disable, st.Enable, st.Despawn, st.ExpectFocus,
	} {
		if s != "" {
			return s
		}
	}
	if st.SetChecked != nil {
		return st.SetChecked.Widget
	}
	if st.ExpectChecked != nil {
		return st.ExpectChecked.Widget
	}
	return ""
}

func expectCount(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s = %d, want %d", what, got, want)
	}
	return nil
}

// parseKey maps a scenario key name to a key event. Single-rune names
// become rune keys.
func parseKey(name string) (input.KeyEvent, error) {
	switch name {
	case "enter":
		return input.KeyEvent{Key: input.KeyEnter}, nil
	case "space":
		return input.KeyEvent{Key: input.KeySpace}, nil
	case "escape", "esc":
		return input.KeyEvent{Key: input.KeyEscape}, nil
	case "tab":
		return input.KeyEvent{Key: input.KeyTab}, nil
	case "backspace":
		return input.KeyEvent{Key: input.KeyBackspace}, nil
	case "delete":
		return input.KeyEvent{Key: input.KeyDelete}, nil
	case "up":
		return input.KeyEvent{Key: input.KeyUp}, nil
	case "down":
		return input.KeyEvent{Key: input.KeyDown}, nil
	case "left":
		return input.KeyEvent{Key: input.KeyLeft}, nil
	case "right":
		return input.KeyEvent{Key: input.KeyRight}, nil
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return input.KeyEvent{Key: input.KeyRune, Rune: runes[0]}, nil
	}
	return input.KeyEvent{}, fmt.Errorf("unknown key %q", name)
}
