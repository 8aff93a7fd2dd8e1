package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
)

// Config carries optional Driver tuning.
type Config struct {
	// DragThreshold is how far, in cells, a pressed pointer may move
	// before its release stops counting as a tap. Zero selects the
	// default.
	DragThreshold float64
}

const dragThresholdDefault = 2.0

// Driver feeds terminal input into a Runtime. It tracks the primary
// mouse button across events and turns its edges into pointer
// sequences: a press inside a region dispatches a pointer down at the
// hit entity, a release within the drag threshold dispatches click
// then up, a release past it dispatches drag end, and an interrupt or
// suspend mid-press dispatches cancel. Keyboard events are routed to
// the focused entity; terminals report no key releases or
// auto-repeats, so every key arrives as a non-repeat press.
//
// Driver methods must run on the goroutine that owns runtime dispatch.
type Driver struct {
	runtime   *engine.Runtime
	regions   *Regions
	threshold float64

	buttons tcell.ButtonMask
	seq     int64

	pressed     bool
	pressID     input.PointerID
	pressEntity entity.ID
	pressPath   []entity.ID
	pressOrigin input.Point
	lastPos     input.Point
	dragged     bool
}

// NewDriver builds a Driver with default configuration.
func NewDriver(rt *engine.Runtime) *Driver {
	return NewDriverWithConfig(rt, Config{})
}

// NewDriverWithConfig builds a Driver for rt with its own empty region
// registry.
func NewDriverWithConfig(rt *engine.Runtime, cfg Config) *Driver {
	threshold := cfg.DragThreshold
	if threshold <= 0 {
		threshold = dragThresholdDefault
	}
	return &Driver{
		runtime:   rt,
		regions:   NewRegions(),
		threshold: threshold,
	}
}

// Regions returns the registry the driver hit-tests against.
func (d *Driver) Regions() *Regions {
	return d.regions
}

// HandleEvent translates a terminal event and dispatches the resulting
// core events, reporting whether anything was dispatched. Resize and
// paste events are ignored; an interrupt cancels any active press.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(e)
	case *tcell.EventMouse:
		return d.handleMouse(e)
	case *tcell.EventInterrupt:
		return d.CancelPress()
	}
	return false
}

// CancelPress aborts an active press sequence with a pointer cancel at
// the pressed entity. It reports whether a press was active.
func (d *Driver) CancelPress() bool {
	if !d.pressed {
		return false
	}
	pos := d.lastPos
	d.dispatchPointer(event.TypePointerCancel, pos)
	d.clearPress()
	return true
}

// Suspend cancels any active press and suspends the screen, restoring
// the terminal for shell escape. The press cancel runs even when the
// suspend itself fails.
func (d *Driver) Suspend(screen tcell.Screen) error {
	d.CancelPress()
	return screen.Suspend()
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	key, ok := translateKey(ev)
	if !ok {
		return false
	}
	target := d.runtime.Focus().Focused()
	if target.IsNone() {
		return false
	}
	d.runtime.Dispatch(event.NewKey(target, key))
	return true
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	was := d.buttons&tcell.Button1 != 0
	d.buttons = ev.Buttons()

	pos := input.Point{X: float64(x), Y: float64(y)}
	switch {
	case held && !was:
		return d.beginPress(pos, x, y)
	case !held && was:
		return d.endPress(pos, x, y)
	case held:
		return d.trackPress(pos)
	}
	return false
}

func (d *Driver) beginPress(pos input.Point, x, y int) bool {
	target, path := d.regions.HitTest(x, y)
	if target.IsNone() {
		return false
	}
	d.seq++
	d.pressed = true
	d.pressID = input.PointerID(d.seq)
	d.pressEntity = target
	d.pressPath = path
	d.pressOrigin = pos
	d.lastPos = pos
	d.dragged = false
	d.dispatchPointer(event.TypePointerDown, pos)
	return true
}

func (d *Driver) trackPress(pos input.Point) bool {
	if !d.pressed {
		return false
	}
	d.lastPos = pos
	if pos.DistanceTo(d.pressOrigin) > d.threshold {
		d.dragged = true
	}
	d.dispatchPointer(event.TypePointerMove, pos)
	return true
}

func (d *Driver) endPress(pos input.Point, x, y int) bool {
	if !d.pressed {
		return false
	}
	d.lastPos = pos
	if d.dragged || pos.DistanceTo(d.pressOrigin) > d.threshold {
		d.dispatchPointer(event.TypePointerDragEnd, pos)
		d.clearPress()
		return true
	}
	// Click lands before up so the press flag is still set when the
	// click handler reads it.
	if target, _ := d.regions.HitTest(x, y); target == d.pressEntity {
		d.dispatchPointer(event.TypePointerClick, pos)
	}
	d.dispatchPointer(event.TypePointerUp, pos)
	d.clearPress()
	return true
}

func (d *Driver) dispatchPointer(t event.Type, pos input.Point) {
	ptr := input.PointerEvent{ID: d.pressID, Position: pos}
	d.runtime.Dispatch(event.NewPointer(t, d.pressEntity, ptr, d.pressPath...))
}

func (d *Driver) clearPress() {
	d.pressed = false
	d.pressEntity = entity.None
	d.pressPath = nil
	d.dragged = false
}

// translateKey maps a terminal key event to the core key vocabulary.
func translateKey(ev *tcell.EventKey) (input.KeyEvent, bool) {
	ke := input.KeyEvent{State: input.KeyStatePressed}
	switch ev.Key() {
	case tcell.KeyEnter:
		ke.Key = input.KeyEnter
	case tcell.KeyEscape:
		ke.Key = input.KeyEscape
	case tcell.KeyTab:
		ke.Key = input.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ke.Key = input.KeyBackspace
	case tcell.KeyDelete:
		ke.Key = input.KeyDelete
	case tcell.KeyUp:
		ke.Key = input.KeyUp
	case tcell.KeyDown:
		ke.Key = input.KeyDown
	case tcell.KeyLeft:
		ke.Key = input.KeyLeft
	case tcell.KeyRight:
		ke.Key = input.KeyRight
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			ke.Key = input.KeySpace
		} else {
			ke.Key = input.KeyRune
			ke.Rune = ev.Rune()
		}
	default:
		return input.KeyEvent{}, false
	}
	return ke, true
}
