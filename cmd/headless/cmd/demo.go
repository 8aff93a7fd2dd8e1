package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/terminal"
	"github.com/go-drift/headless/pkg/widget"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Poke at widgets interactively in the terminal",
		Long: `Start a small interactive app: two buttons, a checkbox, and a modal
dialog guarded by a barrier, all wired through the terminal driver.

Click widgets with the mouse, or move focus with Tab and press
Enter/Space. Escape dismisses the dialog. Ctrl+C quits.

With --debug-port the runtime's debug server listens on localhost
while the demo runs; try /widgets, /trace, and /stats.`,
		Usage: "headless demo [--debug-port PORT]",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	port := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug-port":
			if i+1 >= len(args) {
				return fmt.Errorf("--debug-port requires a port number")
			}
			p, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid port %q", args[i+1])
			}
			port = p
			i++
		case strings.HasPrefix(arg, "--debug-port="):
			p, err := strconv.Atoi(strings.TrimPrefix(arg, "--debug-port="))
			if err != nil {
				return fmt.Errorf("invalid port %q", strings.TrimPrefix(arg, "--debug-port="))
			}
			port = p
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	app, err := newDemoApp(screen)
	if err != nil {
		return err
	}

	if port > 0 {
		srv := engine.NewServer(app.runtime)
		bound, err := srv.Start(port)
		if err != nil {
			return fmt.Errorf("debug server: %w", err)
		}
		defer srv.Stop()
		app.debugPort = bound
	}

	return app.run()
}

// Fixed widget placement; only the dialog layout follows the screen
// size.
var (
	saveRect = terminal.NewRect(2, 3, 14, 3)
	openRect = terminal.NewRect(2, 7, 18, 3)
	darkRect = terminal.NewRect(2, 11, 17, 1)
)

var (
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleMuted    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton   = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	styleFocused  = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite).Bold(true)
	stylePressed  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleDisabled = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGray)
	styleScrim    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleDialog   = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

type demoApp struct {
	runtime *engine.Runtime
	driver  *terminal.Driver
	screen  tcell.Screen

	save entity.ID
	open entity.ID
	dark entity.ID

	dialogOpen bool
	scrim      entity.ID
	confirm    entity.ID

	status    string
	debugPort int
}

func newDemoApp(screen tcell.Screen) (*demoApp, error) {
	a := &demoApp{
		runtime: engine.NewRuntime(),
		screen:  screen,
		status:  "ready",
	}
	a.driver = terminal.NewDriver(a.runtime)

	var err error
	a.save, err = a.runtime.SpawnButton("Save", &widget.Button{OnClick: func() {
		a.status = "saved"
	}})
	if err != nil {
		return nil, err
	}
	a.open, err = a.runtime.SpawnButton("Open dialog", &widget.Button{OnClick: func() {
		a.openDialog()
	}})
	if err != nil {
		return nil, err
	}
	dark := &widget.Checkbox{}
	dark.OnChange = func(v bool) {
		// The controller only proposes; committing is the app's call.
		if err := a.runtime.SetChecked(a.dark, v); err != nil {
			a.status = err.Error()
			return
		}
		a.status = fmt.Sprintf("dark mode %v", v)
	}
	a.dark, err = a.runtime.SpawnCheckbox("Dark mode", dark)
	if err != nil {
		return nil, err
	}

	a.driver.Regions().Place(a.save, saveRect)
	a.driver.Regions().Place(a.open, openRect)
	a.driver.Regions().Place(a.dark, darkRect)
	return a, nil
}

func (a *demoApp) run() error {
	for {
		a.draw()
		ev := a.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.layoutDialog()
			continue
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC {
				return nil
			}
			// Focus traversal lives in the app, not the widget layer.
			if e.Key() == tcell.KeyTab {
				a.cycleFocus()
				continue
			}
		}
		a.driver.HandleEvent(ev)
	}
}

func (a *demoApp) openDialog() {
	if a.dialogOpen {
		return
	}
	scrim, err := a.runtime.SpawnBarrier(&widget.Barrier{OnClose: func() {
		a.status = "dismissed"
		a.closeDialog()
	}})
	if err != nil {
		a.status = err.Error()
		return
	}
	confirm, err := a.runtime.SpawnButton("Confirm", &widget.Button{OnClick: func() {
		a.status = "confirmed"
		a.closeDialog()
	}})
	if err != nil {
		a.runtime.Despawn(scrim)
		a.status = err.Error()
		return
	}
	a.scrim, a.confirm = scrim, confirm
	a.dialogOpen = true
	a.layoutDialog()
	// Focus the barrier so Escape reaches it.
	a.runtime.Focus().SetFocus(scrim)
	a.runtime.Focus().SetVisible(false)
}

func (a *demoApp) closeDialog() {
	if !a.dialogOpen {
		return
	}
	a.driver.Regions().Remove(a.confirm)
	a.driver.Regions().Remove(a.scrim)
	a.runtime.Despawn(a.confirm)
	a.runtime.Despawn(a.scrim)
	a.dialogOpen = false
	a.runtime.Focus().SetFocus(a.open)
	a.runtime.Focus().SetVisible(true)
}

// layoutDialog places the scrim over the whole screen and the dialog's
// confirm button stacked on top of it.
func (a *demoApp) layoutDialog() {
	if !a.dialogOpen {
		return
	}
	w, h := a.screen.Size()
	a.driver.Regions().Place(a.scrim, terminal.NewRect(0, 0, w, h))
	box := a.dialogRect()
	a.driver.Regions().Place(a.confirm, terminal.NewRect(box.X+box.W/2-6, box.Y+box.H-3, 12, 3))
}

func (a *demoApp) dialogRect() terminal.Rect {
	w, h := a.screen.Size()
	const bw, bh = 34, 8
	return terminal.NewRect(w/2-bw/2, h/2-bh/2, bw, bh)
}

func (a *demoApp) cycleFocus() {
	order := []entity.ID{a.save, a.open, a.dark}
	if a.dialogOpen {
		order = []entity.ID{a.confirm, a.scrim}
	}
	focused := a.runtime.Focus().Focused()
	next := order[0]
	for i, id := range order {
		if id == focused {
			next = order[(i+1)%len(order)]
			break
		}
	}
	a.runtime.Focus().SetFocus(next)
	a.runtime.Focus().SetVisible(true)
}

func (a *demoApp) draw() {
	s := a.screen
	s.Clear()
	_, h := s.Size()

	header := "headless demo"
	if a.debugPort > 0 {
		header = fmt.Sprintf("headless demo    debug http://127.0.0.1:%d", a.debugPort)
	}
	drawText(s, 2, 0, styleHeader, header)
	drawText(s, 2, 1, styleMuted, "mouse: click    keys: Tab, Enter/Space, Esc    Ctrl+C quits")

	a.drawButton(a.save, saveRect, "Save")
	a.drawButton(a.open, openRect, "Open dialog")
	a.drawCheckbox(a.dark, darkRect, "Dark mode")

	if a.dialogOpen {
		a.drawDialog()
	}

	stats := a.runtime.Stats()
	drawText(s, 2, h-1, styleStatus, a.status)
	counters := fmt.Sprintf("events %d  outcomes %d", stats.Events, stats.Outcomes)
	drawText(s, 2, h-2, styleMuted, counters)
	s.Show()
}

func (a *demoApp) drawButton(id entity.ID, r terminal.Rect, label string) {
	style := styleButton
	switch {
	case a.runtime.Store().IsDisabled(id):
		style = styleDisabled
	case a.runtime.Store().IsPressed(id):
		style = stylePressed
	case a.runtime.Focus().IsFocused(id) && a.runtime.Focus().Visible():
		style = styleFocused
	}
	fillRect(a.screen, r, ' ', style)
	drawText(a.screen, r.X+(r.W-len(label))/2, r.Y+r.H/2, style, label)
}

func (a *demoApp) drawCheckbox(id entity.ID, r terminal.Rect, label string) {
	mark := "[ ]"
	if cb, ok := a.runtime.Store().Checkbox(id); ok && cb.Checked {
		mark = "[x]"
	}
	style := tcell.StyleDefault
	if a.runtime.Focus().IsFocused(id) && a.runtime.Focus().Visible() {
		style = style.Bold(true).Underline(true)
	}
	drawText(a.screen, r.X, r.Y, style, mark+" "+label)
}

func (a *demoApp) drawDialog() {
	w, h := a.screen.Size()
	fillRect(a.screen, terminal.NewRect(0, 0, w, h), '░', styleScrim)

	box := a.dialogRect()
	fillRect(a.screen, box, ' ', styleDialog)
	drawText(a.screen, box.X+2, box.Y+1, styleDialog.Bold(true), "Really save?")
	drawText(a.screen, box.X+2, box.Y+3, styleDialog, "Click outside or press Esc to")
	drawText(a.screen, box.X+2, box.Y+4, styleDialog, "dismiss.")

	confirmRect, ok := a.driver.Regions().Rect(a.confirm)
	if ok {
		a.drawButton(a.confirm, confirmRect, "Confirm")
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func fillRect(s tcell.Screen, r terminal.Rect, fill rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, fill, nil, style)
		}
	}
}
