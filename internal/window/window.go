// Package window hosts a packed container tree inside a bubbletea event
// loop: key routing, popup stacking, debounced resize, config-remembered
// geometry, and background-work futures.
package window

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/scroll"
	"github.com/glintlabs/glint/internal/styles"
	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

const resizeTag = "window:resize"

// Config assembles a window. Zero values fall back to toolkit defaults; a
// nil Store makes the window's settings memory-only.
type Config struct {
	Title string
	// Name is the window's config section. Unnamed windows do not remember
	// geometry or style.
	Name     string
	Style    any
	Registry *styles.Registry
	Store    *config.Store
	Logger   *logger.Logger
	Keys     *KeyMap

	Layout layout.Layout
	// Scroll carries the container scroll settings (scroll_y, fill_x,
	// scroll_y_div and friends). Empty means no scroll wrapper.
	Scroll map[string]any
	// ResizeDelay overrides the resize debounce quiet period.
	ResizeDelay time.Duration

	AnchorElements layout.Anchor
	ElementPadding layout.XY
}

// Window is the top-level tea.Model: a root row container, optionally
// wrapped in a scrollable viewport, plus the popup stack and key routing.
//
// Only the event loop mutates the widget tree. Background work goes through
// Go / Future and re-enters via FutureMsg.
type Window struct {
	title string
	name  string
	log   *logger.Logger
	store *config.Store
	reg   *styles.Registry
	keys  KeyMap

	root     *layout.RowContainer
	scroller *scroll.Container

	// OnFuture, when set, receives completed background futures after the
	// window's own tags are filtered out.
	OnFuture func(FutureMsg)

	width  int
	height int
	popups []*Popup
}

// New builds a window: style comes from cfg, falling back to the
// config-remembered style name and then the registry default; initial size
// comes from the terminal, falling back to remembered geometry.
func New(cfg Config) (*Window, error) {
	log := cfg.Logger.Component("window")

	reg := cfg.Registry
	if reg == nil {
		reg = styles.NewRegistry()
	}
	store := cfg.Store
	if store == nil {
		store = config.New(cfg.Name, "", nil, cfg.Logger)
	}

	style := cfg.Style
	if style == nil {
		if remembered := store.GetString("style", ""); remembered != "" {
			style = remembered
		}
	}

	root, err := layout.NewContainer(layout.ContainerConfig{
		Style:          style,
		Registry:       reg,
		Logger:         cfg.Logger,
		AnchorElements: cfg.AnchorElements,
		ElementPadding: cfg.ElementPadding,
	}, cfg.Layout)
	if err != nil {
		return nil, err
	}
	if err := root.PackRows(); err != nil {
		return nil, err
	}

	w := &Window{
		title: cfg.Title,
		name:  cfg.Name,
		log:   log,
		store: store,
		reg:   reg,
		keys:  DefaultKeyMap(),
		root:  root,
	}
	if cfg.Keys != nil {
		w.keys = *cfg.Keys
	}

	if len(cfg.Scroll) > 0 {
		xcfg, err := scroll.AxisConfigFromSettings(scroll.AxisX, cfg.Scroll)
		if err != nil {
			return nil, err
		}
		ycfg, err := scroll.AxisConfigFromSettings(scroll.AxisY, cfg.Scroll)
		if err != nil {
			return nil, err
		}
		w.scroller = scroll.NewContainer(scroll.ContainerConfig{
			Inner:       root,
			Logger:      cfg.Logger,
			XConfig:     xcfg,
			YConfig:     ycfg,
			ResizeDelay: cfg.ResizeDelay,
		})
	}

	w.width, w.height = w.initialSize()
	return w, nil
}

// initialSize prefers the live terminal size, then remembered geometry,
// then the classic 80x24.
func (w *Window) initialSize() (int, int) {
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols, rows
	}
	if x, y, ok := w.store.GetXY("size"); ok {
		return x, y
	}
	return 80, 24
}

// Root returns the window's root container.
func (w *Window) Root() *layout.RowContainer { return w.root }

// Registry returns the window's style registry.
func (w *Window) Registry() *styles.Registry { return w.reg }

// Size returns the current outer size in cells.
func (w *Window) Size() layout.XY { return layout.XY{X: w.width, Y: w.height} }

// ShowPopup pushes a popup onto the stack; it receives keys until closed.
func (w *Window) ShowPopup(p *Popup) {
	w.popups = append(w.popups, p)
}

// ClosePopup pops the top popup and runs its close callback.
func (w *Window) ClosePopup() {
	if len(w.popups) == 0 {
		return
	}
	top := w.popups[len(w.popups)-1]
	w.popups = w.popups[:len(w.popups)-1]
	if top.onClose != nil {
		top.onClose()
	}
}

// PopupCount returns the popup stack depth.
func (w *Window) PopupCount() int { return len(w.popups) }

// Init implements tea.Model.
func (w *Window) Init() tea.Cmd {
	if w.title != "" {
		return tea.SetWindowTitle(w.title)
	}
	return nil
}

// Update implements tea.Model.
func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return w, w.resize(msg.Width, msg.Height)

	case FutureMsg:
		if msg.Err != nil {
			w.log.Error(msg.Err, "background work failed")
		}
		if msg.Tag != resizeTag && w.OnFuture != nil {
			w.OnFuture(msg)
		}
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)

	case tea.MouseMsg:
		w.handleMouse(msg)
		return w, nil
	}
	return w, nil
}

// resize records the new size, remembers it, and schedules the debounced
// scroll-region refresh. The returned command resolves when the refresh ran
// so the loop redraws with the new region.
func (w *Window) resize(width, height int) tea.Cmd {
	w.width = width
	w.height = height

	if w.name != "" {
		if err := w.store.Set("size", []int{width, height}); err != nil {
			w.log.Error(err, "remembering window size")
		}
	}

	if w.scroller == nil {
		w.root.SetWidth(width)
		return nil
	}
	f := NewFuture(resizeTag)
	w.scroller.Resize(layout.XY{X: width, Y: height}, func() { f.Complete(nil, nil) })
	return f.Await()
}

func (w *Window) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(w.popups) > 0 {
		if key.Matches(msg, w.keys.Close) {
			w.ClosePopup()
		}
		return w, nil
	}

	switch {
	case key.Matches(msg, w.keys.Quit):
		return w, tea.Quit
	case key.Matches(msg, w.keys.ScrollDown):
		w.scrollBy(scroll.AxisY, true)
	case key.Matches(msg, w.keys.ScrollUp):
		w.scrollBy(scroll.AxisY, false)
	case key.Matches(msg, w.keys.ScrollRight):
		w.scrollBy(scroll.AxisX, true)
	case key.Matches(msg, w.keys.ScrollLeft):
		w.scrollBy(scroll.AxisX, false)
	}
	return w, nil
}

func (w *Window) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		w.scrollBy(scroll.AxisY, true)
	case tea.MouseButtonWheelUp:
		w.scrollBy(scroll.AxisY, false)
	case tea.MouseButtonWheelRight:
		w.scrollBy(scroll.AxisX, true)
	case tea.MouseButtonWheelLeft:
		w.scrollBy(scroll.AxisX, false)
	}
}

func (w *Window) scrollBy(axis scroll.Axis, positive bool) {
	if w.scroller == nil {
		return
	}
	if target := scroll.Dispatch(w.scroller, axis); target != nil {
		target.Scroll(axis, positive)
	}
}

// View implements tea.Model.
func (w *Window) View() string {
	base := w.root.View()
	if w.scroller != nil {
		base = w.scroller.Render()
	}
	if len(w.popups) == 0 {
		return base
	}
	top := w.popups[len(w.popups)-1]
	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, top.render())
}

// Close flushes remembered settings. Teardown failures are logged and
// swallowed so shutdown never fails the caller.
func (w *Window) Close() {
	if w.name != "" {
		if err := w.store.Save(false); err != nil {
			w.log.Error(glinterrors.NewTeardownError("saving window config", err), "closing window")
		}
	}
	if w.scroller != nil {
		w.scroller.Stop()
	}
}
