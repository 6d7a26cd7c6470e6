// Package tui runs the card as a bubbletea program: it turns clicks and
// keys into triggers, drives frames with a tick chain and paints each
// scene onto the terminal.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/autolayout/internal/card"
	"github.com/jask/autolayout/internal/config"
	"github.com/jask/autolayout/internal/presence"
	"github.com/jask/autolayout/internal/steps"
)

// chromeLines is the number of rows below the canvas: status and footer.
const chromeLines = 2

// frameMsg is delivered by the tick chain.
type frameMsg time.Time

// App is the bubbletea model.
type App struct {
	card   *card.Card
	grid   Grid
	keys   keyMap
	assets AssetResolver
	warned map[string]bool
	log    *slog.Logger
	clock  func() time.Time

	interval time.Duration
	mouse    bool

	width   int
	height  int
	ticking bool
	status  string
}

// Option configures an App.
type Option func(*App)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.clock = now
		}
	}
}

// WithAssets replaces the asset resolver.
func WithAssets(r AssetResolver) Option {
	return func(a *App) { a.assets = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates the model around c using the UI settings of cfg.
func New(c *card.Card, cfg config.Config, opts ...Option) *App {
	a := &App{
		card:     c,
		grid:     Grid{CellWidth: cfg.UI.CellWidth, CellHeight: cfg.UI.CellHeight},
		keys:     newKeyMap(),
		assets:   GlyphResolver,
		warned:   make(map[string]bool),
		log:      slog.Default(),
		clock:    time.Now,
		interval: cfg.FrameInterval(),
		mouse:    cfg.UI.Mouse,
		status:   "click the card",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.card.Resize(a.grid.Viewport(a.width, a.canvasHeight()))
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Trigger):
			return a, a.trigger()
		}
		return a, nil
	case tea.MouseMsg:
		if !a.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		pt := a.grid.Point(msg.X, msg.Y)
		if !a.card.HitTest(pt.X, pt.Y, a.clock()) {
			return a, nil
		}
		return a, a.trigger()
	case frameMsg:
		return a, a.frame(time.Time(msg))
	}
	return a, nil
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	scene := a.card.Scene(a.clock())
	canvas := newPainter(a.grid, a.assets, a.warned, a.log, a.width, a.canvasHeight()).paint(scene)
	return lipgloss.JoinVertical(lipgloss.Left,
		canvas,
		a.renderStatus(scene),
		a.renderFooter(),
	)
}

// Ticking reports whether a frame tick is outstanding.
func (a *App) Ticking() bool {
	return a.ticking
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

func (a *App) trigger() tea.Cmd {
	req := a.card.Trigger(a.clock())
	a.status = fmt.Sprintf("%s → %s", req.From, req.To)
	a.log.Debug("trigger", "transition", req.ID, "from", req.From, "to", req.To)
	return a.startTicking()
}

// startTicking starts the tick chain unless one is already running, so
// there is never more than one outstanding frame.
func (a *App) startTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (a *App) frame(now time.Time) tea.Cmd {
	for _, ev := range a.card.Frame(now) {
		if ev.Kind == presence.GroupUnmounted {
			a.status = fmt.Sprintf("%s removed", ev.Group)
		}
	}
	if a.card.Animating(now) {
		return a.tick()
	}
	a.ticking = false
	return nil
}

func (a *App) canvasHeight() int {
	return max(a.height-chromeLines, 0)
}

func (a *App) renderStatus(s card.Scene) string {
	line := fmt.Sprintf("step %d/%d  width %.0fpx  media %.0fpx  radius %.0fpx  fan %s  %s",
		int(s.State), steps.Count,
		s.Style(card.ElementContainer, card.StyleWidth),
		s.Style(card.ElementMedia, card.StyleHeight),
		s.Style(card.ElementContainer, card.StyleRadius),
		a.card.FanPhase(),
		a.status,
	)
	return statusBarStyle.Width(a.width).Render(truncate(line, max(a.width-4, 0)))
}

func (a *App) renderFooter() string {
	return footerStyle.Width(a.width).Render(renderHelp(a.keys.ShortHelp()))
}
