package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/autolayout/internal/card"
	"github.com/jask/autolayout/internal/layout"
)

// painter draws one scene onto a cell canvas.
type painter struct {
	grid   Grid
	assets AssetResolver
	warned map[string]bool
	log    *slog.Logger
	width  int
	height int
	canvas string
}

func newPainter(grid Grid, assets AssetResolver, warned map[string]bool, log *slog.Logger, width, height int) *painter {
	return &painter{grid: grid, assets: assets, warned: warned, log: log, width: width, height: height, canvas: blank(width, height)}
}

func (p *painter) paint(s card.Scene) string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	if e, ok := s.Element(card.ElementContainer); ok {
		p.container(e)
	}
	if e, ok := s.Element(card.ElementMedia); ok {
		p.media(e.Box, s.Content.Assets)
	}
	if e, ok := s.Element(card.ElementTitle); ok {
		p.text(e.Box, s.Content.Title, titleStyle)
	}
	if e, ok := s.Element(card.ElementURL); ok {
		p.text(e.Box, s.Content.URL, infoStyle)
	}
	if e, ok := s.Element(card.ElementUpdated); ok {
		p.text(e.Box, s.Content.Updated, infoStyle)
	}
	for _, v := range s.Fan {
		p.fanCard(v.Box, v.Opacity, s.Content.Assets.Card)
	}
	return p.canvas
}

func (p *painter) place(block string, box layout.Rect) {
	x, y, _, _ := p.grid.Cells(box)
	p.canvas = overlayAt(p.canvas, block, x, y, p.width, p.height)
}

func (p *painter) container(e card.ElementView) {
	_, _, w, h := p.grid.Cells(e.Box)
	if w < 2 || h < 2 {
		return
	}
	block := lipgloss.NewStyle().
		Border(borderFor(e.Styles[card.StyleRadius])).
		BorderForeground(colorBorder).
		Width(w - 2).
		Height(h - 2).
		Render("")
	p.place(block, e.Box)
}

func (p *painter) media(box layout.Rect, assets card.Assets) {
	_, _, w, h := p.grid.Cells(box)
	if w <= 0 || h <= 0 {
		return
	}
	label := p.resolve(assets.Main) + "  " + p.resolve(assets.Logo)
	block := mediaStyle.
		Width(w).
		Height(h).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(truncate(label, w))
	p.place(block, box)
}

// text draws s from the top-left of box. Glyphs are one cell wide whatever
// the font size, so a line may run past the box; it is cut at the canvas.
func (p *painter) text(box layout.Rect, s string, style lipgloss.Style) {
	x, _, _, h := p.grid.Cells(box)
	lines := splitLines(s)
	if h > 0 && len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = truncate(line, p.width-x)
	}
	p.place(style.Render(strings.Join(lines, "\n")), box)
}

func (p *painter) fanCard(box layout.Rect, opacity float64, asset string) {
	_, _, w, h := p.grid.Cells(box)
	if w < 2 || h < 2 || opacity <= 0 {
		return
	}
	color := fade(colorFan, opacity)
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Width(w - 2).
		Height(h - 2).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(truncate(p.resolve(asset), w-2))
	p.place(block, box)
}

// resolve never fails: an asset that cannot be drawn becomes Placeholder.
// Each failing ref is logged once per warned set.
func (p *painter) resolve(ref string) string {
	if p.assets == nil {
		return Placeholder
	}
	s, err := p.assets.Resolve(ref)
	if err != nil {
		if !p.warned[ref] {
			p.log.Warn("asset unavailable", "ref", ref, "err", err)
			if p.warned != nil {
				p.warned[ref] = true
			}
		}
		return Placeholder
	}
	return s
}
