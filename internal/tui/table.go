package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/autolayout/internal/descriptor"
)

// RenderTable draws the layout configuration table, one row per state.
func RenderTable(t *descriptor.Table) string {
	cols := []table.Column{
		{Title: "State", Width: 10},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
		{Title: "Radius", Width: 6},
		{Title: "Media", Width: 6},
		{Title: "Content", Width: 30},
		{Title: "Info", Width: 30},
		{Title: "Info W", Width: 7},
		{Title: "Fan", Width: 4},
	}
	var rows []table.Row
	for _, r := range t.Rows() {
		d := r.Descriptor
		rows = append(rows, table.Row{
			fmt.Sprintf("%d %s", int(r.State), r.State),
			d.Container.Width.String(),
			d.Container.Height.String(),
			fmt.Sprintf("%g", d.Container.Radius),
			fmt.Sprintf("%g", d.Media.Height),
			d.Content.String(),
			d.Info.Flow.String(),
			d.Info.Width.String(),
			yesNo(d.Present(descriptor.GroupFan)),
		})
	}

	tbl := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(len(rows)+2))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = lipgloss.NewStyle()
	tbl.SetStyles(styles)
	return tbl.View()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
