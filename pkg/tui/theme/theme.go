package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabTheme
	Footer FooterTheme
	Panel  PanelTheme
	Table  TableTheme
	Grid   GridTheme
	Error  lipgloss.Style
}

// TabTheme styles the tab strip along the top of the screen.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Gap      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Key    lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// TableTheme styles the entity tables.
type TableTheme struct {
	Header  lipgloss.Style
	Row     lipgloss.Style
	Muted   lipgloss.Style
	Current lipgloss.Style
}

// GridTheme styles the week view.
type GridTheme struct {
	Header  lipgloss.Style
	Time    lipgloss.Style
	Subject lipgloss.Style
	Line    lipgloss.Style
	Rule    lipgloss.Style
	Mode    lipgloss.Style
	ModeOn  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	return Theme{
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Foreground(accent).
				Bold(true).
				Underline(true).
				Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
			Gap:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Key:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Table: TableTheme{
			Header:  lipgloss.NewStyle().Bold(true),
			Row:     lipgloss.NewStyle(),
			Muted:   lipgloss.NewStyle().Foreground(muted),
			Current: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Grid: GridTheme{
			Header:  lipgloss.NewStyle().Bold(true),
			Time:    lipgloss.NewStyle().Foreground(muted),
			Subject: lipgloss.NewStyle().Bold(true),
			Line:    lipgloss.NewStyle(),
			Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Mode:    lipgloss.NewStyle().Foreground(muted),
			ModeOn:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Error: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(1, 2),
	}
}
