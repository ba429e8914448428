package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every renderer pulls from.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style

	TabActive, TabInactive lipgloss.Style
	Card                   lipgloss.Style
	Frame                  lipgloss.Style
	Done                   lipgloss.Style
	BadgeDone, BadgeOpen   lipgloss.Style

	SymOK, SymFail string
	BarFull        string
	BarEmpty       string
}

var current = classic()

// ThemeNames lists the accepted values for SetTheme.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// ThemeByName returns a named theme; an empty name means classic.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
}

// SetTheme changes the theme returned by Current.
func SetTheme(name string) error {
	th, err := ThemeByName(name)
	if err != nil {
		return err
	}
	current = th
	return nil
}

func Current() Theme { return current }

func classic() Theme {
	border := lipgloss.Color("8")
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Padding(0, 2),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		BadgeDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("157")).Padding(0, 1),
		BadgeOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(lipgloss.Color("229")).Padding(0, 1),

		SymOK:    "✔",
		SymFail:  "✖",
		BarFull:  "█",
		BarEmpty: "░",
	}
}

func neon() Theme {
	th := classic()
	th.Name = "neon"
	th.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	th.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	th.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	th.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 2)
	th.Card = th.Card.BorderForeground(lipgloss.Color("13"))
	th.Frame = th.Frame.BorderForeground(lipgloss.Color("14"))
	return th
}

// mono uses no colour; selection and badges rely on reverse video and brackets.
func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Title:   plain.Bold(true),
		Muted:   plain,
		Accent:  plain,
		Success: plain,
		Pending: plain,
		Error:   plain.Bold(true),

		TabActive:   plain.Reverse(true).Padding(0, 2),
		TabInactive: plain.Padding(0, 2),
		Card:        plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Frame:       plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Done:        plain.Strikethrough(true),
		BadgeDone:   plain,
		BadgeOpen:   plain,

		SymOK:    "x",
		SymFail:  "!",
		BarFull:  "#",
		BarEmpty: "-",
	}
}
