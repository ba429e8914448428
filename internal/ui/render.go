package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/databrowser/internal/model"
)

// LoadingText is shown next to the spinner until the initial load settles.
const LoadingText = "Loading data..."

// View is the read-only state the renderer needs. store.State satisfies it.
type View interface {
	Users() []model.User
	Posts() []model.Post
	Todos() []model.Todo
	Loading() bool
	Tab() model.Tab
}

// Layout carries presentation inputs that are not part of the view state.
type Layout struct {
	Width   int    // card width in cells; 0 lets cards size to content
	Spinner string // current spinner frame, shown while loading
}

// Render draws the whole screen for v. While loading only the indicator is
// drawn; afterwards the tab bar and the selected category's list.
func Render(v View, th Theme, l Layout) string {
	if v.Loading() {
		return RenderLoading(th, l.Spinner)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TabBar(th, v.Tab()),
		"",
		RenderTab(v, th, l),
	)
}

func RenderLoading(th Theme, frame string) string {
	if frame == "" {
		return th.Muted.Render(LoadingText)
	}
	return th.Accent.Render(frame) + " " + th.Muted.Render(LoadingText)
}

// TabBar draws one button per tab with the selected one highlighted.
func TabBar(th Theme, selected model.Tab) string {
	buttons := make([]string, 0, len(model.Tabs()))
	for i, tab := range model.Tabs() {
		style := th.TabInactive
		if tab == selected {
			style = th.TabActive
		}
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, style.Render(fmt.Sprintf("%d %s", i+1, tab.Title())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// RenderTab draws only the list of the selected category.
func RenderTab(v View, th Theme, l Layout) string {
	tab := v.Tab()
	var cards []string
	switch tab {
	case model.TabPosts:
		for _, p := range v.Posts() {
			cards = append(cards, postCard(th, l, p))
		}
	case model.TabTodos:
		for _, t := range v.Todos() {
			cards = append(cards, todoCard(th, l, t))
		}
	default:
		for _, u := range v.Users() {
			cards = append(cards, userCard(th, l, u))
		}
	}
	header := th.Title.Render(tab.Title())
	if tab == model.TabTodos && len(v.Todos()) > 0 {
		header += "  " + th.Muted.Render(ProgressBar(th, completed(v.Todos()), len(v.Todos()), 10))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, cards...)...)
}

func card(th Theme, l Layout, lines ...string) string {
	style := th.Card
	if l.Width > 0 {
		// Border takes two cells.
		style = style.Width(l.Width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func userCard(th Theme, l Layout, u model.User) string {
	return card(th, l,
		th.Title.Render(u.Name),
		th.Muted.Render("@"+u.Username),
		th.Accent.Render(u.Email),
	)
}

func postCard(th Theme, l Layout, p model.Post) string {
	return card(th, l,
		th.Title.Render(p.Title),
		p.Body,
		th.Muted.Render(fmt.Sprintf("User ID: %d", p.UserID)),
	)
}

func todoCard(th Theme, l Layout, t model.Todo) string {
	return card(th, l,
		todoTitleStyle(th, t.Completed).Render(t.Title)+"  "+badgeStyle(th, t.Completed).Render(t.Status()),
		th.Muted.Render(fmt.Sprintf("User ID: %d", t.UserID)),
	)
}

func todoTitleStyle(th Theme, completed bool) lipgloss.Style {
	if completed {
		return th.Done
	}
	return lipgloss.NewStyle()
}

func badgeStyle(th Theme, completed bool) lipgloss.Style {
	if completed {
		return th.BadgeDone
	}
	return th.BadgeOpen
}

func completed(todos []model.Todo) int {
	n := 0
	for _, t := range todos {
		if t.Completed {
			n++
		}
	}
	return n
}
