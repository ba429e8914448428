package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Tab selects which collection is on screen. The zero value is TabUsers.
type Tab int

const (
	TabUsers Tab = iota
	TabPosts
	TabTodos

	tabCount = 3
)

// Tabs lists every tab in display order.
func Tabs() []Tab { return []Tab{TabUsers, TabPosts, TabTodos} }

func (t Tab) String() string {
	switch t {
	case TabPosts:
		return "posts"
	case TabTodos:
		return "todos"
	default:
		return "users"
	}
}

// Title is the label used on the tab bar and section header.
func (t Tab) Title() string {
	switch t {
	case TabPosts:
		return "Posts"
	case TabTodos:
		return "Todos"
	default:
		return "Users"
	}
}

// Next and Prev cycle through the tabs.
func (t Tab) Next() Tab { return Tab((int(t.normalize()) + 1) % tabCount) }
func (t Tab) Prev() Tab { return Tab((int(t.normalize()) + tabCount - 1) % tabCount) }

func (t Tab) normalize() Tab {
	if t < TabUsers || t > TabTodos {
		return TabUsers
	}
	return t
}

// ParseTab accepts a tab name (case-insensitive) or its 1-based position.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tabs() {
		if s == t.String() {
			return t, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= tabCount {
		return Tab(n - 1), nil
	}
	return TabUsers, fmt.Errorf("unknown tab %q (want users, posts or todos)", s)
}
