// Package store holds the view state of the browser: the three previews,
// whether the initial load is still running, and the selected tab.
//
// A State is owned by a single event loop; it is not safe for concurrent use.
package store

import "github.com/idilsaglam/databrowser/internal/model"

type State struct {
	users   []model.User
	posts   []model.Post
	todos   []model.Todo
	loading bool
	tab     model.Tab
}

// New returns the initial state: loading, users tab selected, no data.
func New() State {
	return State{
		users:   []model.User{},
		posts:   []model.Post{},
		todos:   []model.Todo{},
		loading: true,
		tab:     model.TabUsers,
	}
}

// Populate stores the loaded collections. Nil slices are kept as empty.
func (s *State) Populate(users []model.User, posts []model.Post, todos []model.Todo) {
	if users != nil {
		s.users = users
	}
	if posts != nil {
		s.posts = posts
	}
	if todos != nil {
		s.todos = todos
	}
}

// Finish clears the loading flag.
func (s *State) Finish() { s.loading = false }

// Select switches the visible tab. It never triggers a fetch.
func (s *State) Select(tab model.Tab) { s.tab = tab }

func (s State) Users() []model.User { return s.users }
func (s State) Posts() []model.Post { return s.posts }
func (s State) Todos() []model.Todo { return s.todos }
func (s State) Loading() bool       { return s.loading }
func (s State) Tab() model.Tab      { return s.tab }
