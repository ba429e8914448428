package model

// PreviewSize is how many records of each collection are kept for display.
const PreviewSize = 5

// User mirrors a remote /users record. Extra payload fields are ignored.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post mirrors a remote /posts record.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// Todo mirrors a remote /todos record.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// Status is the badge text shown next to a todo.
func (t Todo) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// Preview returns the first PreviewSize items in source order.
// The result never aliases more than PreviewSize elements of items.
func Preview[T any](items []T) []T {
	n := len(items)
	if n > PreviewSize {
		n = PreviewSize
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
