package fetch

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/databrowser/internal/model"
)

// DefaultBaseURL serves /users, /posts and /todos.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Resource paths, in the order they are requested.
const (
	ResourceUsers = "users"
	ResourcePosts = "posts"
	ResourceTodos = "todos"
)

// Result holds the truncated collections of one load.
type Result struct {
	Users []model.User
	Posts []model.Post
	Todos []model.Todo
}

func emptyResult() Result {
	return Result{Users: []model.User{}, Posts: []model.Post{}, Todos: []model.Todo{}}
}

type clientOption func(*Client) error

// WithBaseURL points the client at another server. Used by tests and the
// api.base_url setting.
func WithBaseURL(raw string) clientOption {
	return func(c *Client) error {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return errors.Wrapf(err, "base url %q", raw)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("base url %q: scheme must be http or https", raw)
		}
		c.baseURL = strings.TrimRight(u.String(), "/")
		return nil
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) clientOption {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) clientOption {
	return func(c *Client) error {
		if d < 0 {
			return errors.Errorf("negative timeout %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithLogger sets the diagnostic channel failures are reported on.
func WithLogger(log logrus.FieldLogger) clientOption {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithStrictStatus makes any non-2xx response a load failure. Without it the
// body is decoded whatever the status code.
func WithStrictStatus(strict bool) clientOption {
	return func(c *Client) error {
		c.strict = strict
		return nil
	}
}

// Client loads the three resource collections from a REST endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logrus.FieldLogger
	strict  bool
}

// NewClient builds a client for DefaultBaseURL unless an option says otherwise.
func NewClient(opts ...clientOption) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// BaseURL reports the address resources are fetched from.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) endpoint(resource string) string {
	return c.baseURL + "/" + resource
}
