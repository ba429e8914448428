package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/databrowser/internal/model"
)

type fakeResource struct {
	status int
	body   string
}

type fakeAPI struct {
	*httptest.Server
	hits atomic.Int32
	mu   sync.Mutex
	seen map[string]int
}

func newFakeAPI(t *testing.T, resources map[string]fakeResource) *fakeAPI {
	t.Helper()
	api := &fakeAPI{seen: make(map[string]int)}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		api.mu.Lock()
		api.seen[r.URL.Path]++
		api.mu.Unlock()
		res, ok := resources[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		status := res.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(res.body))
	}))
	t.Cleanup(api.Close)
	return api
}

func usersJSON(t *testing.T, n int) string {
	t.Helper()
	out := make([]map[string]any, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, map[string]any{
			"id":       i,
			"name":     fmt.Sprintf("User %d", i),
			"username": fmt.Sprintf("user%d", i),
			"email":    fmt.Sprintf("user%d@example.com", i),
			"address":  map[string]any{"city": "Gwenborough"},
		})
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func postsJSON(t *testing.T, n int) string {
	t.Helper()
	out := make([]model.Post, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Post{ID: i, Title: fmt.Sprintf("post %d", i), Body: "body", UserID: i % 3})
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func todosJSON(t *testing.T, n int) string {
	t.Helper()
	out := make([]model.Todo, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Todo{ID: i, Title: fmt.Sprintf("todo %d", i), Completed: i%2 == 0, UserID: 1})
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func newTestClient(t *testing.T, baseURL string, opts ...clientOption) (*Client, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	opts = append([]clientOption{WithBaseURL(baseURL), WithLogger(logger)}, opts...)
	c, err := NewClient(opts...)
	require.NoError(t, err)
	return c, hook
}

func TestLoadTruncatesToPreview(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {body: usersJSON(t, 8)},
		"/posts": {body: postsJSON(t, 3)},
		"/todos": {body: "[]"},
	})
	c, hook := newTestClient(t, api.URL)

	res := c.Load(context.Background())

	require.Len(t, res.Users, 5)
	require.Len(t, res.Posts, 3)
	require.Len(t, res.Todos, 0)
	for i, u := range res.Users {
		assert.Equal(t, i+1, u.ID)
		assert.Equal(t, fmt.Sprintf("user%d", i+1), u.Username)
	}
	assert.Equal(t, "post 1", res.Posts[0].Title)
	assert.Equal(t, 1, res.Posts[0].UserID)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 5, entry.Data["users"])
	assert.NotEmpty(t, entry.Data["load_id"])
}

func TestLoadRequestsEachResourceOnce(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {body: usersJSON(t, 1)},
		"/posts": {body: postsJSON(t, 1)},
		"/todos": {body: todosJSON(t, 1)},
	})
	c, _ := newTestClient(t, api.URL+"/")

	c.Load(context.Background())

	assert.Equal(t, int32(3), api.hits.Load())
	assert.Equal(t, map[string]int{"/users": 1, "/posts": 1, "/todos": 1}, api.seen)
}

func TestLoadFailureIsSwallowedAndLogged(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {body: usersJSON(t, 8)},
		"/posts": {body: postsJSON(t, 8)},
		"/todos": {status: http.StatusBadGateway, body: "<html>bad gateway</html>"},
	})
	c, hook := newTestClient(t, api.URL)

	res := c.Load(context.Background())

	assert.Empty(t, res.Users)
	assert.Empty(t, res.Posts)
	assert.Empty(t, res.Todos)
	assert.NotNil(t, res.Users)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, ResourceTodos, entry.Data["resource"])
	assert.Equal(t, StageDecode, entry.Data["stage"])
}

func TestFetchNetworkFailure(t *testing.T) {
	api := newFakeAPI(t, nil)
	url := api.URL
	api.Close()
	c, _ := newTestClient(t, url)

	_, err := c.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLoad))
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, StageRequest, le.Stage)
}

func TestFetchRejectsNonArrayBody(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {body: `{"error":"rate limited"}`},
		"/posts": {body: postsJSON(t, 1)},
		"/todos": {body: todosJSON(t, 1)},
	})
	c, _ := newTestClient(t, api.URL)

	res, err := c.Fetch(context.Background())

	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ResourceUsers, le.Resource)
	assert.Equal(t, StageDecode, le.Stage)
	assert.Empty(t, res.Posts)
}

func TestFetchLenientStatusAcceptsJSONArray(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {status: http.StatusInternalServerError, body: usersJSON(t, 2)},
		"/posts": {body: postsJSON(t, 1)},
		"/todos": {body: todosJSON(t, 1)},
	})
	c, _ := newTestClient(t, api.URL)

	res, err := c.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
}

func TestFetchStrictStatusRejectsNon2xx(t *testing.T) {
	api := newFakeAPI(t, map[string]fakeResource{
		"/users": {status: http.StatusInternalServerError, body: usersJSON(t, 2)},
		"/posts": {body: postsJSON(t, 1)},
		"/todos": {body: todosJSON(t, 1)},
	})
	c, _ := newTestClient(t, api.URL, WithStrictStatus(true))

	_, err := c.Fetch(context.Background())

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, StageStatus, le.Stage)
	assert.Equal(t, ResourceUsers, le.Resource)
}

func TestFetchIssuesRequestsConcurrently(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(3)
	release := make(chan struct{})
	go func() {
		arrived.Wait()
		close(release)
	}()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrived.Done()
		select {
		case <-release:
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusGatewayTimeout)
			return
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL, WithStrictStatus(true))

	_, err := c.Fetch(context.Background())

	require.NoError(t, err, "requests were not in flight at the same time")
}

func TestNewClientOptions(t *testing.T) {
	c, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	_, err = NewClient(WithBaseURL("ftp://example.com"))
	assert.Error(t, err)

	_, err = NewClient(WithTimeout(-time.Second))
	assert.Error(t, err)

	_, err = NewClient(WithHTTPClient(nil))
	assert.Error(t, err)

	c, err = NewClient(WithBaseURL("http://localhost:9999/api/"), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", c.BaseURL())
	assert.Equal(t, "http://localhost:9999/api/users", c.endpoint(ResourceUsers))
	assert.Equal(t, time.Second, c.http.Timeout)
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Resource: ResourcePosts, Stage: StageRead, Err: errors.New("boom")}
	assert.Equal(t, "load posts (read): boom", err.Error())
	assert.True(t, errors.Is(err, ErrDataLoad))
}
