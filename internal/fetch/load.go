package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/databrowser/internal/model"
)

// Load fetches all three collections and never fails: on any error the
// failure is logged and an empty Result is returned, with no partial data.
func (c *Client) Load(ctx context.Context) Result {
	log := c.log.WithField("load_id", uuid.NewString())
	start := time.Now()

	res, err := c.fetch(ctx, log)
	if err != nil {
		fields := logrus.Fields{
			"op":      "load",
			"cause":   err,
			"elapsed": time.Since(start),
		}
		var le *LoadError
		if errors.As(err, &le) {
			fields["resource"] = le.Resource
			fields["stage"] = le.Stage
		}
		log.WithFields(fields).Error("Could not load data")
		return emptyResult()
	}
	log.WithFields(logrus.Fields{
		"op":      "load",
		"users":   len(res.Users),
		"posts":   len(res.Posts),
		"todos":   len(res.Todos),
		"elapsed": time.Since(start),
	}).Info("Loaded data")
	return res
}

// Fetch is Load without the error swallowing. The returned error, if any,
// is a *LoadError.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	return c.fetch(ctx, c.log.WithField("load_id", uuid.NewString()))
}

func (c *Client) fetch(ctx context.Context, log logrus.FieldLogger) (Result, error) {
	resources := [...]string{ResourceUsers, ResourcePosts, ResourceTodos}

	// Requests are not cancelled when a sibling fails, so a plain Group.
	var responses [len(resources)]*http.Response
	defer func() {
		for i, resp := range responses {
			if resp == nil {
				continue
			}
			if err := resp.Body.Close(); err != nil {
				log.WithFields(logrus.Fields{
					"resource": resources[i],
					"cause":    err,
				}).Warning("Could not close response body")
			}
		}
	}()

	var requests errgroup.Group
	for i, resource := range resources {
		i, resource := i, resource
		requests.Go(func() error {
			resp, err := c.get(ctx, resource)
			if err != nil {
				return err
			}
			responses[i] = resp
			log.WithFields(logrus.Fields{
				"resource": resource,
				"code":     resp.StatusCode,
			}).Debug("Response received")
			return nil
		})
	}
	if err := requests.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	var decodes errgroup.Group
	decodes.Go(func() error {
		users, err := decode[model.User](ResourceUsers, responses[0])
		res.Users = model.Preview(users)
		return err
	})
	decodes.Go(func() error {
		posts, err := decode[model.Post](ResourcePosts, responses[1])
		res.Posts = model.Preview(posts)
		return err
	})
	decodes.Go(func() error {
		todos, err := decode[model.Todo](ResourceTodos, responses[2])
		res.Todos = model.Preview(todos)
		return err
	})
	if err := decodes.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, resource string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(resource), nil)
	if err != nil {
		return nil, &LoadError{Resource: resource, Stage: StageRequest, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &LoadError{Resource: resource, Stage: StageRequest, Err: errors.Wrapf(err, "GET %s", req.URL)}
	}
	if c.strict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		_ = resp.Body.Close()
		return nil, &LoadError{Resource: resource, Stage: StageStatus, Err: errors.Errorf("GET %s: %s", req.URL, resp.Status)}
	}
	return resp, nil
}

func decode[T any](resource string, resp *http.Response) ([]T, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Resource: resource, Stage: StageRead, Err: errors.Wrap(err, "read body")}
	}
	if !gjson.ValidBytes(b) {
		return nil, &LoadError{Resource: resource, Stage: StageDecode, Err: errors.Errorf("body is not JSON (%d bytes)", len(b))}
	}
	if !gjson.ParseBytes(b).IsArray() {
		return nil, &LoadError{Resource: resource, Stage: StageDecode, Err: errors.New("body is not a JSON array")}
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &LoadError{Resource: resource, Stage: StageDecode, Err: errors.Wrap(err, "unmarshal")}
	}
	return items, nil
}
