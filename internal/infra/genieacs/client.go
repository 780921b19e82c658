// Package genieacs implements the device repository on top of the GenieACS
// northbound REST API.
package genieacs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"go.uber.org/fx"
)

const maxErrorBody = 512

type client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the ACS client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDeviceRepository creates the ACS-backed device repository.
func NewDeviceRepository(params ClientParams) (repository.DeviceRepository, error) {
	cfg := params.Config.ACS
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("acs url is required")
	}

	return NewClient(cfg, &http.Client{Timeout: cfg.Timeout}, params.Logger), nil
}

// NewClient builds a client with an explicit http.Client, mainly for tests.
func NewClient(cfg config.ACSConfig, httpClient *http.Client, logger *slog.Logger) repository.DeviceRepository {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	var devices []*entity.Device
	if err := c.getJSON(ctx, "/devices", &devices); err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	return devices, nil
}

func (c *client) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	query, err := json.Marshal(map[string]string{"_id": id})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var devices []*entity.Device
	if err := c.getJSON(ctx, "/devices/?query="+url.QueryEscape(string(query)), &devices); err != nil {
		return nil, errors.Wrapf(err, "find device %s", id)
	}
	if len(devices) == 0 || devices[0] == nil {
		return nil, repository.ErrDeviceNotFound
	}

	return devices[0], nil
}

func (c *client) PushTask(ctx context.Context, id string, task entity.Task, connectionRequest bool) error {
	body, err := json.Marshal(task)
	if err != nil {
		return errors.WithStack(err)
	}

	path := "/devices/" + url.PathEscape(id) + "/tasks"
	if connectionRequest {
		path += "?connection_request"
	}

	c.logger.Debug("[GenieACS] Pushing task",
		slog.String("device_id", id),
		slog.String("task", string(task.Name)),
	)

	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return errors.Wrapf(err, "push %s task to %s", task.Name, id)
	}

	return nil
}

func (c *client) AddTag(ctx context.Context, id, tag string) error {
	if err := c.do(ctx, http.MethodPost, tagPath(id, tag), nil, nil); err != nil {
		return errors.Wrapf(err, "add tag %q to %s", tag, id)
	}

	return nil
}

func (c *client) RemoveTag(ctx context.Context, id, tag string) error {
	if err := c.do(ctx, http.MethodDelete, tagPath(id, tag), nil, nil); err != nil {
		return errors.Wrapf(err, "remove tag %q from %s", tag, id)
	}

	return nil
}

func tagPath(id, tag string) string {
	return "/devices/" + url.PathEscape(id) + "/tags/" + url.PathEscape(tag)
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode acs response")
	}

	return nil
}

// StatusError is returned for any non-2xx ACS response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := "acs returned status " + strconv.Itoa(e.StatusCode)
	if e.Body == "" {
		return msg
	}

	return msg + ": " + e.Body
}

// Module provides the ACS repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeviceRepository),
)
