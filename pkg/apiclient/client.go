package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/vcfctl/internal/models"
)

const (
	loginPath          = "/api/login"
	virtualCentersPath = "/api/virtualcenters"
)

// Client talks to the VCF backend. Session cookies set by a successful login
// are kept in the client's jar and sent with every following request.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        *sessionJar
}

type Option func(c *Client)

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		}
	}
}

// WithTransport replaces the round tripper used by the client.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

func NewClient(serverURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", serverURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", serverURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	jar := newSessionJar()
	c := &Client{
		baseURL:    u,
		jar:        jar,
		httpClient: &http.Client{Jar: jar},
	}
	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// Login posts the credentials. On success the backend's session cookie is stored in the jar.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (json.RawMessage, error) {
	zap.S().Named("apiclient").Debugw("login attempt", "username", creds.Username, "password", maskSecret(creds.Password))

	data, err := c.Request(ctx, http.MethodPost, loginPath, creds.LoginRequest(), nil)
	if err != nil {
		return nil, err
	}

	zap.S().Named("apiclient").Infow("login successful", "username", creds.Username)
	return data, nil
}

// FetchVirtualCenters returns the payload of GET /api/virtualcenters as sent by the server.
func (c *Client) FetchVirtualCenters(ctx context.Context) (*models.VirtualCenterList, error) {
	var list models.VirtualCenterList
	if err := c.Do(ctx, http.MethodGet, virtualCentersPath, nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ResetSession forgets every cookie. The next request is sent without a session.
func (c *Client) ResetSession() {
	c.jar.Reset()
	zap.S().Named("apiclient").Debug("session reset")
}

// HasSession reports whether the jar holds a cookie for the backend.
func (c *Client) HasSession() bool {
	return len(c.jar.Cookies(c.baseURL)) > 0
}

// Do performs the request and decodes the response into dest.
// dest is left untouched when the server answers without content.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers http.Header, dest any) error {
	status, data, err := c.send(ctx, method, path, body, headers)
	if err != nil {
		return err
	}
	if data == nil || dest == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return newInvalidBodyError(status, fmt.Errorf("failed to decode response from %s: %w", path, err))
	}
	return nil
}

// Request sends body as json to path and returns the raw json of the response,
// or nil when the server answered 204 or with an empty body.
// Every failure is returned as *models.APIError.
func (c *Client) Request(ctx context.Context, method, path string, body any, headers http.Header) (json.RawMessage, error) {
	_, data, err := c.send(ctx, method, path, body, headers)
	return data, err
}

// send is Request that also returns the status of a successful response.
func (c *Client) send(ctx context.Context, method, path string, body any, headers http.Header) (int, json.RawMessage, error) {
	logger := zap.S().Named("apiclient")

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, newTransportError(fmt.Errorf("failed to marshal request body: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reqBody)
	if err != nil {
		return 0, nil, newTransportError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	logger.Debugw("sending request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debugw("request failed", "method", method, "path", path, "error", err)
		return 0, nil, newTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newResponseError(resp.StatusCode, data)
		logger.Debugw("request rejected", "method", method, "path", path, "status", resp.StatusCode, "code", apiErr.Code)
		return 0, nil, apiErr
	}

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil, nil
	}

	if readErr != nil {
		return 0, nil, newTransportError(fmt.Errorf("failed to read response body: %w", readErr))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return resp.StatusCode, nil, nil
	}

	if !json.Valid(data) {
		return 0, nil, newInvalidBodyError(resp.StatusCode, errors.New("response body is not valid json"))
	}

	return resp.StatusCode, json.RawMessage(data), nil
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimPrefix(path, "/")
	return u.String()
}

func maskSecret(value string) string {
	r := []rune(value)
	if len(r) <= 4 {
		return "****"
	}
	return string(r[:2]) + "***" + string(r[len(r)-2:])
}
