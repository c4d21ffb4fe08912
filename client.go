package cocktaildb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public v1 endpoint using the shared test key.
const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1/"

const (
	defaultUserAgent = "cocktaildb-go/0.1"
	requestTimeout   = 10 * time.Second
)

var (
	errEmptyBody = errors.New("empty response body")
	errNoResults = errors.New("no results in envelope")
)

// Client talks to TheCocktailDB HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	timeout   time.Duration
	userAgent string
	logger    Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. a mirror or a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := parseBaseURL(raw)
		if err != nil {
			return err
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient sends requests through hc. hc is used as is and never
// modified; the client's own timeout is applied per request on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client is nil")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout bounds each request, body read included. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("timeout %v is negative", d)
		}
		c.timeout = d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// WithLogger sets the logger receiving the causes of collapsed failures.
func WithLogger(l Logger) Option {
	return func(c *Client) error {
		if l == nil {
			l = DiscardLogger
		}
		c.logger = l
		return nil
	}
}

// NewClient builds a Client. Without options it targets DefaultBaseURL.
func NewClient(opts ...Option) (*Client, error) {
	c := newClient()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newClient() *Client {
	base, _ := url.Parse(DefaultBaseURL)
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		timeout:   requestTimeout,
		userAgent: defaultUserAgent,
		logger:    DiscardLogger,
	}
}

// BaseURL reports the API root requests are resolved against.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// envelope fetches path and decodes the response, failing when the
// collection named by key is missing, null or empty.
func (c *Client) envelope(ctx context.Context, path string, key collection) (*envelope, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body, key)
	if err != nil {
		return nil, err
	}
	if env.empty(key) {
		return nil, fmt.Errorf("%s: %w", key, errNoResults)
	}
	return env, nil
}

// fetch issues a single GET for path relative to the base URL and returns
// the fully buffered body.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
