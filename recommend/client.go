package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/vcrobe/movierecs/internal/logging"
)

// DefaultEndpoint is the path of the recommendations endpoint.
const DefaultEndpoint = "/api/movies/recommendations"

// Fetcher looks up recommendations for a movie title.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Response, error)
}

var _ Fetcher = (*Client)(nil)

// Client is the HTTP Fetcher. It enforces no timeout and never retries;
// supply an http.Client with a Timeout through WithHTTPClient if needed.
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.endpoint = path
		}
	}
}

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for failure diagnostics.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client for the server at baseURL (scheme and host,
// e.g. the page origin). A trailing slash is ignored.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
		logger:     logging.With().Str("component", "recommend").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EscapeTitle percent-encodes title for use as a query value. Spaces become
// %20 rather than +. The result decodes to the same value as
// encodeURIComponent's, though !'()* are escaped too.
func EscapeTitle(title string) string {
	return strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

// URL returns the request URL for title.
func (c *Client) URL(title string) string {
	return fmt.Sprintf("%s%s?title=%s", c.baseURL, c.endpoint, EscapeTitle(title))
}

// Fetch requests recommendations for req.MovieTitle.
//
// A non-2xx status yields a *RequestError whose Message is the body's error
// field when that is a non-empty string, or DefaultFetchError otherwise. A
// 2xx body that does not decode yields a *RequestError with the decode error.
// A transport failure yields a *RequestError carrying the transport error's
// message.
func (c *Client) Fetch(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.fetch(ctx, req.MovieTitle)
	if err != nil {
		c.logger.Error().Err(err).Str("title", req.MovieTitle).Msg("Error fetching recommendations")
		return nil, err
	}
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, title string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(title), http.NoBody)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: transportMessage(err), Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &RequestError{
			StatusCode: httpResp.StatusCode,
			Message:    transportMessage(err),
			Err:        fmt.Errorf("read response: %w", err),
		}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: httpResp.StatusCode, Message: errorField(body)}
	}

	var data Response
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &RequestError{
			StatusCode: httpResp.StatusCode,
			Message:    err.Error(),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return &data, nil
}

// errorField returns the string error field of an error body, or
// DefaultFetchError when the body is not an object or the field is missing,
// empty or not a string.
func errorField(body []byte) string {
	var envelope struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return DefaultFetchError
	}
	if msg, ok := envelope.Error.(string); ok && msg != "" {
		return msg
	}
	return DefaultFetchError
}

// transportMessage strips the "Get <url>:" prefix net/http adds, leaving the
// cause a user can act on.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}
