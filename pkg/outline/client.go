package outline

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the hosted Outline API.
	DefaultBaseURL = "https://app.getoutline.com/api"

	DefaultConnectTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
)

// Config contains configuration for the Outline client.
type Config struct {
	// BaseURL is the Outline API root, e.g. "https://docs.example.com/api".
	// Default: DefaultBaseURL
	BaseURL string

	// APIToken is sent as a Bearer token on every request. Required.
	APIToken string

	// ConnectTimeout bounds dialing and the TLS handshake.
	// Default: 10 seconds
	ConnectTimeout time.Duration

	// Timeout bounds a whole request, including reading the response body.
	// Default: 30 seconds
	Timeout time.Duration

	// Logger (optional)
	Logger hclog.Logger

	// Transport overrides the HTTP transport. Used by tests.
	Transport http.RoundTripper
}

// DefaultConfig returns a Config with the default URL and timeouts.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		ConnectTimeout: DefaultConnectTimeout,
		Timeout:        DefaultTimeout,
	}
}

// Client is the shared connection context. It is created once at startup,
// used concurrently by every operation, and closed once at shutdown.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	logger     hclog.Logger

	closeOnce sync.Once
}

// NewClient creates the shared Outline client. An empty API token is a
// configuration error and no transport is built.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, &ConfigurationError{Msg: "OUTLINE_API_TOKEN environment variable is required"}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	transport := cfg.Transport
	if transport == nil {
		transport = newTransport(cfg.ConnectTimeout)
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+cfg.APIToken)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		headers: headers,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: cfg.Logger.Named("outline-client"),
	}, nil
}

func newTransport(connectTimeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the client's idle connections. Only the first call has any
// effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
		c.logger.Debug("closed idle connections")
	})
}
