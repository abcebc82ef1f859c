package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelsos/oklink-go/internal/logger"
	"github.com/kelsos/oklink-go/models"
)

const (
	DefaultBaseURL        = "https://www.oklink.com"
	DefaultChainShortName = "KLAYTN"
	DefaultTimeout        = 30 * time.Second

	// APIPrefix is the versioned path every explorer endpoint lives under
	APIPrefix = "/api/v5/explorer"

	// AccessKeyHeader carries the API key on every request
	AccessKeyHeader = "Ok-Access-Key"

	maxErrorBody = 512
)

// Config holds the settings of an APIClient
type Config struct {
	APIKey         string
	BaseURL        string
	ChainShortName string
	Timeout        time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.ChainShortName == "" {
		c.ChainShortName = DefaultChainShortName
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// APIClient handles all HTTP communication with the OKLink explorer API.
// It holds no mutable state and is safe for concurrent use.
type APIClient struct {
	config     Config
	httpClient *http.Client
}

// NewAPIClient creates a new API client with the given configuration
func NewAPIClient(cfg Config, opts ...Option) *APIClient {
	cfg = cfg.withDefaults()
	c := &APIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	if logger.DebugFromEnvironment() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// New creates a client for apiKey with default settings
func New(apiKey string, opts ...Option) *APIClient {
	return NewAPIClient(Config{APIKey: apiKey}, opts...)
}

// Config returns the effective configuration
func (c *APIClient) Config() Config {
	return c.config
}

// ChainShortName returns the configured default chain
func (c *APIClient) ChainShortName() string {
	return c.config.ChainShortName
}

// BuildURL constructs a full URL for the given endpoint
func (c *APIClient) BuildURL(endpoint string) string {
	return fmt.Sprintf("%s%s%s", c.config.BaseURL, APIPrefix, endpoint)
}

// Get issues one GET request against endpoint and decodes the envelope. The
// envelope code is not inspected; use APIResponse.Err for that. A non-2xx
// response is returned as an envelope when its body is one, otherwise it is a
// TransportError.
func Get[T any](ctx context.Context, c *APIClient, endpoint string, params *Params) (*models.APIResponse[T], error) {
	url := c.BuildURL(endpoint)
	if query := params.Encode(); query != "" {
		url += "?" + query
	}

	requestID := uuid.NewString()
	start := time.Now()
	logger.Debug("[%s] Starting GET request to %s", requestID, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("error creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(AccessKeyHeader, c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("[%s] Request to %s failed after %v: %v", requestID, endpoint, time.Since(start), err)
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("[%s] Reading response from %s failed: %v", requestID, endpoint, err)
		return nil, &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response: %w", err)}
	}

	logger.Debug("[%s] Request to %s completed in %v with status %d", requestID, endpoint, time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// auth and rate limit rejections still carry an envelope
		if result, err := decodeEnvelope[T](body); err == nil {
			logger.Warn("[%s] %s: HTTP status %d with envelope code %s: %s", requestID, endpoint, resp.StatusCode, result.Code, result.Msg)
			return result, nil
		}

		excerpt := string(body)
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		logger.Error("[%s] %s: HTTP error %d: %s", requestID, endpoint, resp.StatusCode, excerpt)
		return nil, &TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       excerpt,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	result, err := decodeEnvelope[T](body)
	if err != nil {
		logger.Error("[%s] %s: Error decoding response: %v", requestID, endpoint, err)
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	return result, nil
}

type envelopeHeader struct {
	Code *string `json:"code"`
}

func decodeEnvelope[T any](body []byte) (*models.APIResponse[T], error) {
	var header envelopeHeader
	if err := json.Unmarshal(body, &header); err != nil {
		return nil, err
	}
	if header.Code == nil {
		return nil, errors.New("response envelope has no code")
	}

	var result models.APIResponse[T]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
