package client

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/kelsos/oklink-go/internal/logger"
)

// Option mutates the APIClient during construction.
type Option func(*APIClient)

// WithHTTPClient injects a custom *http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithDebugLogging wraps the transport so that every request and response
// is dumped at debug level, with the access key redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *APIClient) {
		if !enabled {
			return
		}
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		if _, wrapped := base.(*debugTransport); wrapped {
			return
		}
		hc := *c.httpClient
		hc.Transport = &debugTransport{base: base, secret: c.config.APIKey}
		c.httpClient = &hc
	}
}

type debugTransport struct {
	base   http.RoundTripper
	secret string
}

func (dt *debugTransport) redact(s string) string {
	if dt.secret == "" {
		return s
	}
	return strings.ReplaceAll(s, dt.secret, "<redacted>")
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, false); err == nil {
		logger.Debug("HTTP request %s %s\n%s", req.Method, dt.redact(req.URL.String()), dt.redact(string(dump)))
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		logger.Error("HTTP request %s %s failed: %v", req.Method, dt.redact(req.URL.String()), err)
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		logger.Debug("HTTP response %d for %s\n%s", resp.StatusCode, dt.redact(req.URL.String()), dt.redact(string(dump)))
	}
	return resp, nil
}
