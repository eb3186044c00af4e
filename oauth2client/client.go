package oauth2client

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// APIClient makes API calls authorized with a Token obtained from Exchange.
// It does not refresh or retry; a 401 is returned to the caller like any other
// failed status.
type APIClient struct {
	token      *Token
	scheme     string
	baseURL    string
	httpClient HTTPClient
	logger     *slog.Logger
}

// APIClientOption configures an APIClient.
type APIClientOption func(*APIClient)

// WithAPIHTTPClient sets the transport used for API calls.
func WithAPIHTTPClient(client HTTPClient) APIClientOption {
	return func(c *APIClient) {
		c.httpClient = client
	}
}

// WithAuthScheme sets the Authorization scheme. The default is SchemeToken.
func WithAuthScheme(scheme string) APIClientOption {
	return func(c *APIClient) {
		c.scheme = scheme
	}
}

// WithAPILogger sets the logger.
func WithAPILogger(logger *slog.Logger) APIClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// NewAPIClient creates a new APIClient for baseURL.
//
// Parameters:
//   - token: The token to authorize requests with. If nil, the client works
//     as a thin HTTP client wrapper without authentication.
//   - baseURL: The base URL of the API you're accessing.
//
// Example:
//
//	token, err := config.Exchange(ctx, code)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := oauth2client.NewAPIClient(token, "https://api.github.com")
func NewAPIClient(token *Token, baseURL string, opts ...APIClientOption) *APIClient {
	client := &APIClient{
		token:      token,
		scheme:     SchemeToken,
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// CallAPI makes an API call and returns the response body, status code, and any error.
//
// Parameters:
//   - method: The HTTP method to use (e.g., HttpGet, HttpPost, HttpPut, HttpDelete)
//   - path: The API endpoint path (will be appended to the base URL)
//   - body: The request body. Can be nil, a string, []byte, url.Values, or any JSON-serializable type
//   - additionalHeaders: Additional HTTP headers to include in the request
//
// Responses other than 200 and 201 are returned as an error together with
// their status code.
func (c *APIClient) CallAPI(ctx context.Context, method HttpMethod, path string, body any, additionalHeaders map[string]string) ([]byte, int, error) {
	bodyReader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, string(method), c.baseURL+path, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != nil {
		AuthorizeRequestWithScheme(req, c.scheme, c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for key, value := range additionalHeaders {
		req.Header.Set(key, value)
	}

	c.logger.Debug("calling API", "method", string(method), "path", path, "authorized", c.token != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	responseBody, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, resp.StatusCode, fmt.Errorf("API call failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	return responseBody, resp.StatusCode, nil
}

func encodeBody(body any) (io.Reader, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	case []byte:
		return bytes.NewReader(v), "application/octet-stream", nil
	case url.Values:
		return strings.NewReader(v.Encode()), formContentType, nil
	default:
		jsonBody, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(jsonBody), "application/json", nil
	}
}
