package oauth2client

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Config holds the client credentials and provider endpoints of an OAuth2
// application using the authorization code grant.
//
// Scopes and RedirectURL may be changed by the caller before first use. They
// must not be changed concurrently with AuthorizeURL or Exchange.
type Config struct {
	// ClientID is the application's ID.
	ClientID string

	// ClientSecret is the application's secret.
	ClientSecret string

	// Scopes is a list of requested permission scopes.
	Scopes []string

	// AuthURL is the provider's authorization endpoint.
	AuthURL *url.URL

	// TokenURL is the provider's token endpoint.
	TokenURL *url.URL

	// RedirectURL is sent as redirect_uri when non-empty.
	RedirectURL string

	httpClient HTTPClient
	logger     *slog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithScopes sets the requested scopes.
func WithScopes(scopes ...string) Option {
	return func(c *Config) {
		c.Scopes = append([]string(nil), scopes...)
	}
}

// WithRedirectURL sets the redirect URL sent to the provider.
func WithRedirectURL(redirectURL string) Option {
	return func(c *Config) {
		c.RedirectURL = redirectURL
	}
}

// WithHTTPClient sets the transport used by Exchange. Timeouts belong on the
// client passed here.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Config) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// NewConfig creates a Config for the given credentials and endpoints.
//
// Both endpoints must be absolute URLs with a scheme and a host; otherwise an
// error wrapping ErrInvalidEndpoint is returned.
//
// Example:
//
//	config, err := oauth2client.NewConfig(
//		"your_client_id",
//		"your_client_secret",
//		"https://github.com/login/oauth/authorize",
//		"https://github.com/login/oauth/access_token",
//		oauth2client.WithScopes("repo", "gist"),
//	)
func NewConfig(clientID, clientSecret, authURL, tokenURL string, opts ...Option) (*Config, error) {
	parsedAuthURL, err := parseEndpoint("auth_url", authURL)
	if err != nil {
		return nil, err
	}
	parsedTokenURL, err := parseEndpoint("token_url", tokenURL)
	if err != nil {
		return nil, err
	}

	c := &Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{},
		AuthURL:      parsedAuthURL,
		TokenURL:     parsedTokenURL,
		httpClient:   &http.Client{},
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNewConfig is like NewConfig but panics if either endpoint is invalid.
// It is meant for endpoints fixed at build or deploy time, where a bad value
// is a programming error.
func MustNewConfig(clientID, clientSecret, authURL, tokenURL string, opts ...Option) *Config {
	c, err := NewConfig(clientID, clientSecret, authURL, tokenURL, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) client() HTTPClient {
	if c.httpClient == nil {
		return http.DefaultClient
	}
	return c.httpClient
}

func (c *Config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func parseEndpoint(name, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEndpoint, name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s: %q is not an absolute URL", ErrInvalidEndpoint, name, raw)
	}
	return u, nil
}

// AuthorizeURL returns the URL the end user is redirected to in order to start
// the grant. The parameters client_id, state, scope and, when RedirectURL is
// set, redirect_uri are appended in that order after any query already present
// on AuthURL.
//
// The state must be validated by the caller when the provider redirects back.
func (c *Config) AuthorizeURL(state string) *url.URL {
	u := *c.AuthURL

	params := []queryParam{
		{"client_id", c.ClientID},
		{"state", state},
		{"scope", strings.Join(c.Scopes, ",")},
	}
	if c.RedirectURL != "" {
		params = append(params, queryParam{"redirect_uri", c.RedirectURL})
	}

	u.RawQuery = appendQuery(u.RawQuery, params)
	return &u
}

type queryParam struct {
	key, value string
}

// appendQuery form-encodes params onto raw keeping their order; url.Values
// sorts by key.
func appendQuery(raw string, params []queryParam) string {
	var b strings.Builder
	b.WriteString(raw)
	for _, p := range params {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
