package oauth2client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded"

// Exchange trades an authorization code for a Token by POSTing to TokenURL.
//
// It performs exactly one round trip and never retries. Failures are reported
// as a *TransportError, an *UnexpectedStatusError or ErrMissingAccessToken.
func (c *Config) Exchange(ctx context.Context, code string) (*Token, error) {
	logger := c.log()

	form := url.Values{}
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)
	form.Set("code", code)
	if c.RedirectURL != "" {
		form.Set("redirect_uri", c.RedirectURL)
	}

	req, err := http.NewRequestWithContext(ctx, string(HttpPost), c.TokenURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create token request: %w", err)}
	}
	req.Header.Set("Content-Type", formContentType)

	logger.Debug("exchanging authorization code",
		"token_url", c.TokenURL.Redacted(),
		"client_id", c.ClientID,
		"has_redirect_uri", c.RedirectURL != "",
	)

	resp, err := c.client().Do(req)
	if err != nil {
		logger.Debug("token request failed", "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("token endpoint returned unexpected status", "status", resp.StatusCode)
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &UnexpectedStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read token response: %w", err)}
	}

	token := parseTokenResponse(body)
	if token.AccessToken == "" {
		logger.Debug("token response has no access_token")
		return nil, ErrMissingAccessToken
	}

	logger.Debug("authorization code exchange successful",
		"token_type", token.TokenType,
		"scopes", len(token.Scopes),
	)

	return token, nil
}

// parseTokenResponse decodes a form-encoded token response. Unknown keys and
// keys that fail to decode are ignored; the first value of a key wins.
func parseTokenResponse(body []byte) *Token {
	// ParseQuery keeps every pair it could decode even when it reports an
	// error for another one.
	values, _ := url.ParseQuery(string(body))

	token := &Token{Scopes: []string{}}
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		v := vs[0]
		switch key {
		case "access_token":
			token.AccessToken = v
		case "token_type":
			token.TokenType = v
		case "scope":
			if v != "" {
				token.Scopes = strings.Split(v, ",")
			}
		}
	}
	return token
}
