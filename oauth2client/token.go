package oauth2client

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/oauth2"
)

// Token is the result of a successful code exchange.
type Token struct {
	// AccessToken is the credential sent on subsequent requests. Never empty
	// on a Token returned by Exchange.
	AccessToken string

	// Scopes are the scopes granted by the provider, empty if it sent none.
	Scopes []string

	// TokenType is the provider's type label, e.g. "bearer".
	TokenType string
}

// Equal reports whether t and other hold the same values. A nil and an empty
// Scopes are equal.
func (t Token) Equal(other Token) bool {
	return t.Compare(other) == 0
}

// Compare orders tokens by AccessToken, then Scopes, then TokenType.
func (t Token) Compare(other Token) int {
	if c := cmp.Compare(t.AccessToken, other.AccessToken); c != 0 {
		return c
	}
	if c := slices.Compare(t.Scopes, other.Scopes); c != 0 {
		return c
	}
	return cmp.Compare(t.TokenType, other.TokenType)
}

// AuthorizationValue returns the Authorization header value for the given
// scheme, e.g. "token abc123".
func (t *Token) AuthorizationValue(scheme string) string {
	return scheme + " " + t.AccessToken
}

// OAuth2 converts t into a golang.org/x/oauth2 token. The granted scopes are
// available as the "scope" extra, comma separated.
func (t *Token) OAuth2() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
	}
	return tok.WithExtra(map[string]any{
		"scope": strings.Join(t.Scopes, ","),
	})
}

// TokenSource returns a golang.org/x/oauth2 source that always yields t,
// suitable for oauth2.NewClient. Tokens from this package carry no expiry.
func (t *Token) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(t.OAuth2())
}
