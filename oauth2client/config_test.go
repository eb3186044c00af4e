package oauth2client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAuthURL  = "https://github.com/login/oauth/authorize"
	testTokenURL = "https://github.com/login/oauth/access_token"
)

// queryPairs splits a raw query into ordered key/value pairs.
func queryPairs(t *testing.T, rawQuery string) [][2]string {
	t.Helper()
	var pairs [][2]string
	for _, part := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(part, "=")
		pairs = append(pairs, [2]string{key, value})
	}
	return pairs
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	config, err := NewConfig("id", "secret", testAuthURL, testTokenURL)
	require.NoError(t, err)

	assert.Equal(t, "id", config.ClientID)
	assert.Equal(t, "secret", config.ClientSecret)
	assert.Empty(t, config.Scopes)
	assert.Empty(t, config.RedirectURL)
	assert.Equal(t, testAuthURL, config.AuthURL.String())
	assert.Equal(t, testTokenURL, config.TokenURL.String())
}

func TestNewConfig_Options(t *testing.T) {
	t.Parallel()

	scopes := []string{"repo", "gist"}
	config, err := NewConfig("id", "secret", testAuthURL, testTokenURL,
		WithScopes(scopes...),
		WithRedirectURL("https://app.example.com/callback"),
	)
	require.NoError(t, err)

	scopes[0] = "changed"
	assert.Equal(t, []string{"repo", "gist"}, config.Scopes)
	assert.Equal(t, "https://app.example.com/callback", config.RedirectURL)
}

func TestNewConfig_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		authURL  string
		tokenURL string
	}{
		{name: "auth url is not a url", authURL: "not a url", tokenURL: testTokenURL},
		{name: "token url is not a url", authURL: testAuthURL, tokenURL: "not a url"},
		{name: "relative path", authURL: "/login/oauth/authorize", tokenURL: testTokenURL},
		{name: "missing scheme", authURL: "://github.com/login", tokenURL: testTokenURL},
		{name: "empty", authURL: testAuthURL, tokenURL: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config, err := NewConfig("id", "secret", tt.authURL, tt.tokenURL)
			require.ErrorIs(t, err, ErrInvalidEndpoint)
			assert.Nil(t, config)
		})
	}
}

func TestMustNewConfig(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		MustNewConfig("id", "secret", testAuthURL, testTokenURL)
	})
	assert.Panics(t, func() {
		MustNewConfig("id", "secret", "not a url", testTokenURL)
	})
}

func TestAuthorizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		authURL     string
		scopes      []string
		redirectURL string
		want        [][2]string
	}{
		{
			name:    "no scopes and no redirect",
			authURL: testAuthURL,
			want: [][2]string{
				{"client_id", "id"},
				{"state", "xyz"},
				{"scope", ""},
			},
		},
		{
			name:    "scopes joined with commas",
			authURL: testAuthURL,
			scopes:  []string{"repo", "user:email"},
			want: [][2]string{
				{"client_id", "id"},
				{"state", "xyz"},
				{"scope", "repo%2Cuser%3Aemail"},
			},
		},
		{
			name:        "redirect appended last",
			authURL:     testAuthURL,
			scopes:      []string{"repo"},
			redirectURL: "https://app.example.com/callback",
			want: [][2]string{
				{"client_id", "id"},
				{"state", "xyz"},
				{"scope", "repo"},
				{"redirect_uri", "https%3A%2F%2Fapp.example.com%2Fcallback"},
			},
		},
		{
			name:    "existing query preserved",
			authURL: testAuthURL + "?allow_signup=false",
			want: [][2]string{
				{"allow_signup", "false"},
				{"client_id", "id"},
				{"state", "xyz"},
				{"scope", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := MustNewConfig("id", "secret", tt.authURL, testTokenURL, WithScopes(tt.scopes...))
			config.RedirectURL = tt.redirectURL

			u := config.AuthorizeURL("xyz")

			assert.Equal(t, tt.want, queryPairs(t, u.RawQuery))
			assert.Equal(t, "github.com", u.Host)
			assert.Equal(t, "/login/oauth/authorize", u.Path)
		})
	}
}

func TestAuthorizeURL_DecodesToInputs(t *testing.T) {
	t.Parallel()

	config := MustNewConfig("my id", "secret", testAuthURL, testTokenURL,
		WithScopes("a b", "c&d"),
		WithRedirectURL("https://app.example.com/cb?x=1"),
	)

	query := config.AuthorizeURL("st=ate&").Query()

	assert.Equal(t, "my id", query.Get("client_id"))
	assert.Equal(t, "st=ate&", query.Get("state"))
	assert.Equal(t, "a b,c&d", query.Get("scope"))
	assert.Equal(t, "https://app.example.com/cb?x=1", query.Get("redirect_uri"))
}

func TestAuthorizeURL_LeavesAuthURLUntouched(t *testing.T) {
	t.Parallel()

	config := MustNewConfig("id", "secret", testAuthURL, testTokenURL)

	first := config.AuthorizeURL("one")
	second := config.AuthorizeURL("two")

	assert.Equal(t, testAuthURL, config.AuthURL.String())
	assert.Equal(t, "one", first.Query().Get("state"))
	assert.Equal(t, "two", second.Query().Get("state"))
}
