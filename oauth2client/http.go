package oauth2client

import "net/http"

// HttpMethod represents an HTTP method.
type HttpMethod string

// HTTP Method constants
const (
	HttpGet     HttpMethod = "GET"
	HttpPost    HttpMethod = "POST"
	HttpPut     HttpMethod = "PUT"
	HttpDelete  HttpMethod = "DELETE"
	HttpPatch   HttpMethod = "PATCH"
	HttpHead    HttpMethod = "HEAD"
	HttpOptions HttpMethod = "OPTIONS"
)

// HTTPClient executes HTTP requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthorizationHeader is the header set by the authorization adapters.
const AuthorizationHeader = "Authorization"

// Authorization schemes.
const (
	// SchemeToken is the "token" scheme used by GitHub's OAuth2 endpoints.
	SchemeToken = "token"
	// SchemeBearer is the RFC 6750 scheme.
	SchemeBearer = "Bearer"
)

// HeaderSetter is implemented by builder-style request types whose header
// setter returns the builder, such as resty's *Request.
type HeaderSetter[B any] interface {
	SetHeader(key, value string) B
}

// AuthWith sets "Authorization: token <access_token>" on b and returns the
// builder for chaining.
func AuthWith[B HeaderSetter[B]](b B, t *Token) B {
	return AuthWithScheme(b, SchemeToken, t)
}

// AuthWithScheme is like AuthWith with a provider-specific scheme.
func AuthWithScheme[B HeaderSetter[B]](b B, scheme string, t *Token) B {
	return b.SetHeader(AuthorizationHeader, t.AuthorizationValue(scheme))
}

// AuthorizeRequest sets "Authorization: token <access_token>" on req and
// returns it. Nothing else on req is changed.
func AuthorizeRequest(req *http.Request, t *Token) *http.Request {
	return AuthorizeRequestWithScheme(req, SchemeToken, t)
}

// AuthorizeRequestWithScheme is like AuthorizeRequest with a provider-specific
// scheme.
func AuthorizeRequestWithScheme(req *http.Request, scheme string, t *Token) *http.Request {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set(AuthorizationHeader, t.AuthorizationValue(scheme))
	return req
}
