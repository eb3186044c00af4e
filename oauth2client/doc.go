// Package oauth2client implements the client side of the OAuth2 authorization
// code grant.
//
// A Config builds the URL the end user is sent to, exchanges the code the
// provider hands back for a Token, and the Token is then attached to outbound
// requests with AuthorizeRequest, AuthWith or an APIClient. Token storage,
// refresh, PKCE and the redirect callback itself are left to the caller.
//
// Token responses are expected to be form encoded, as GitHub's are, and the
// Authorization header uses GitHub's "token" scheme unless another is chosen.
//
// Usage:
//
//	config := oauth2client.MustNewConfig(
//		"your_client_id",
//		"your_client_secret",
//		"https://github.com/login/oauth/authorize",
//		"https://github.com/login/oauth/access_token",
//		oauth2client.WithScopes("repo", "gist"),
//	)
//
//	// Send the user here, keeping state to check on the way back
//	redirect := config.AuthorizeURL(state)
//
//	// Trade the code from the callback for a token
//	token, err := config.Exchange(ctx, code)
//
//	// Authorize a request
//	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com/user", nil)
//	oauth2client.AuthorizeRequest(req, token)
//
//	// Or make calls through an APIClient
//	client := oauth2client.NewAPIClient(token, "https://api.github.com")
//	response, statusCode, err := client.CallAPI(ctx, oauth2client.HttpGet, "/user", nil, nil)
package oauth2client
