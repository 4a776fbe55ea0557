package pandora

import (
	"context"
	"fmt"
)

// AuthService provides authentication operations.
type AuthService struct {
	client *Client
}

// Login authenticates the listener.
//
// Login performs two round trips: an HTTP HEAD to the service root to
// obtain the anti-forgery token from the csrftoken cookie, then a POST
// of the credentials with that token attached. Both session tokens are
// committed to the client only after the server confirms the login; a
// failed login leaves the client state unchanged.
//
// Example:
//
//	listener, err := client.Auth().Login(ctx, "bob@example.com", "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("logged in as", listener.Username)
func (a *AuthService) Login(ctx context.Context, username, password string) (*Listener, error) {
	c := a.client

	csrfToken, err := c.fetchCSRFToken(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"username":     username,
		"password":     password,
		"keepLoggedIn": true,
	}
	uri := c.baseURL + apiPrefix + "auth/login"
	headers := map[string]string{headerCSRFToken: csrfToken}

	c.logDebugf("pandora: calling auth/login")
	resp, err := c.session.Post(ctx, uri, body, headers)
	if err != nil {
		return nil, err
	}

	var listener Listener
	if err := resp.JSON(&listener); err != nil {
		return nil, fmt.Errorf("pandora: failed to decode login response: %w", err)
	}

	c.csrfToken = csrfToken
	c.authToken = listener.AuthToken
	return &listener, nil
}

// Logout ends the session and clears both session tokens.
func (a *AuthService) Logout(ctx context.Context) error {
	c := a.client
	if err := c.call(ctx, "auth/logout", struct{}{}, nil); err != nil {
		return err
	}
	c.csrfToken = ""
	c.authToken = ""
	return nil
}

// fetchCSRFToken issues a HEAD to the service root and reads the
// csrftoken cookie the response leaves in the session jar.
func (c *Client) fetchCSRFToken(ctx context.Context) (string, error) {
	if _, err := c.session.Head(ctx, c.baseURL); err != nil {
		return "", err
	}
	token, ok := c.session.CookieValue(c.baseURL, csrfCookieName)
	if !ok || token == "" {
		return "", ErrMissingCSRF
	}
	return token, nil
}
