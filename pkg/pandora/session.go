package pandora

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
)

// supportedProxySchemes lists the proxy URI schemes a Session accepts.
// The service itself is HTTPS-only, so a CONNECT-capable or SOCKS proxy
// is required in practice.
var supportedProxySchemes = []string{"http", "https", "socks5", "socks5h"}

// Session is a thin HTTP transport wrapper. It owns a cookie jar so
// that cookies received on any response are replayed on later requests
// to the same origin, and an optional proxy setting.
//
// A Session distinguishes two failure kinds: a non-2xx response
// carrying a structured API error body becomes an *Error, while a
// network-level failure becomes a *TransportError.
type Session struct {
	client    *http.Client
	transport *http.Transport
	jar       http.CookieJar
	userAgent string
	proxy     string
}

// Response holds the pieces of an HTTP response a caller needs: the
// status code, the headers, and the raw body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("pandora: response has no body")
	}
	return json.Unmarshal(r.Body, v)
}

// NewSession creates a Session with a fresh cookie jar and the
// environment's default proxy settings.
func NewSession() (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("pandora: failed to create cookie jar: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &Session{
		client: &http.Client{
			Jar:       jar,
			Transport: transport,
		},
		transport: transport,
		jar:       jar,
	}, nil
}

// Head sends an HTTP HEAD request. Cookies in the response are saved
// to the session.
func (s *Session) Head(ctx context.Context, uri string) (*Response, error) {
	return s.do(ctx, http.MethodHead, uri, nil, nil)
}

// Get sends an HTTP GET request.
func (s *Session) Get(ctx context.Context, uri string) (*Response, error) {
	return s.do(ctx, http.MethodGet, uri, nil, nil)
}

// Post sends an HTTP POST request. A non-nil jsonBody is encoded as
// JSON; headers are applied on top of the session defaults.
func (s *Session) Post(ctx context.Context, uri string, jsonBody any, headers map[string]string) (*Response, error) {
	return s.do(ctx, http.MethodPost, uri, jsonBody, headers)
}

func (s *Session) do(ctx context.Context, method, uri string, jsonBody any, headers map[string]string) (*Response, error) {
	var reader io.Reader
	if jsonBody != nil {
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, fmt.Errorf("pandora: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, fmt.Errorf("pandora: failed to create request: %w", err)
	}
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method, URL: uri, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method, URL: uri, Err: err}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newErrorFromResponse(response)
	}
	return response, nil
}

// SetUserAgent sets the User-Agent header sent on every request.
func (s *Session) SetUserAgent(userAgent string) {
	s.userAgent = userAgent
}

// SetProxy routes all session traffic through the given proxy URI.
// An empty string restores the environment default. An unsupported
// scheme fails before any request is sent.
func (s *Session) SetProxy(rawurl string) error {
	if rawurl == "" {
		s.transport.Proxy = http.ProxyFromEnvironment
		s.proxy = ""
		return nil
	}

	u, err := url.Parse(rawurl)
	if err != nil {
		return &Error{Message: "invalid proxy URI", Code: -1, ErrorString: err.Error()}
	}
	if !slices.Contains(supportedProxySchemes, u.Scheme) {
		return &Error{
			Message:     "invalid proxy URI",
			Code:        -1,
			ErrorString: fmt.Sprintf("unsupported proxy scheme %q", u.Scheme),
		}
	}

	s.transport.Proxy = http.ProxyURL(u)
	s.proxy = rawurl
	return nil
}

// Proxy reports the proxy URI configured with SetProxy; empty means
// the environment default is in effect.
func (s *Session) Proxy() string {
	return s.proxy
}

// CookieValue returns the value of a named cookie the session would
// send to the given URL.
func (s *Session) CookieValue(rawurl, name string) (string, bool) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", false
	}
	for _, c := range s.jar.Cookies(u) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}
