// Package pandora provides a client for the Pandora REST API.
//
// This package implements the JSON API used by the Pandora web player
// for authentication, station management, playlists, search, and
// catalog lookups. It is designed to be used as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/pandora/pkg/pandora"
//
//	client, err := pandora.NewClient(pandora.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	listener, err := client.Auth().Login(ctx, "bob@example.com", "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stations, err := client.Stations().List(ctx)
package pandora

import (
	"context"
	"fmt"
)

const (
	// DefaultBaseURL is the origin the web API lives on.
	DefaultBaseURL = "https://www.pandora.com"

	// DefaultAudioFormat is requested for playlist fragments unless
	// the client is configured otherwise.
	DefaultAudioFormat = "aacplus"

	apiPrefix = "/api/v1/"

	headerCSRFToken = "X-CsrfToken"
	headerAuthToken = "X-AuthToken"

	csrfCookieName = "csrftoken"
)

// Config holds client configuration.
type Config struct {
	Session     *Session // Optional: transport session (a fresh one is created if nil)
	BaseURL     string   // Optional: service origin (defaults to DefaultBaseURL, used for testing)
	UserAgent   string   // Optional: User-Agent header for all requests
	AudioFormat string   // Optional: audio format for playlist fragments (defaults to DefaultAudioFormat)
	Logger      Logger   // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Pandora API operations.
//
// A Client holds the session tokens obtained by Login (the CSRF token
// and the auth token); both start empty and are written only by Login
// and Logout. All other state lives in the transport session's cookie
// jar. The client performs no retries: every method is exactly one
// network round trip, except Login which needs the CSRF-fetch step
// first.
type Client struct {
	session     *Session
	baseURL     string
	audioFormat string
	logger      Logger

	csrfToken string
	authToken string

	auth      *AuthService
	stations  *StationService
	playlists *PlaylistService
	music     *MusicService
	genres    *GenreService
	bookmarks *BookmarkService
}

// NewClient creates a new Pandora API client.
func NewClient(cfg Config) (*Client, error) {
	session := cfg.Session
	if session == nil {
		var err error
		session, err = NewSession()
		if err != nil {
			return nil, err
		}
	}
	if cfg.UserAgent != "" {
		session.SetUserAgent(cfg.UserAgent)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	audioFormat := cfg.AudioFormat
	if audioFormat == "" {
		audioFormat = DefaultAudioFormat
	}

	c := &Client{
		session:     session,
		baseURL:     baseURL,
		audioFormat: audioFormat,
		logger:      cfg.Logger,
	}

	c.auth = &AuthService{client: c}
	c.stations = &StationService{client: c}
	c.playlists = &PlaylistService{client: c}
	c.music = &MusicService{client: c}
	c.genres = &GenreService{client: c}
	c.bookmarks = &BookmarkService{client: c}

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Stations returns the station service.
func (c *Client) Stations() *StationService {
	return c.stations
}

// Playlists returns the playlist service.
func (c *Client) Playlists() *PlaylistService {
	return c.playlists
}

// Music returns the catalog service.
func (c *Client) Music() *MusicService {
	return c.music
}

// Genres returns the genre browsing service.
func (c *Client) Genres() *GenreService {
	return c.genres
}

// Bookmarks returns the bookmark service.
func (c *Client) Bookmarks() *BookmarkService {
	return c.bookmarks
}

// Session returns the transport session the client was built on.
func (c *Client) Session() *Session {
	return c.session
}

// AuthToken returns the auth token from the last successful login, or
// "" if the client is not logged in.
func (c *Client) AuthToken() string {
	return c.authToken
}

// call performs one POST to a fixed API method path with the session
// tokens attached as headers, and decodes the JSON response into out.
// A nil out discards the response body.
func (c *Client) call(ctx context.Context, method string, body, out any) error {
	uri := c.baseURL + apiPrefix + method
	headers := map[string]string{
		headerCSRFToken: c.csrfToken,
		headerAuthToken: c.authToken,
	}

	c.logDebugf("pandora: calling %s", method)
	resp, err := c.session.Post(ctx, uri, body, headers)
	if err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := resp.JSON(out); err != nil {
		return fmt.Errorf("pandora: failed to decode %s response: %w", method, err)
	}
	return nil
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
