package pandora

import (
	"context"
)

// MusicService provides catalog search and lookup operations.
type MusicService struct {
	client *Client
}

const defaultSearchCount = 20

// Search queries the catalog. The query is truncated to the service's
// 64-character budget; a count of 0 or less requests the default
// number of results.
func (m *MusicService) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	if count <= 0 {
		count = defaultSearchCount
	}
	body := map[string]any{
		"query": ellipsize(query, maxNameLength),
		"count": count,
	}
	var resp struct {
		Results []SearchResult `json:"results"`
	}
	if err := m.client.call(ctx, "music/search", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Artist looks up an artist by its SEO token, as found on search
// results and track records.
func (m *MusicService) Artist(ctx context.Context, seoToken string) (*ArtistInfo, error) {
	var info ArtistInfo
	body := map[string]any{"token": seoToken}
	if err := m.client.call(ctx, "music/artist", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Album looks up an album by its SEO token.
func (m *MusicService) Album(ctx context.Context, seoToken string) (*AlbumInfo, error) {
	var info AlbumInfo
	body := map[string]any{"token": seoToken}
	if err := m.client.call(ctx, "music/album", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Track looks up a track by its SEO token.
func (m *MusicService) Track(ctx context.Context, seoToken string) (*TrackInfo, error) {
	var info TrackInfo
	body := map[string]any{"token": seoToken}
	if err := m.client.call(ctx, "music/track", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Lyrics fetches the lyric sheet referenced by a track record. Set
// nonExplicit to request the clean variant when one exists.
func (m *MusicService) Lyrics(ctx context.Context, trackUID, lyricID string, nonExplicit bool) (*Lyrics, error) {
	var lyrics Lyrics
	body := map[string]any{
		"trackUid":    trackUID,
		"lyricId":     lyricID,
		"nonExplicit": nonExplicit,
	}
	if err := m.client.call(ctx, "music/lyrics", body, &lyrics); err != nil {
		return nil, err
	}
	return &lyrics, nil
}
