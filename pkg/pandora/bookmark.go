package pandora

import (
	"context"
)

// BookmarkService provides bookmark operations. Tracks and artists
// share one endpoint; the server tells them apart by the record the
// pandoraID resolves to.
type BookmarkService struct {
	client *Client
}

// List returns the listener's saved artists and tracks.
func (b *BookmarkService) List(ctx context.Context) (*Bookmarks, error) {
	var bookmarks Bookmarks
	if err := b.client.call(ctx, "bookmark/getAll", struct{}{}, &bookmarks); err != nil {
		return nil, err
	}
	return &bookmarks, nil
}

// Add bookmarks the track or artist identified by pandoraID.
func (b *BookmarkService) Add(ctx context.Context, pandoraID string) (*Bookmark, error) {
	var bookmark Bookmark
	body := map[string]any{"pandoraId": pandoraID}
	if err := b.client.call(ctx, "bookmark/add", body, &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Delete removes the bookmark for pandoraID.
func (b *BookmarkService) Delete(ctx context.Context, pandoraID string) error {
	body := map[string]any{"pandoraId": pandoraID}
	return b.client.call(ctx, "bookmark/delete", body, nil)
}
