package pandora

import (
	"context"
)

// PlaylistService provides playlist fragment and playback state
// operations.
type PlaylistService struct {
	client *Client
}

const (
	fragmentReasonStart  = "Start"
	fragmentReasonNormal = "Normal"
)

// Fragment fetches the next batch of playable tracks for a station.
// Set isStart when the station is being tuned in fresh rather than
// continued. The audio format requested is the one the client was
// configured with.
func (p *PlaylistService) Fragment(ctx context.Context, stationID string, isStart bool) ([]Track, error) {
	reason := fragmentReasonNormal
	if isStart {
		reason = fragmentReasonStart
	}
	body := map[string]any{
		"stationId":             stationID,
		"isStationStart":        isStart,
		"fragmentRequestReason": reason,
		"audioFormat":           p.client.audioFormat,
	}
	var resp struct {
		Tracks []Track `json:"tracks"`
	}
	if err := p.client.call(ctx, "playlist/getFragment", body, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// PlaybackPaused tells the service playback stopped. The server uses
// this to pause ad and skip accounting.
func (p *PlaylistService) PlaybackPaused(ctx context.Context) error {
	return p.client.call(ctx, "station/playbackPaused", struct{}{}, nil)
}

// PlaybackResumed tells the service playback continued.
func (p *PlaylistService) PlaybackResumed(ctx context.Context) error {
	return p.client.call(ctx, "station/playbackResumed", struct{}{}, nil)
}
