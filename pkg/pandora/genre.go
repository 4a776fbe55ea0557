package pandora

import (
	"context"
)

// GenreService provides genre browsing operations.
type GenreService struct {
	client *Client
}

// Categories returns the top-level genre categories.
func (g *GenreService) Categories(ctx context.Context) ([]GenreCategory, error) {
	var resp struct {
		Categories []GenreCategory `json:"categories"`
	}
	if err := g.client.call(ctx, "music/genres", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Stations returns the curated stations within one genre category.
func (g *GenreService) Stations(ctx context.Context, categoryToken string) ([]GenreStation, error) {
	var resp struct {
		Stations []GenreStation `json:"stations"`
	}
	body := map[string]any{"categoryToken": categoryToken}
	if err := g.client.call(ctx, "music/genreStations", body, &resp); err != nil {
		return nil, err
	}
	return resp.Stations, nil
}
