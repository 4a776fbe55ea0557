package pandora

import (
	"context"
)

// StationService provides station management and feedback operations.
type StationService struct {
	client *Client
}

const stationPageSize = 250

// List returns the listener's stations.
func (s *StationService) List(ctx context.Context) ([]Station, error) {
	var resp struct {
		Stations      []Station `json:"stations"`
		TotalStations int       `json:"totalStations"`
	}
	body := map[string]any{"pageSize": stationPageSize}
	if err := s.client.call(ctx, "station/getStations", body, &resp); err != nil {
		return nil, err
	}
	return resp.Stations, nil
}

// Details returns the full record for one station, including its
// seeds, feedback counts, and description.
func (s *StationService) Details(ctx context.Context, stationID string) (*StationInfo, error) {
	var info StationInfo
	body := map[string]any{"stationId": stationID}
	if err := s.client.call(ctx, "station/getStationDetails", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Create makes a new station from a seed. The pandoraID identifies the
// artist, track, or genre station to originate from, typically taken
// from a search result.
func (s *StationService) Create(ctx context.Context, pandoraID string) (*Station, error) {
	var station Station
	body := map[string]any{"pandoraId": pandoraID}
	if err := s.client.call(ctx, "station/createStation", body, &station); err != nil {
		return nil, err
	}
	return &station, nil
}

// Remove deletes a station.
func (s *StationService) Remove(ctx context.Context, stationID string) error {
	body := map[string]any{"stationId": stationID}
	return s.client.call(ctx, "station/removeStation", body, nil)
}

// Update renames a station and sets its description. The name is
// truncated to 64 characters and the description to 4000, each with a
// trailing ellipsis when cut.
func (s *StationService) Update(ctx context.Context, stationID, name, description string) (*Station, error) {
	var station Station
	body := map[string]any{
		"stationId":   stationID,
		"name":        ellipsize(name, maxNameLength),
		"description": ellipsize(description, maxDescriptionLength),
	}
	if err := s.client.call(ctx, "station/updateStation", body, &station); err != nil {
		return nil, err
	}
	return &station, nil
}

// TransformShared converts a shared station into a personal station
// the listener can modify.
func (s *StationService) TransformShared(ctx context.Context, stationID string) (*Station, error) {
	var station Station
	body := map[string]any{"stationId": stationID}
	if err := s.client.call(ctx, "station/transformShared", body, &station); err != nil {
		return nil, err
	}
	return &station, nil
}

// Recommendations returns artists and genre stations suggested as
// seeds for new stations.
func (s *StationService) Recommendations(ctx context.Context) (*StationRecommendations, error) {
	var recs StationRecommendations
	if err := s.client.call(ctx, "search/getStationRecommendations", struct{}{}, &recs); err != nil {
		return nil, err
	}
	return &recs, nil
}

// AddFeedback records a thumbs-up (positive) or thumbs-down rating for
// the track identified by trackToken.
func (s *StationService) AddFeedback(ctx context.Context, trackToken string, positive bool) (*Feedback, error) {
	var feedback Feedback
	body := map[string]any{
		"trackToken": trackToken,
		"isPositive": positive,
	}
	if err := s.client.call(ctx, "station/addFeedback", body, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// DeleteFeedback removes a previously recorded rating.
func (s *StationService) DeleteFeedback(ctx context.Context, feedbackID string, positive bool) error {
	body := map[string]any{
		"feedbackId": feedbackID,
		"isPositive": positive,
	}
	return s.client.call(ctx, "station/deleteFeedback", body, nil)
}

// Feedback returns one page of a station's rating history. A pageSize
// of 0 or less requests the default page size.
func (s *StationService) Feedback(ctx context.Context, stationID string, positive bool, pageSize, startIndex int) (*FeedbackPage, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	var page FeedbackPage
	body := map[string]any{
		"stationId":  stationID,
		"positive":   positive,
		"pageSize":   pageSize,
		"startIndex": startIndex,
	}
	if err := s.client.call(ctx, "station/getStationFeedback", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RateTrack reconciles a track's rating with the requested one,
// issuing the minimum number of calls:
//
//   - the requested rating equals the current one: no call
//   - RatingNone when the track has no feedback record: no call
//   - RatingNone with an existing feedback record: one DeleteFeedback
//   - RatingLoved or RatingBanned: one AddFeedback with isPositive set
//     accordingly
//
// The returned Feedback is non-nil only when an AddFeedback call was
// made. The track value itself is not modified; refetch the playlist
// or station feedback to observe the new state.
func (s *StationService) RateTrack(ctx context.Context, track *Track, rating Rating) (*Feedback, error) {
	if track.Rating == rating {
		return nil, nil
	}
	if rating == RatingNone {
		if track.FeedbackID == "" {
			return nil, nil
		}
		return nil, s.DeleteFeedback(ctx, track.FeedbackID, track.Rating == RatingLoved)
	}
	return s.AddFeedback(ctx, track.TrackToken, rating == RatingLoved)
}
