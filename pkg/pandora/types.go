package pandora

// Rating is a listener's feedback state for a track.
type Rating int

const (
	RatingNone Rating = iota
	RatingLoved
	RatingBanned
)

func (r Rating) String() string {
	switch r {
	case RatingLoved:
		return "loved"
	case RatingBanned:
		return "banned"
	default:
		return "none"
	}
}

// MusicIdentity groups the identifiers every catalog record carries.
type MusicIdentity struct {
	MusicID   string `json:"musicId"`
	PandoraID string `json:"pandoraId"`
}

// CatalogRefs groups the artist and album references shared by track
// records.
type CatalogRefs struct {
	ArtistName     string `json:"artistName"`
	ArtistSeoToken string `json:"artistSeoToken"`
	AlbumTitle     string `json:"albumTitle"`
	AlbumSeoToken  string `json:"albumSeoToken"`
}

// Listener is the account information returned by Login.
type Listener struct {
	AuthToken     string `json:"authToken"`
	ListenerID    string `json:"listenerId"`
	Username      string `json:"username"`
	Webname       string `json:"webname"`
	HiFiAvailable bool   `json:"hifiAvailable"`
}

// Track is one playable track from a playlist fragment.
type Track struct {
	MusicIdentity
	CatalogRefs
	Title         string  `json:"title"`
	TrackSeoToken string  `json:"trackSeoToken"`
	StationID     string  `json:"stationId"`
	TrackToken    string  `json:"trackToken"`
	AudioURL      string  `json:"audioURL"`
	AudioEncoding string  `json:"audioEncoding"`
	FileGain      float64 `json:"fileGain"`
	TrackLength   int     `json:"trackLength"`
	Rating        Rating  `json:"rating"`
	AllowFeedback bool    `json:"allowFeedback"`
	FeedbackID    string  `json:"feedbackId"`
	LyricID       string  `json:"lyricId"`
	Art           Art     `json:"art"`
}

// TrackInfo is the catalog record for a track, independent of any
// station or playlist.
type TrackInfo struct {
	MusicIdentity
	CatalogRefs
	Title         string `json:"title"`
	TrackSeoToken string `json:"trackSeoToken"`
	TrackLength   int    `json:"trackLength"`
	LyricID       string `json:"lyricId"`
	Art           Art    `json:"art"`
}

// ArtistInfo is the catalog record for an artist.
type ArtistInfo struct {
	MusicIdentity
	Name           string          `json:"name"`
	SeoToken       string          `json:"seoToken"`
	Bio            string          `json:"bio"`
	Art            Art             `json:"art"`
	SimilarArtists []SimilarArtist `json:"similarArtists"`
}

// SimilarArtist is an artist related to the one looked up.
type SimilarArtist struct {
	MusicIdentity
	Name     string `json:"name"`
	SeoToken string `json:"seoToken"`
	Art      Art    `json:"art"`
}

// AlbumInfo is the catalog record for an album.
type AlbumInfo struct {
	MusicIdentity
	Title          string       `json:"title"`
	SeoToken       string       `json:"seoToken"`
	ArtistName     string       `json:"artistName"`
	ArtistSeoToken string       `json:"artistSeoToken"`
	ReleaseDate    string       `json:"releaseDate"`
	Art            Art          `json:"art"`
	Tracks         []AlbumTrack `json:"tracks"`
}

// AlbumTrack is one track entry within an AlbumInfo.
type AlbumTrack struct {
	MusicIdentity
	Title         string `json:"title"`
	TrackSeoToken string `json:"trackSeoToken"`
	TrackNumber   int    `json:"trackNumber"`
	TrackLength   int    `json:"trackLength"`
}

// StationFlags groups the boolean properties shared by station records.
type StationFlags struct {
	IsThumbprint bool `json:"isThumbprint"`
	IsShuffle    bool `json:"isShuffle"`
	IsShared     bool `json:"isShared"`
	AllowDelete  bool `json:"allowDelete"`
	AllowRename  bool `json:"allowRename"`
}

// Station is one entry from the station list.
type Station struct {
	StationFlags
	StationID string `json:"stationId"`
	Name      string `json:"name"`
	Art       Art    `json:"art"`
}

// StationInfo is the detailed record for a single station.
type StationInfo struct {
	StationFlags
	StationID             string `json:"stationId"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	Seeds                 []Seed `json:"seeds"`
	PositiveFeedbackCount int    `json:"positiveFeedbackCount"`
	NegativeFeedbackCount int    `json:"negativeFeedbackCount"`
	Art                   Art    `json:"art"`
}

// Seed is a track, artist, or genre a station's playlist algorithm is
// tuned by. Seeds are opaque to this client.
type Seed struct {
	MusicIdentity
	Name string `json:"name"`
	Type string `json:"type"`
	Art  Art    `json:"art"`
}

// SearchResult is one match from a catalog search. Type tells the
// record kind apart ("artist", "track", "album", "station").
type SearchResult struct {
	MusicIdentity
	Type       string `json:"type"`
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	SeoToken   string `json:"seoToken"`
	Art        Art    `json:"art"`
}

// StationRecommendation is a suggested station seed.
type StationRecommendation struct {
	MusicIdentity
	Name string `json:"name"`
	Art  Art    `json:"art"`
}

// StationRecommendations groups the recommendation lists the service
// returns.
type StationRecommendations struct {
	Artists       []StationRecommendation `json:"artists"`
	GenreStations []StationRecommendation `json:"genreStations"`
}

// GenreCategory is one top-level entry from genre browsing.
type GenreCategory struct {
	Name  string `json:"name"`
	Token string `json:"token"`
	Art   Art    `json:"art"`
}

// GenreStation is a curated station within a genre category.
type GenreStation struct {
	MusicIdentity
	Name        string `json:"name"`
	Description string `json:"description"`
	Art         Art    `json:"art"`
}

// Feedback is one thumbs-up or thumbs-down record.
type Feedback struct {
	MusicIdentity
	FeedbackID string `json:"feedbackId"`
	StationID  string `json:"stationId"`
	SongTitle  string `json:"songTitle"`
	ArtistName string `json:"artistName"`
	AlbumTitle string `json:"albumTitle"`
	IsPositive bool   `json:"isPositive"`
	Art        Art    `json:"art"`
}

// FeedbackPage is one page of a station's feedback listing.
type FeedbackPage struct {
	Feedback []Feedback `json:"feedback"`
	Total    int        `json:"total"`
}

// Bookmark is a saved track or artist.
type Bookmark struct {
	MusicIdentity
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	Art        Art    `json:"art"`
}

// Bookmarks groups the listener's saved artists and tracks.
type Bookmarks struct {
	Artists []Bookmark `json:"artists"`
	Tracks  []Bookmark `json:"tracks"`
}

// Lyrics is the lyric sheet for a track.
type Lyrics struct {
	LyricID     string   `json:"lyricId"`
	Lines       []string `json:"lines"`
	Credits     []string `json:"credits"`
	NonExplicit bool     `json:"nonExplicit"`
}
