package pandora

import (
	"encoding/json"
	"sort"
)

// Art is a set of renditions of the same image at different pixel
// sizes. Sizes are unique and kept in ascending order; lookups never
// mutate the set. The zero value is an empty set.
type Art struct {
	sizes []int
	urls  map[int]string
}

// artRendition is the wire form of one entry.
type artRendition struct {
	URL  string `json:"url"`
	Size int    `json:"size"`
}

// NewArt builds an Art set from a size→URL mapping.
func NewArt(urls map[int]string) Art {
	if len(urls) == 0 {
		return Art{}
	}
	sizes := make([]int, 0, len(urls))
	m := make(map[int]string, len(urls))
	for size, u := range urls {
		sizes = append(sizes, size)
		m[size] = u
	}
	sort.Ints(sizes)
	return Art{sizes: sizes, urls: m}
}

// Empty reports whether no renditions are available.
func (a Art) Empty() bool {
	return len(a.sizes) == 0
}

// Sizes returns the available pixel sizes in ascending order.
func (a Art) Sizes() []int {
	out := make([]int, len(a.sizes))
	copy(out, a.sizes)
	return out
}

// URLForSize returns the URL stored for an exact pixel size, or "" if
// that size is not available.
func (a Art) URLForSize(size int) string {
	return a.urls[size]
}

// BestURLForSize returns the URL of the rendition nearest the
// requested size: an exact match wins, otherwise the smallest stored
// size that is >= the request, or the largest stored size when the
// request exceeds every entry. An empty set returns "".
func (a Art) BestURLForSize(size int) string {
	if len(a.sizes) == 0 {
		return ""
	}
	i := sort.SearchInts(a.sizes, size)
	if i == len(a.sizes) {
		i = len(a.sizes) - 1
	}
	return a.urls[a.sizes[i]]
}

// UnmarshalJSON decodes the wire form, a list of {url, size} objects.
func (a *Art) UnmarshalJSON(data []byte) error {
	var renditions []artRendition
	if err := json.Unmarshal(data, &renditions); err != nil {
		return err
	}
	urls := make(map[int]string, len(renditions))
	for _, r := range renditions {
		urls[r.Size] = r.URL
	}
	*a = NewArt(urls)
	return nil
}

// MarshalJSON encodes the set back into its wire form, sizes
// ascending.
func (a Art) MarshalJSON() ([]byte, error) {
	renditions := make([]artRendition, 0, len(a.sizes))
	for _, size := range a.sizes {
		renditions = append(renditions, artRendition{URL: a.urls[size], Size: size})
	}
	return json.Marshal(renditions)
}
