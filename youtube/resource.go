package youtube

// Resource is a YouTube Data API resource kind that can be proxied.
type Resource string

const (
	// Search is the search.list resource.
	Search Resource = "search"

	// Videos is the videos.list resource.
	Videos Resource = "videos"

	// Channels is the channels.list resource.
	Channels Resource = "channels"

	// Playlists is the playlists.list resource.
	Playlists Resource = "playlists"
)

// Resources is the closed set of resource kinds the proxy supports.
var Resources = []Resource{Search, Videos, Channels, Playlists}

// ParseResource returns the Resource named by s, or ErrUnsupportedResource if
// s does not name a supported resource. Names are case-sensitive.
func ParseResource(s string) (Resource, error) {
	for _, r := range Resources {
		if string(r) == s {
			return r, nil
		}
	}

	return "", ErrUnsupportedResource
}
