package youtube

// Whitelist maps each supported resource to the set of query parameter names
// that may be forwarded for it. A Whitelist is read-only once built and may be
// shared between goroutines.
type Whitelist map[Resource]map[string]struct{}

// NewWhitelist builds a Whitelist from lists of parameter names.
func NewWhitelist(names map[Resource][]string) Whitelist {
	w := Whitelist{}

	for r, list := range names {
		set := make(map[string]struct{}, len(list))
		for _, n := range list {
			set[n] = struct{}{}
		}
		w[r] = set
	}

	return w
}

// Allows returns true if the parameter name may be forwarded for r.
func (w Whitelist) Allows(r Resource, name string) bool {
	_, ok := w[r][name]
	return ok
}

// Filter validates resource against the whitelist and returns the parameters
// from query that may be forwarded for it.
//
// Parameters not in the whitelist and empty values are dropped silently. The
// returned Params keep the order of query. Filter never adds the API key; see
// Params.WithKey.
func (w Whitelist) Filter(resource string, query Query) (Resource, Params, error) {
	r, err := ParseResource(resource)
	if err != nil {
		return "", nil, err
	}

	allowed, ok := w[r]
	if !ok {
		return "", nil, ErrUnsupportedResource
	}

	var params Params
	for _, name := range query.Names() {
		if _, ok := allowed[name]; !ok {
			continue
		}

		for _, value := range query.Get(name) {
			if value != "" {
				params = append(params, Param{name, value})
			}
		}
	}

	if len(params) == 0 {
		return "", nil, ErrNoAllowedParameters
	}

	return r, params, nil
}

// DefaultWhitelist is the parameter whitelist for the YouTube Data API v3
// list operations.
var DefaultWhitelist = NewWhitelist(map[Resource][]string{
	Search: {
		"channelId",
		"channelType",
		"eventType",
		"forContentOwner",
		"forDeveloper",
		"forMine",
		"location",
		"locationRadius",
		"maxResults",
		"onBehalfOfContentOwner",
		"order",
		"pageToken",
		"part",
		"publishedAfter",
		"publishedBefore",
		"q",
		"regionCode",
		"relatedToVideoId",
		"relevanceLanguage",
		"safeSearch",
		"topicId",
		"type",
		"videoCaption",
		"videoCategoryId",
		"videoDefinition",
		"videoDimension",
		"videoDuration",
		"videoEmbeddable",
		"videoLicense",
		"videoSyndicated",
		"videoType",
		"fields",
	},
	Videos: {
		"chart",
		"hl",
		"id",
		"locale",
		"maxHeight",
		"maxResults",
		"maxWidth",
		"myRating",
		"pageToken",
		"part",
		"regionCode",
		"videoCategoryId",
		"fields",
	},
	Channels: {
		"categoryId",
		"fields",
		"forUsername",
		"hl",
		"id",
		"locale",
		"managedByMe",
		"maxResults",
		"mine",
		"mySubscribers",
		"onBehalfOfContentOwner",
		"pageToken",
		"part",
	},
	Playlists: {
		"channelId",
		"fields",
		"hl",
		"id",
		"maxResults",
		"mine",
		"onBehalfOfContentOwner",
		"pageToken",
		"part",
	},
})
