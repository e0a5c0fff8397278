package assets

// Document is a decoded JSON or YAML document.
type Document map[string]any

// LoadRequest describes a document to load.
type LoadRequest struct {
	// Name is the asset path within the source.
	Name string `json:"name"`
	// Source is the registered source id; empty means the default source.
	Source string `json:"source"`
	// Format is "json" or "yaml"; empty infers it from the name's extension.
	Format string `json:"format"`
}

// LoadResponse identifies the handle a load resolved to.
type LoadResponse struct {
	Handle uint64 `json:"handle"`
	State  string `json:"state"`
}

// DocumentStatus reports one handle.
type DocumentStatus struct {
	Handle uint64   `json:"handle"`
	State  string   `json:"state"`
	Error  string   `json:"error,omitempty"`
	Data   Document `json:"data,omitempty"`
}

// Summary reports loader-wide counters.
type Summary struct {
	Completion string   `json:"completion"`
	Queued     int      `json:"queued"`
	Finished   int      `json:"finished"`
	Failed     int      `json:"failed"`
	Cached     int      `json:"cached"`
	HotReload  bool     `json:"hot_reload"`
	Sources    []string `json:"sources"`
	Errors     []string `json:"errors,omitempty"`
}
