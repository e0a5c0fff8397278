package loader

// Config holds configuration for the asset loader.
type Config struct {
	// Workers bounds concurrent imports. Zero means one per CPU.
	Workers int `mapstructure:"workers" default:"0"`
	// HotReload asks formats to produce reload records.
	HotReload bool `mapstructure:"hot_reload" default:"true"`
	// Directory is the root of the default directory source.
	Directory string `mapstructure:"directory" default:"./assets"`
	// ReloadIntervalMS is how often the serve command scans for changed assets.
	ReloadIntervalMS int `mapstructure:"reload_interval_ms" default:"1000"`
}
