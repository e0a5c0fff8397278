package storage

// Config holds configuration for the object storage asset source.
type Config struct {
	// Enabled registers the object store as an asset source.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// SourceID is the identifier the object store is registered under.
	SourceID string `mapstructure:"source_id" default:"remote"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket assets are read from.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Prefix is prepended to every asset name before the object lookup.
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
