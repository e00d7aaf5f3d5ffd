package storage

// Config holds configuration for the storage provider.
type Config struct {
	// SecretID is the access key ID for authentication.
	SecretID string `mapstructure:"secret_id" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Region is the bucket location (e.g., ap-nanjing).
	Region string `mapstructure:"region" default:"ap-nanjing"`
	// Bucket is the short bucket name, without the account id suffix.
	Bucket string `mapstructure:"bucket" default:""`
	// AccountID is the numeric account id (APPID) appended to bucket names.
	// When empty it is fetched from the service on demand.
	AccountID string `mapstructure:"account_id" default:""`
	// Endpoint overrides the derived per-region service endpoint.
	// Useful for pointing at a local S3-compatible stand-in.
	Endpoint string `mapstructure:"endpoint" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// EndpointForRegion returns the service host serving one region, e.g.
// cos.ap-nanjing.myqcloud.com.
func EndpointForRegion(region string) string {
	return "cos." + region + ".myqcloud.com"
}
