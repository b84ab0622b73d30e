package netbox

// Config holds configuration for the NetBox API client.
type Config struct {
	// URL is the base URL of the NetBox instance (without /api).
	URL string `mapstructure:"url" default:"https://netbox.example.com"`
	// Token is the API token. When empty the token is read from TokenFile.
	Token string `mapstructure:"token" default:""`
	// TokenFile is the secret file holding the API token on its first line.
	TokenFile string `mapstructure:"token_file" default:".token"`
	// AuthScheme is the Authorization header scheme (Token or Bearer).
	AuthScheme string `mapstructure:"auth_scheme" default:"Token"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PageSize is the number of records requested per page.
	PageSize int `mapstructure:"page_size" default:"1000"`
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64 `mapstructure:"rate_limit" default:"0"`
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
}
