package cfg

type Cfg struct {
	// Server configuration
	Host string
	Port string

	// Upstream provider configuration
	APIKey    string
	UserAgent string

	// Logging configuration
	Debug   bool
	Verbose bool

	// Application metadata
	Version string
}
