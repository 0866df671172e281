package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Host string `short:"H" long:"host" env:"HOST" default:"localhost" description:"Hostname to bind to"`
	Port string `short:"P" long:"port" env:"PORT" default:"8080" description:"Port to listen on"`

	// Upstream provider configuration
	APIKey    string `short:"X" long:"api-key" env:"NEWS2RSS_API_KEY" description:"News API authentication key"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"news2rss/1.0" description:"User agent string for upstream requests"`

	// Logging configuration
	Debug   bool `short:"d" long:"debug" env:"DEBUG" description:"Display debug messages"`
	Verbose bool `short:"v" long:"verbose" env:"VERBOSE" description:"Display more messages"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Host:      raw.Host,
		Port:      raw.Port,
		APIKey:    raw.APIKey,
		UserAgent: raw.UserAgent,
		Debug:     raw.Debug,
		Verbose:   raw.Verbose,
		Version:   GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
