// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/accountd/internal/flagx"
)

// Config holds runtime settings for the CLI client.
type Config struct {
	// ServerAddr is the base URL of the account service HTTP API.
	ServerAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:5000"
}

// parseFlags populates Config from command-line flags (-a server address).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddr, "a", config.ServerAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// LoadConfig builds a Config from defaults, environment, and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	if v, ok := os.LookupEnv("ACCOUNTD_ADDR"); ok && v != "" {
		cfg.ServerAddr = v
	}
	parseFlags(cfg)
	return cfg
}
