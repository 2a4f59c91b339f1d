package config

import "time"

// Config holds runtime settings for the blog client.
//
// Fields:
//   - APIBaseURL: root of the backend HTTP API; endpoint paths are relative
//     to it.
//   - RequestTimeout: per-request HTTP timeout. Zero leaves requests
//     unbounded, matching the original client behavior.
//   - StorePath: path of the local settings database (token, theme).
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	StorePath           string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/"
	c.RequestTimeout = 0
	c.StorePath = "blogcli.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
