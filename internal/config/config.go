// Package config holds the yaml-file configuration: HTTP client behavior,
// download concurrency and the target-site selector table.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/azoradev/azoradown/internal/clients"
	"github.com/azoradev/azoradown/internal/scrape"
)

type Config struct {
	HTTP     HTTP        `yaml:"http"`
	Download Download    `yaml:"download"`
	Site     scrape.Site `yaml:"site"`
}

type HTTP struct {
	// Retries is the total number of attempts per request.
	Retries int `yaml:"retries"`
	// BackoffFactor in seconds; delay(k) = backoff_factor * 2^(k-1).
	BackoffFactor float64 `yaml:"backoff_factor"`
	RetryStatuses []int   `yaml:"retry_statuses"`
	// Timeout per request, in seconds.
	Timeout   float64 `yaml:"timeout"`
	UserAgent string  `yaml:"user_agent"`
}

type Download struct {
	ImageWorkers   int    `yaml:"image_workers"`
	CatalogWorkers int    `yaml:"catalog_workers"`
	Output         string `yaml:"output"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTP{
			Retries:       3,
			BackoffFactor: 0.3,
			RetryStatuses: []int{500, 502, 504},
			Timeout:       10,
			UserAgent:     clients.DefaultOptions().UserAgent,
		},
		Download: Download{
			ImageWorkers:   6,
			CatalogWorkers: 5,
			Output:         ".",
		},
		Site: scrape.DefaultSite(),
	}
}

// Load reads a yaml config over the defaults. A missing file is not an error,
// it just means defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FetchOptions converts the http section into fetch client options.
func (c *Config) FetchOptions() clients.Options {
	return clients.Options{
		Retries:       c.HTTP.Retries,
		BackoffFactor: time.Duration(c.HTTP.BackoffFactor * float64(time.Second)),
		RetryStatuses: c.HTTP.RetryStatuses,
		Timeout:       time.Duration(c.HTTP.Timeout * float64(time.Second)),
		UserAgent:     c.HTTP.UserAgent,
	}
}
