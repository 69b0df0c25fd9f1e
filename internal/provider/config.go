package provider

import (
	"slices"

	"github.com/maxbolgarin/errm"
)

type ProviderType string

// SupportedProviderTypes defines the supported hosting provider types
const (
	GitLab    ProviderType = "gitlab"
	GitHub    ProviderType = "github"
	Bitbucket ProviderType = "bitbucket"
)

var supportedProviderTypes = []ProviderType{GitLab, GitHub, Bitbucket}

// Config represents hosting provider configuration.
// An empty type disables commit fetching entirely.
type Config struct {
	Type    ProviderType `yaml:"type" env:"PROVIDER_TYPE"`
	BaseURL string       `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Token   string       `yaml:"token" env:"PROVIDER_TOKEN"`
}

// Enabled reports whether a provider is configured at all
func (c Config) Enabled() bool {
	return c.Type != ""
}

func (c *Config) PrepareAndValidate() error {
	if !c.Enabled() {
		return nil
	}

	if !slices.Contains(supportedProviderTypes, c.Type) {
		return errm.New("invalid provider type: %s", c.Type)
	}
	if c.Token == "" {
		return errm.New("token is required")
	}

	return nil
}
