package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the site configuration file. A missing file is not an
// error: defaults apply, so both binaries run without one.
func Load(path string) (*SiteConfig, error) {
	var config SiteConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			setDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", path, err)
	}

	return &config, nil
}

func setDefaults(config *SiteConfig) {
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"*"}
	}
	if config.Migration.ArticlesCollection == "" {
		config.Migration.ArticlesCollection = "articles"
	}
	if config.Migration.SubscribersCollection == "" {
		config.Migration.SubscribersCollection = "subscribers"
	}
}

func validate(config *SiteConfig) error {
	for i, origin := range config.CORS.AllowedOrigins {
		if origin == "" {
			return fmt.Errorf("empty allowed origin at index %d", i)
		}
	}
	return nil
}
