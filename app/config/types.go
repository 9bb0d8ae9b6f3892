package config

// SiteConfig holds deployment settings that live next to the binaries
// rather than in the environment.
type SiteConfig struct {
	CORS      CORSConfig      `yaml:"cors"`
	Migration MigrationConfig `yaml:"migration"`
}

// CORSConfig lists the origins allowed to call the JSON API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// MigrationConfig names the source collections the copy job reads.
type MigrationConfig struct {
	ArticlesCollection    string `yaml:"articles_collection"`
	SubscribersCollection string `yaml:"subscribers_collection"`
}
