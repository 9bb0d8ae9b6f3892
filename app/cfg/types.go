package cfg

type Cfg struct {
	// Destination database configuration. The bulk copy requires the
	// administrative credential so destination row-level policies do not
	// block the load.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Source database configuration (migration job only)
	MongoURI string
	MongoDB  string

	// Application configuration
	Port             string
	SiteConfigPath   string
	MigrationLogPath string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
