package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Destination database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Destination database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Destination database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"lexwire_admin" description:"Destination database user (administrative role for bulk load)"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" description:"Destination database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"lexwire" description:"Destination database name"`

	// Source database configuration (migration job only)
	MongoURI string `long:"mongodb-uri" env:"MONGODB_URI" description:"Source MongoDB connection string"`
	MongoDB  string `long:"mongodb-db" env:"MONGODB_DB" default:"lexwire" description:"Source MongoDB database name"`

	// Application configuration
	Port             string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SiteConfigPath   string `long:"site-config" env:"SITE_CONFIG" default:"./site.yaml" description:"Path to the site configuration file"`
	MigrationLogPath string `long:"migration-log" env:"MIGRATION_LOG" default:"./migration.log" description:"Path to the migration run log file"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
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
		DBHost:           raw.DBHost,
		DBPort:           raw.DBPort,
		DBUser:           raw.DBUser,
		DBPassword:       raw.DBPassword,
		DBName:           raw.DBName,
		MongoURI:         raw.MongoURI,
		MongoDB:          raw.MongoDB,
		Port:             raw.Port,
		SiteConfigPath:   raw.SiteConfigPath,
		MigrationLogPath: raw.MigrationLogPath,
		Timezone:         raw.Timezone,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
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

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
